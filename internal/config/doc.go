// Package config handles loading the bookshelf configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/bookshelf/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - load_delay: 1s
//   - seed_file: none (built-in two-book seed)
//   - log_file: ~/.local/share/bookshelf/bookshelf.log
//   - refresh_every: 0 (disabled)
//   - auto_load: true
//
// # TOML Format
//
//	load_delay = "1500ms"
//	seed_file = "~/books.toml"
//	log_file = "~/.local/share/bookshelf/bookshelf.log"
//	refresh_every = "30s"
//	auto_load = false
//
// Durations use Go syntax (time.ParseDuration). Negative durations are
// rejected. Paths support tilde expansion and are made absolute.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and invalid durations. A missing file is
// not an error.
package config
