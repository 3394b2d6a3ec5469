// Package app provides the orchestration layer for the bookshelf application.
//
// # Overview
//
// This package wires together configuration, the activity log, the store,
// the loader effect and the UI. It is the composition root: every dependency
// is built here and handed down explicitly. Nothing is global except the
// standard logger, which Run points at the activity log file.
//
// # Architecture
//
//  1. Load config from ~/.config/bookshelf/config.toml
//  2. Redirect the standard logger to the activity log file
//  3. Build the loader (built-in seed or TOML seed file)
//  4. Build the store with LogEffect and the loader as effects
//  5. Either print the catalog (List) or start the refresher and the TUI
//
// # Components
//
//   - app.go: Run and log file setup
//   - list.go: non-interactive mode, load once and print a table
//   - refresher.go: optional ticker that re-dispatches LoadRequested
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()
//	       ├─────> openLog()              log.SetOutput(file)
//	       ├─────> loader.New()           effect
//	       ├─────> state.NewStore()       reducer + effects
//	       ├─────> StartRefresher()       optional
//	       └─────> ui.Run() / List()      blocks
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config file unreadable or invalid
//   - Activity log cannot be created
//   - Context cancelled while List waits
//   - List mode only: the load failed
//
// In the UI a failed load is shown as state; the user retries with r.
package app
