package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/five82/bookshelf/internal/config"
	"github.com/five82/bookshelf/internal/loader"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
	"github.com/five82/bookshelf/internal/ui"
)

// Options configure the bookshelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string        // empty uses default ~/.config/bookshelf/prefs.toml
	LoadDelay  time.Duration // overrides config load_delay when positive
	List       bool          // print the loaded catalog and exit instead of starting the UI
	Out        io.Writer     // list output; nil uses os.Stdout
}

// Run boots bookshelf until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.LoadDelay > 0 {
		cfg.LoadDelay = opts.LoadDelay
	}

	closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open activity log: %w", err)
	}
	defer closeLog()

	ldr := loader.New(fetcherFor(cfg), cfg.LoadDelay)
	defer ldr.Close()

	store := state.NewStore(
		state.WithEffects(state.LogEffect(log.Default()), ldr),
	)

	if opts.List {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return List(ctx, store, out)
	}

	StartRefresher(ctx, store, cfg.RefreshEvery)

	userPrefs := prefs.Load(opts.PrefsPath)
	return ui.Run(ui.Options{
		Context:       ctx,
		Store:         store,
		ThemeName:     userPrefs.Theme,
		ConfirmDelete: userPrefs.ConfirmDelete,
		PrefsPath:     opts.PrefsPath,
		LogFile:       cfg.LogFile,
		AutoLoad:      cfg.AutoLoad,
	})
}

func fetcherFor(cfg config.Config) loader.Fetcher {
	if cfg.SeedFile != "" {
		return loader.FileFetcher(cfg.SeedFile)
	}
	return loader.SeedFetcher()
}

// openLog points the standard logger at path. The terminal belongs to the
// UI, so nothing is logged to stderr while it runs.
func openLog(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	prev := log.Writer()
	log.SetOutput(file)
	return func() {
		log.SetOutput(prev)
		_ = file.Close()
	}, nil
}
