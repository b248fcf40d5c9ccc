package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hearthapp/hearth/internal/api"
	"github.com/hearthapp/hearth/internal/cache"
	"github.com/hearthapp/hearth/internal/config"
	"github.com/hearthapp/hearth/internal/log"
	"github.com/hearthapp/hearth/internal/prefs"
	"github.com/hearthapp/hearth/internal/state"
	"github.com/hearthapp/hearth/internal/ui"
)

// Options configure the Hearth application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/hearth/prefs.toml
}

// Run boots the Hearth TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	lg := openLogger(cfg.LogPath)

	client, err := api.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	// The cache doubles as the store's persistence sink: it receives a full
	// snapshot after every store mutation and can never fail the mutation.
	local := cache.New(cfg.CacheDir, lg)
	store := state.New(client, local.SaveAll)

	// Seed from cache and refresh every collection before the UI starts, so
	// the first render already shows data.
	Bootstrap(ctx, lg, store, local)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		ThemeName: userPrefs.Theme,
		StartTab:  userPrefs.StartTab,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// openLogger writes JSON logs to the configured file. Logging to the
// terminal would corrupt the TUI, so failures degrade to a discard logger.
func openLogger(path string) *slog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard, nil)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return log.New(io.Discard, nil)
	}
	return log.New(file, nil)
}
