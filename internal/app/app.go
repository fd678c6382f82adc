package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/angkor/internal/browse"
	"github.com/five82/angkor/internal/catalog"
	"github.com/five82/angkor/internal/config"
	"github.com/five82/angkor/internal/logging"
	"github.com/five82/angkor/internal/state"
	"github.com/five82/angkor/internal/storage"
	"github.com/five82/angkor/internal/ui"
)

// Options configure the angkor application. Empty fields use the config file
// value, then the built-in default.
type Options struct {
	ConfigPath  string
	Endpoint    string
	StoragePath string
	LogFile     string
}

// Run boots the catalog TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	uiOpts, cleanup, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer cleanup()

	err = ui.Run(uiOpts)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// setup wires config, logging, storage, the catalog loader and the page
// controller into UI options.
func setup(ctx context.Context, opts Options) (ui.Options, func(), error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.Override(opts.Endpoint, opts.StoragePath, opts.LogFile)

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return ui.Options{}, nil, fmt.Errorf("init logging: %w", err)
	}
	cleanup := func() { _ = logger.Sync() }

	local, err := storage.Open(cfg.StoragePath)
	if err != nil {
		cleanup()
		return ui.Options{}, nil, fmt.Errorf("open storage: %w", err)
	}

	client, err := catalog.NewClient(cfg.Endpoint, cfg.FetchTimeout)
	if err != nil {
		cleanup()
		return ui.Options{}, nil, fmt.Errorf("init catalog client: %w", err)
	}

	store := state.NewStore(local, logger.Named("state"))
	controller := browse.NewController(store, logger.Named("browse"))

	logger.Info("angkor starting",
		zap.String("endpoint", client.Endpoint()),
		zap.String("storage", local.Path()),
		zap.Duration("fetch_timeout", cfg.FetchTimeout),
		zap.Int("favorites", len(store.Favorites())),
	)

	storedTheme, _ := local.Get(ui.ThemeKey)
	return ui.Options{
		Context:    ctx,
		Controller: controller,
		Loader:     catalog.NewLoader(client, logger.Named("catalog")),
		Storage:    local,
		ThemeName:  resolveTheme(cfg.Theme, storedTheme),
		LogPath:    cfg.LogFile,
		Logger:     logger.Named("ui"),
	}, cleanup, nil
}

// resolveTheme prefers a theme pinned in the config file over the last one
// cycled in the UI. Unknown names fall back to the default.
func resolveTheme(configured, stored string) string {
	for _, name := range []string{configured, stored} {
		name = strings.TrimSpace(name)
		for _, known := range ui.ThemeNames() {
			if strings.EqualFold(name, known) {
				return known
			}
		}
	}
	return ui.ThemeNames()[0]
}
