package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/internal/handlers"
	"github.com/Alexander-D-Karpov/omnis/internal/logger"
	"github.com/Alexander-D-Karpov/omnis/internal/search"
	"github.com/Alexander-D-Karpov/omnis/internal/storage"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/views"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

type App struct {
	fyneApp fyne.App
	window  fyne.Window
	ctx     context.Context
	cfg     *config.Config
	log     zerolog.Logger

	store    *storage.Store
	backend  types.KeyValue
	database *storage.Database
	bus      *handlers.EventBus
	state    *views.State

	mainView *views.MainView
}

func NewApp(ctx context.Context, fyneApp fyne.App, cfg *config.Config, log zerolog.Logger) (*App, error) {
	log = logger.Component(log, "APP")

	state := views.NewState(themes.ParseMode(cfg.UI.Theme))
	state.Variant = fyneApp.Settings().ThemeVariant()
	fyneApp.Settings().SetTheme(themes.NewTheme(state.Mode))

	app := &App{
		fyneApp: fyneApp,
		ctx:     ctx,
		cfg:     cfg,
		log:     log,
		store:   storage.NewStore(logger.Component(log, "STORE")),
		bus:     handlers.NewEventBus(),
		state:   state,
	}

	if err := app.openBackend(); err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	app.window = fyneApp.NewWindow(cfg.UI.Title)
	app.window.Resize(fyne.NewSize(float32(cfg.UI.WindowWidth), float32(cfg.UI.WindowHeight)))
	app.loadIcon()

	app.log.Debug().
		Str("backend", cfg.Storage.Backend).
		Str("theme", state.Mode.String()).
		Msg("application initializing")

	app.setupUI()
	app.setupEventHandlers()

	// The store is only attached once the host reports the app as started.
	fyneApp.Lifecycle().SetOnStarted(app.OnReady)

	return app, nil
}

// openBackend opens the configured key-value backend without attaching it.
func (a *App) openBackend() error {
	switch a.cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := storage.NewDatabase(a.cfg, logger.Component(a.log, "DB"))
		if err != nil {
			return err
		}
		a.database = db
		a.backend = db
	default:
		a.backend = storage.NewPreferences(a.fyneApp.Preferences())
	}
	return nil
}

func (a *App) loadIcon() {
	iconPath := filepath.Join(a.cfg.UI.AssetsDir, "icon.png")
	if _, err := os.Stat(iconPath); err != nil {
		return
	}

	res, err := fyne.LoadResourceFromPath(iconPath)
	if err != nil {
		a.log.Warn().Err(err).Str("path", iconPath).Msg("load window icon")
		return
	}
	a.window.SetIcon(res)
}

func (a *App) setupUI() {
	engine := search.NewEngine(a.cfg)
	a.mainView = views.NewMainView(a.ctx, a.store, engine, a.state, a.bus, logger.Component(a.log, "VIEW"))
	a.mainView.SetParentWindow(a.window)

	a.window.SetContent(a.mainView.Container())
	a.window.SetOnClosed(func() {
		a.Close()
	})
}

func (a *App) setupEventHandlers() {
	a.bus.Subscribe(handlers.EventThemeChanged, func(data interface{}) {
		mode, ok := data.(themes.Mode)
		if !ok {
			return
		}
		a.fyneApp.Settings().SetTheme(themes.NewTheme(mode))
		a.log.Debug().Str("mode", mode.String()).Msg("theme applied")
	})
}

// OnReady runs once the host has started the app and the persistent store
// may be used: it attaches the store, loads preferences and renders the
// log list.
func (a *App) OnReady() {
	if a.store.Ready() {
		return
	}

	if err := a.store.Attach(a.backend); err != nil {
		a.log.Error().Err(err).Msg("attach store")
		return
	}

	prefs, err := a.store.LoadPreferences(a.ctx)
	if err != nil {
		a.log.Error().Err(err).Msg("load preferences")
	}
	a.state.Prefs = prefs

	a.log.Info().
		Str("icon", prefs.Icon).
		Str("sort", prefs.Sort.String()).
		Msg("preferences loaded")

	a.bus.Publish(handlers.EventPreferencesChanged, prefs)
	a.bus.Publish(handlers.EventStoreReady, nil)
}

func (a *App) State() *views.State {
	return a.state
}

func (a *App) MainView() *views.MainView {
	return a.mainView
}

func (a *App) Store() *storage.Store {
	return a.store
}

func (a *App) Window() fyne.Window {
	return a.window
}

func (a *App) ShowAndRun() {
	a.log.Debug().Msg("starting application window")
	a.window.ShowAndRun()
}

func (a *App) Close() {
	a.log.Debug().Msg("shutting down")

	if a.database != nil {
		if err := a.database.Close(); err != nil {
			a.log.Error().Err(err).Msg("close database")
		}
	}
}
