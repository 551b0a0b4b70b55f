package views

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/handlers"
	"github.com/Alexander-D-Karpov/omnis/internal/search"
	"github.com/Alexander-D-Karpov/omnis/internal/storage"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
)

// MainView holds the two tabs, with the navigation bar at the bottom.
type MainView struct {
	state *State
	log   zerolog.Logger

	container   *container.AppTabs
	logsTab     *container.TabItem
	settingsTab *container.TabItem

	LogView      *LogView
	SettingsView *SettingsView
}

func NewMainView(ctx context.Context, store *storage.Store, engine *search.Engine, state *State, bus *handlers.EventBus, log zerolog.Logger) *MainView {
	mv := &MainView{
		state: state,
		log:   log,
	}

	mv.LogView = NewLogView(ctx, store, engine, state, bus, log)
	mv.SettingsView = NewSettingsView(ctx, store, state, bus, log)

	mv.setupLayout()

	bus.Subscribe(handlers.EventPreferencesChanged, func(interface{}) {
		mv.logsTab.Icon = themes.IconFor(mv.state.Prefs.Icon)
		mv.SettingsView.Refresh()
		mv.container.Refresh()
	})
	bus.Subscribe(handlers.EventThemeChanged, func(interface{}) { mv.Redraw() })

	return mv
}

func (mv *MainView) setupLayout() {
	mv.logsTab = container.NewTabItemWithIcon("Logs", themes.IconFor(mv.state.Prefs.Icon), mv.LogView.Container())
	mv.settingsTab = container.NewTabItemWithIcon("Settings", theme.SettingsIcon(), mv.SettingsView.Container())

	mv.container = container.NewAppTabs(mv.logsTab, mv.settingsTab)
	mv.container.SetTabLocation(container.TabLocationBottom)
	mv.container.OnSelected = func(item *container.TabItem) {
		mv.onTabSelected(item)
	}
}

func (mv *MainView) onTabSelected(item *container.TabItem) {
	if item == mv.settingsTab {
		mv.state.Tab = TabSettings
	} else {
		mv.state.Tab = TabLogs
	}
	mv.log.Debug().Str("tab", mv.state.Tab).Msg("navigation")
	mv.refreshCurrent()
}

// ShowView switches to the named tab and rebuilds its content.
func (mv *MainView) ShowView(name string) {
	target := mv.logsTab
	if name == TabSettings {
		target = mv.settingsTab
	}

	if mv.container.Selected() == target {
		mv.state.Tab = name
		mv.refreshCurrent()
		return
	}
	mv.container.Select(target)
}

func (mv *MainView) refreshCurrent() {
	switch mv.state.Tab {
	case TabSettings:
		mv.SettingsView.Refresh()
	default:
		mv.LogView.Refresh()
	}
}

// Redraw repaints both tabs after a theme change.
func (mv *MainView) Redraw() {
	mv.LogView.Redraw()
	mv.SettingsView.Refresh()
	mv.container.Refresh()
}

func (mv *MainView) GetCurrentView() string {
	return mv.state.Tab
}

func (mv *MainView) SetParentWindow(window fyne.Window) {
	mv.LogView.SetParentWindow(window)
	mv.SettingsView.SetParentWindow(window)
}

func (mv *MainView) Container() fyne.CanvasObject {
	return mv.container
}
