package views

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/Alexander-D-Karpov/omnis/internal/handlers"
	"github.com/Alexander-D-Karpov/omnis/internal/storage"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const (
	sortNewestFirst = "Newest first"
	sortOldestFirst = "Oldest first"
)

type SettingsView struct {
	ctx   context.Context
	store *storage.Store
	state *State
	bus   *handlers.EventBus
	log   zerolog.Logger

	container    *container.Scroll
	parentWindow fyne.Window

	darkModeCheck *widget.Check
	sortRadio     *widget.RadioGroup
	iconSelect    *widget.Select
	exportBtn     *widget.Button
	importBtn     *widget.Button

	// syncing suppresses widget callbacks while loadSettings copies state
	// into the widgets.
	syncing bool
}

func NewSettingsView(ctx context.Context, store *storage.Store, state *State, bus *handlers.EventBus, log zerolog.Logger) *SettingsView {
	sv := &SettingsView{
		ctx:   ctx,
		store: store,
		state: state,
		bus:   bus,
		log:   log,
	}

	sv.setupWidgets()
	sv.setupLayout()
	sv.loadSettings()

	return sv
}

func (sv *SettingsView) setupWidgets() {
	sv.darkModeCheck = widget.NewCheck("Dark mode", func(on bool) {
		if sv.syncing {
			return
		}
		sv.SetDarkMode(on)
	})

	sv.sortRadio = widget.NewRadioGroup([]string{sortNewestFirst, sortOldestFirst}, func(selected string) {
		if sv.syncing || selected == "" {
			return
		}
		sv.SetSortOrder(sortOrderFromLabel(selected))
	})
	sv.sortRadio.Horizontal = true
	sv.sortRadio.Required = true

	sv.iconSelect = widget.NewSelect(themes.IconChoices, func(icon string) {
		if sv.syncing {
			return
		}
		sv.SetIcon(icon)
	})

	sv.exportBtn = widget.NewButtonWithIcon("Export logs", theme.DocumentSaveIcon(), sv.exportLogs)
	sv.importBtn = widget.NewButtonWithIcon("Import logs", theme.FolderOpenIcon(), sv.importLogs)
}

func (sv *SettingsView) setupLayout() {
	appearanceCard := widget.NewCard("Appearance", "", container.NewVBox(
		sv.darkModeCheck,
	))

	logsCard := widget.NewCard("Log list", "", container.NewVBox(
		sv.createFormRow("Order:", sv.sortRadio),
		sv.createFormRow("Icon:", sv.iconSelect),
	))

	backupCard := widget.NewCard("Backup", "", container.NewHBox(sv.exportBtn, sv.importBtn))

	title := widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	title.SizeName = theme.SizeNameHeadingText

	content := container.NewVBox(
		title,
		appearanceCard,
		logsCard,
		backupCard,
	)

	sv.container = container.NewVScroll(content)
}

func (sv *SettingsView) createFormRow(label string, comp fyne.CanvasObject) *fyne.Container {
	labelWidget := widget.NewLabel(label)
	return container.NewBorder(nil, nil, labelWidget, nil, comp)
}

func (sv *SettingsView) loadSettings() {
	sv.syncing = true
	defer func() { sv.syncing = false }()

	sv.darkModeCheck.SetChecked(sv.state.Mode.Resolve(sv.state.Variant) == themes.ModeDark)
	sv.sortRadio.SetSelected(sortLabel(sv.state.Prefs.Sort))
	sv.iconSelect.SetSelected(sv.state.Prefs.Icon)
}

// SetDarkMode applies the switch position: on is Dark, off is Light. The
// choice is not persisted.
func (sv *SettingsView) SetDarkMode(on bool) {
	mode := themes.Toggle(on)
	sv.state.Mode = mode
	sv.log.Debug().Str("mode", mode.String()).Msg("theme toggled")
	sv.bus.Publish(handlers.EventThemeChanged, mode)
}

func (sv *SettingsView) SetSortOrder(order types.SortOrder) {
	if err := sv.store.SetSortPreference(sv.ctx, order); err != nil {
		sv.log.Error().Err(err).Str("sort", order.String()).Msg("save sort preference")
		sv.showError(err)
		sv.loadSettings()
		return
	}

	sv.state.Prefs.Sort = order
	sv.bus.Publish(handlers.EventPreferencesChanged, sv.state.Prefs)
}

func (sv *SettingsView) SetIcon(icon string) {
	if err := sv.store.SetIconPreference(sv.ctx, icon); err != nil {
		sv.log.Error().Err(err).Str("icon", icon).Msg("save icon preference")
		sv.showError(err)
		sv.loadSettings()
		return
	}

	sv.state.Prefs.Icon = icon
	sv.bus.Publish(handlers.EventPreferencesChanged, sv.state.Prefs)
}

func (sv *SettingsView) exportLogs() {
	if sv.parentWindow == nil {
		return
	}

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer func() {
			if closeErr := writer.Close(); closeErr != nil {
				sv.log.Warn().Err(closeErr).Msg("close export file")
			}
		}()

		n, err := sv.store.Export(sv.ctx, writer)
		if err != nil {
			sv.showError(err)
			return
		}

		sv.showInfo("Export Complete", fmt.Sprintf("Exported %d entries.", n))
	}, sv.parentWindow)
}

func (sv *SettingsView) importLogs() {
	if sv.parentWindow == nil {
		return
	}

	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer func() {
			if closeErr := reader.Close(); closeErr != nil {
				sv.log.Warn().Err(closeErr).Msg("close import file")
			}
		}()

		logs, err := sv.store.Import(sv.ctx, reader)
		if err != nil {
			sv.showError(fmt.Errorf("invalid backup file: %w", err))
			return
		}

		sv.bus.Publish(handlers.EventLogsChanged, nil)
		sv.showInfo("Import Complete", fmt.Sprintf("Imported %d entries.", len(logs)))
	}, sv.parentWindow)
}

func sortLabel(order types.SortOrder) string {
	if order == types.SortAsc {
		return sortOldestFirst
	}
	return sortNewestFirst
}

func sortOrderFromLabel(label string) types.SortOrder {
	if label == sortOldestFirst {
		return types.SortAsc
	}
	return types.SortDesc
}

func (sv *SettingsView) showInfo(title, message string) {
	if sv.parentWindow != nil {
		dialog.ShowInformation(title, message, sv.parentWindow)
	}
}

func (sv *SettingsView) showError(err error) {
	if sv.parentWindow != nil {
		dialog.ShowError(err, sv.parentWindow)
	}
}

func (sv *SettingsView) SetParentWindow(window fyne.Window) {
	sv.parentWindow = window
}

func (sv *SettingsView) Container() fyne.CanvasObject {
	return sv.container
}

func (sv *SettingsView) Refresh() {
	sv.loadSettings()
}
