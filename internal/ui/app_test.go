package ui

import (
	"context"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alexander-D-Karpov/omnis/internal/config"
	"github.com/Alexander-D-Karpov/omnis/internal/storage"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/components"
	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const twoEntries = `[{"id":2,"date_str":"2024-01-02","events":["A","B"]},{"id":1,"date_str":"2024-01-01","events":["C"]}]`

func newTestApp(t *testing.T, stored map[string]string) (*App, fyne.App) {
	t.Helper()

	fyneApp := test.NewTempApp(t)
	for key, value := range stored {
		fyneApp.Preferences().SetString(key, value)
	}

	cfg, err := config.DefaultMobileConfig()
	require.NoError(t, err)
	cfg.UI.AssetsDir = t.TempDir()

	a, err := NewApp(context.Background(), fyneApp, cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	return a, fyneApp
}

func rowText(t *testing.T, obj fyne.CanvasObject) string {
	t.Helper()
	text, ok := obj.(*canvas.Text)
	require.True(t, ok, "expected a placeholder row, got %T", obj)
	return text.Text
}

func TestAppShowsLoadingUntilReady(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{storage.KeyLogs: twoEntries})

	assert.False(t, a.Store().Ready())

	rows := a.MainView().LogView.List().Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, components.LoadingText, rowText(t, rows[0]))
}

func TestAppRendersStoredLogsNewestFirst(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{storage.KeyLogs: twoEntries})
	a.OnReady()

	cards := a.MainView().LogView.List().Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "2024-01-02", cards[0].DateText())
	assert.Equal(t, "A；B", cards[0].BodyText())
	assert.Equal(t, "2024-01-01", cards[1].DateText())
	assert.Equal(t, "C", cards[1].BodyText())
}

func TestAppHonorsStoredSortPreference(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{
		storage.KeyLogs:           twoEntries,
		storage.KeySortPreference: "asc",
	})
	a.OnReady()

	assert.Equal(t, types.SortAsc, a.State().Prefs.Sort)

	cards := a.MainView().LogView.List().Cards()
	require.Len(t, cards, 2)
	assert.Equal(t, "2024-01-01", cards[0].DateText())
	assert.Equal(t, "2024-01-02", cards[1].DateText())
}

func TestAppEmptyListShowsPlaceholder(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.OnReady()

	list := a.MainView().LogView.List()
	assert.Empty(t, list.Cards())

	rows := list.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, components.EmptyText, rowText(t, rows[0]))
}

func TestAppEntryWithoutEvents(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{storage.KeyLogs: `[{"id":1,"date_str":"2024-01-01"}]`})
	a.OnReady()

	cards := a.MainView().LogView.List().Cards()
	require.Len(t, cards, 1)
	assert.Equal(t, "2024-01-01", cards[0].DateText())
	assert.Equal(t, "", cards[0].BodyText())
}

func TestAppMalformedLogsShowErrorRow(t *testing.T) {
	a, fyneApp := newTestApp(t, map[string]string{storage.KeyLogs: `{"id":1}`})
	a.OnReady()

	rows := a.MainView().LogView.List().Rows()
	require.Len(t, rows, 1)
	assert.Contains(t, rowText(t, rows[0]), "could not be read")
	assert.Equal(t, `{"id":1}`, fyneApp.Preferences().String(storage.KeyLogs))
}

func TestAppThemeToggle(t *testing.T) {
	a, fyneApp := newTestApp(t, nil)
	a.OnReady()

	assert.Equal(t, themes.ModeSystem, a.State().Mode)

	settings := a.MainView().SettingsView

	settings.SetDarkMode(true)
	assert.Equal(t, themes.ModeDark, a.State().Mode)
	assert.Equal(t, themes.PaletteFor(themes.ModeDark).Background,
		fyneApp.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantLight))

	settings.SetDarkMode(false)
	assert.Equal(t, themes.ModeLight, a.State().Mode)
	assert.Equal(t, themes.PaletteFor(themes.ModeLight).Background,
		fyneApp.Settings().Theme().Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestAppOnReadyIsIdempotent(t *testing.T) {
	a, _ := newTestApp(t, map[string]string{storage.KeyLogs: twoEntries})
	a.OnReady()
	a.OnReady()

	assert.Equal(t, storage.PhaseReady, a.Store().Phase())
	assert.Len(t, a.MainView().LogView.List().Cards(), 2)
}
