package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/Alexander-D-Karpov/omnis/internal/ui/themes"
	"github.com/Alexander-D-Karpov/omnis/pkg/types"
)

const (
	TabLogs     = "logs"
	TabSettings = "settings"
)

// State is the page-wide application state. It is owned by the app and
// only mutated from UI callbacks.
type State struct {
	Mode    themes.Mode
	Variant fyne.ThemeVariant
	Prefs   types.Preferences
	Tab     string
}

func NewState(mode themes.Mode) *State {
	return &State{
		Mode:    mode,
		Variant: theme.VariantLight,
		Prefs:   types.DefaultPreferences(),
		Tab:     TabLogs,
	}
}

// Palette is the color table for the current mode.
func (s *State) Palette() themes.Palette {
	return themes.PaletteFor(s.Mode.Resolve(s.Variant))
}
