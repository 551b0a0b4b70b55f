package themes

import (
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Mode is the user-facing appearance selector. Only Light and Dark are
// reachable from the settings toggle; System is the startup default.
type Mode int

const (
	ModeSystem Mode = iota
	ModeLight
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "system"
	}
}

func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight
	case "dark":
		return ModeDark
	default:
		return ModeSystem
	}
}

// Toggle maps the dark-mode switch position to a mode.
func Toggle(on bool) Mode {
	if on {
		return ModeDark
	}
	return ModeLight
}

// Resolve turns System into the concrete mode the host reports.
func (m Mode) Resolve(variant fyne.ThemeVariant) Mode {
	if m != ModeSystem {
		return m
	}
	if variant == theme.VariantDark {
		return ModeDark
	}
	return ModeLight
}

// Palette is the derived color table the views draw with.
type Palette struct {
	Background      color.NRGBA
	Card            color.NRGBA
	Text            color.NRGBA
	SubText         color.NRGBA
	Icon            color.NRGBA
	Divider         color.NRGBA
	InputBackground color.NRGBA
	Orange          color.NRGBA
	Blue            color.NRGBA
	Shadow          color.NRGBA
}

var (
	white   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black   = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	black12 = color.NRGBA{R: 0, G: 0, B: 0, A: 31}
	grey100 = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	grey300 = color.NRGBA{R: 224, G: 224, B: 224, A: 255}
	grey400 = color.NRGBA{R: 189, G: 189, B: 189, A: 255}
	grey700 = color.NRGBA{R: 97, G: 97, B: 97, A: 255}
	grey800 = color.NRGBA{R: 66, G: 66, B: 66, A: 255}
	grey900 = color.NRGBA{R: 33, G: 33, B: 33, A: 255}

	orange400 = color.NRGBA{R: 255, G: 167, B: 38, A: 255}
	orange600 = color.NRGBA{R: 251, G: 140, B: 0, A: 255}
	blue400   = color.NRGBA{R: 66, G: 165, B: 245, A: 255}
	blue600   = color.NRGBA{R: 30, G: 136, B: 229, A: 255}
)

var (
	darkPalette = Palette{
		Background:      grey900,
		Card:            grey800,
		Text:            white,
		SubText:         grey400,
		Icon:            white,
		Divider:         grey700,
		InputBackground: grey900,
		Orange:          orange400,
		Blue:            blue400,
		Shadow:          black,
	}

	lightPalette = Palette{
		Background:      grey100,
		Card:            white,
		Text:            black,
		SubText:         grey700,
		Icon:            grey700,
		Divider:         grey300,
		InputBackground: white,
		Orange:          orange600,
		Blue:            blue600,
		Shadow:          black12,
	}
)

// PaletteFor is a pure function of the mode: Dark gets the dark table,
// everything else the light one.
func PaletteFor(mode Mode) Palette {
	if mode == ModeDark {
		return darkPalette
	}
	return lightPalette
}

type OmnisTheme struct {
	mode Mode
}

var _ fyne.Theme = (*OmnisTheme)(nil)

func NewTheme(mode Mode) fyne.Theme {
	return &OmnisTheme{mode: mode}
}

func (t *OmnisTheme) Mode() Mode {
	return t.mode
}

func (t *OmnisTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	resolved := t.mode.Resolve(variant)
	p := PaletteFor(resolved)

	switch name {
	case theme.ColorNameBackground:
		return p.Background
	case theme.ColorNameForeground:
		return p.Text
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return p.InputBackground
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground, theme.ColorNameHeaderBackground:
		return p.Card
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return p.Orange
	case theme.ColorNameHyperlink:
		return p.Blue
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return p.SubText
	case theme.ColorNameSeparator, theme.ColorNameInputBorder:
		return p.Divider
	case theme.ColorNameShadow:
		return p.Shadow
	}

	return theme.DefaultTheme().Color(name, fyneVariant(resolved))
}

func fyneVariant(mode Mode) fyne.ThemeVariant {
	if mode == ModeDark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

func (t *OmnisTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *OmnisTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *OmnisTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameText:
		return 15
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameInnerPadding:
		return 8
	default:
		return theme.DefaultTheme().Size(name)
	}
}

// IconFor maps the stored icon preference onto a theme icon. Unknown names
// fall back to the star-like default.
func IconFor(name string) fyne.Resource {
	switch name {
	case "pets":
		return theme.HomeIcon()
	case "heart":
		return theme.AccountIcon()
	case "book":
		return theme.DocumentIcon()
	case "settings":
		return theme.SettingsIcon()
	default:
		return theme.HistoryIcon()
	}
}

// IconChoices lists the values offered for the icon preference.
var IconChoices = []string{"star", "pets", "heart", "book"}
