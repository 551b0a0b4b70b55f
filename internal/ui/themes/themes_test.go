package themes

import (
	"testing"

	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	assert.Equal(t, ModeDark, Toggle(true))
	assert.Equal(t, ModeLight, Toggle(false))
}

func TestPaletteFor(t *testing.T) {
	dark := PaletteFor(ModeDark)
	light := PaletteFor(ModeLight)

	assert.Equal(t, grey900, dark.Background)
	assert.Equal(t, grey100, light.Background)
	assert.Equal(t, grey800, dark.Card)
	assert.Equal(t, white, light.Card)
	assert.Equal(t, light, PaletteFor(ModeSystem))
	assert.Equal(t, PaletteFor(ModeDark), PaletteFor(ModeDark))
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeDark, ParseMode("Dark"))
	assert.Equal(t, ModeLight, ParseMode("light"))
	assert.Equal(t, ModeSystem, ParseMode("system"))
	assert.Equal(t, ModeSystem, ParseMode(""))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ModeDark, ModeSystem.Resolve(theme.VariantDark))
	assert.Equal(t, ModeLight, ModeSystem.Resolve(theme.VariantLight))
	assert.Equal(t, ModeLight, ModeLight.Resolve(theme.VariantDark))
	assert.Equal(t, ModeDark, ModeDark.Resolve(theme.VariantLight))
}

func TestThemeBackground(t *testing.T) {
	assert.Equal(t, grey900, NewTheme(ModeDark).Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t, grey100, NewTheme(ModeLight).Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, grey900, NewTheme(ModeSystem).Color(theme.ColorNameBackground, theme.VariantDark))
	assert.Equal(t, orange400, NewTheme(ModeDark).Color(theme.ColorNamePrimary, theme.VariantDark))
}

func TestIconForFallsBack(t *testing.T) {
	for _, name := range append(IconChoices, "unknown", "") {
		assert.NotNil(t, IconFor(name), name)
	}
	assert.Equal(t, IconFor("star").Name(), IconFor("unknown").Name())
}

func TestIconChoicesAreDistinct(t *testing.T) {
	seen := make(map[string]string)
	for _, name := range IconChoices {
		res := IconFor(name).Name()
		if other, ok := seen[res]; ok {
			t.Fatalf("icons %q and %q both render as %s", other, name, res)
		}
		seen[res] = name
	}
}
