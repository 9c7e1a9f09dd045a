package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeMode is the user's light/dark choice.
type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

const themePrefKey = "theme_mode"

// ThemeProvider owns the theme preference. It is created once, injected
// into the views that need it, and is the single mutation entry point;
// nothing else reads or writes the stored preference.
type ThemeProvider struct {
	app  fyne.App
	mode ThemeMode
}

func NewThemeProvider(app fyne.App) *ThemeProvider {
	tp := &ThemeProvider{app: app}
	tp.mode = ThemeMode(app.Preferences().StringWithFallback(themePrefKey, string(ThemeLight)))
	if tp.mode != ThemeLight && tp.mode != ThemeDark {
		tp.mode = ThemeLight
	}
	return tp
}

// Current returns the active mode.
func (tp *ThemeProvider) Current() ThemeMode {
	return tp.mode
}

// Apply switches the whole app to mode and persists the choice.
func (tp *ThemeProvider) Apply(mode ThemeMode) {
	if mode != ThemeLight && mode != ThemeDark {
		mode = ThemeLight
	}
	tp.mode = mode
	tp.app.Preferences().SetString(themePrefKey, string(mode))

	variant := theme.VariantLight
	if mode == ThemeDark {
		variant = theme.VariantDark
	}
	tp.app.Settings().SetTheme(&fixedVariantTheme{
		Theme:   theme.DefaultTheme(),
		variant: variant,
	})
}

// fixedVariantTheme pins the default theme to one variant regardless of the
// OS setting.
type fixedVariantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t *fixedVariantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}
