package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// showSettingsMenu pops the settings menu below the anchor button: theme
// selection plus the autostart toggle.
func (dw *DashboardWindow) showSettingsMenu(anchor fyne.CanvasObject) {
	themes := dw.client.themes

	lightLabel := "Light"
	darkLabel := "Dark"
	if themes.Current() == ThemeLight {
		lightLabel += " ✔"
	} else {
		darkLabel += " ✔"
	}

	autoStartLabel := "Start on Boot"
	if loadAutoStart(dw.client.app) {
		autoStartLabel += " ✔"
	}

	menu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Theme: "+lightLabel, func() {
			themes.Apply(ThemeLight)
		}),
		fyne.NewMenuItem("Theme: "+darkLabel, func() {
			themes.Apply(ThemeDark)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(autoStartLabel, func() {
			dw.toggleAutoStart()
		}),
	)

	canvas := dw.window.Canvas()
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(anchor)
	pos.Y += anchor.Size().Height

	widget.ShowPopUpMenuAtPosition(menu, canvas, pos)
}

func (dw *DashboardWindow) toggleAutoStart() {
	enabled := !loadAutoStart(dw.client.app)

	if err := setupAutostart(enabled); err != nil {
		log.Printf("Error setting autostart: %v", err)
		return
	}
	saveAutoStart(dw.client.app, enabled)
}
