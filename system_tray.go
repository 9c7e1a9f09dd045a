package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

func (ec *EventsClient) setupSystemTray() {
	desk, ok := ec.app.(desktop.App)
	if !ok {
		return
	}

	menu := fyne.NewMenu("CG Events",
		fyne.NewMenuItem("Dashboard", func() {
			ec.showDashboard()
		}),
		fyne.NewMenuItem("New Event", func() {
			ec.showCreateWindow()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			ec.quit()
		}),
	)

	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.CalendarIcon())
}
