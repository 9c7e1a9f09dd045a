package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"golang.design/x/hotkey"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/api"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/config"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/geo"
)

type EventsClient struct {
	app    fyne.App
	env    config.Env
	api    *api.EventsService
	themes *ThemeProvider

	dashboard *DashboardWindow
}

func main() {
	ec := &EventsClient{
		app: app.NewWithID("com.cgevents.client"),
	}

	ec.initialize()
	ec.run()
}

func (ec *EventsClient) initialize() {
	ec.env = config.Load()
	ec.api = api.NewEventsService(ec.env.BaseURL, nil)

	ec.themes = NewThemeProvider(ec.app)
	ec.themes.Apply(ec.themes.Current())

	// Sync autostart state with the stored preference on startup
	if err := setupAutostart(loadAutoStart(ec.app)); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	ec.setupSystemTray()
	ec.registerShowHotkey()
}

func (ec *EventsClient) run() {
	ec.showDashboard()
	ec.app.Run()
}

func (ec *EventsClient) showDashboard() {
	// If the dashboard already exists, just bring it to front
	if ec.dashboard != nil && ec.dashboard.window != nil {
		ec.dashboard.window.RequestFocus()
		ec.dashboard.window.Show()
		return
	}

	ec.dashboard = NewDashboardWindow(ec)
	ec.dashboard.window.SetOnClosed(func() {
		ec.dashboard = nil
	})
	ec.dashboard.Show()
}

func (ec *EventsClient) showCreateWindow() {
	locator := geo.NewLocator(ec.env.GeolocationURL, nil)
	NewCreateWindow(ec, locator).Show()
}

func (ec *EventsClient) showDetailWindow(eventID string) {
	NewDetailWindow(ec, eventID).Show()
}

// refreshDashboard re-runs the dashboard's current filter, if one is open.
func (ec *EventsClient) refreshDashboard() {
	if ec.dashboard != nil {
		ec.dashboard.feed.Refresh()
	}
}

// registerShowHotkey raises the dashboard on Ctrl+Shift+E from anywhere.
func (ec *EventsClient) registerShowHotkey() {
	go func() {
		hk := hotkey.New([]hotkey.Modifier{hotkey.ModCtrl, hotkey.ModShift}, hotkey.KeyE)
		if err := hk.Register(); err != nil {
			log.Printf("Failed to register dashboard hotkey: %v", err)
			return
		}

		for range hk.Keydown() {
			fyne.Do(func() {
				ec.showDashboard()
			})
		}
	}()
}

func (ec *EventsClient) quit() {
	ec.app.Quit()
}
