package main

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/store"
)

// ViewMode selects how the fetched list is rendered. It is purely
// presentational: switching never fetches and never touches the filter.
type ViewMode int

const (
	ViewTable ViewMode = iota
	ViewGrid
)

const dateInputLayout = "2006-01-02"

type DashboardWindow struct {
	window fyne.Window
	client *EventsClient

	feed     *store.EventFeed
	viewMode ViewMode

	categorySelect *widget.Select
	fromDateEntry  *widget.Entry
	endDateEntry   *widget.Entry

	tableButton *widget.Button
	gridButton  *widget.Button
	loadingBar  *widget.ProgressBarInfinite

	eventsTable *widget.Table
	content     *fyne.Container
}

func NewDashboardWindow(ec *EventsClient) *DashboardWindow {
	dw := &DashboardWindow{
		client:   ec,
		viewMode: ViewTable,
	}

	dw.feed = store.NewEventFeed(ec.api, func() {
		fyne.Do(dw.refreshEvents)
	})

	dw.window = ec.app.NewWindow("Events Dashboard")
	dw.buildUI()

	// Mount fetch: the empty filter still triggers a cycle.
	dw.feed.Refresh()
	dw.refreshLoading()

	return dw
}

func (dw *DashboardWindow) buildUI() {
	addButton := widget.NewButtonWithIcon("Add New Event", theme.ContentAddIcon(), func() {
		dw.client.showCreateWindow()
	})
	addButton.Importance = widget.HighImportance

	dw.tableButton = widget.NewButtonWithIcon("", theme.ListIcon(), func() {
		dw.setViewMode(ViewTable)
	})
	dw.gridButton = widget.NewButtonWithIcon("", theme.GridIcon(), func() {
		dw.setViewMode(ViewGrid)
	})

	settingsButton := widget.NewButtonWithIcon("", theme.SettingsIcon(), nil)
	settingsButton.OnTapped = func() {
		dw.showSettingsMenu(settingsButton)
	}

	topRow := container.NewBorder(nil, nil,
		addButton,
		container.NewHBox(dw.tableButton, dw.gridButton, settingsButton),
	)

	dw.fromDateEntry = newDateEntry("From Date", func(t *time.Time) {
		dw.feed.SetFilter(models.WithFromDate(t))
		dw.refreshLoading()
	})
	dw.endDateEntry = newDateEntry("To Date", func(t *time.Time) {
		dw.feed.SetFilter(models.WithEndDate(t))
		dw.refreshLoading()
	})

	dw.categorySelect = widget.NewSelect(append([]string{"All"}, models.Categories...), func(selected string) {
		if selected == "All" {
			selected = ""
		}
		dw.feed.SetFilter(models.WithCategory(selected))
		dw.refreshLoading()
	})
	dw.categorySelect.PlaceHolder = "Category"

	filterRow := container.NewHBox(
		layout.NewSpacer(),
		dw.fromDateEntry,
		dw.endDateEntry,
		dw.categorySelect,
	)

	dw.loadingBar = widget.NewProgressBarInfinite()
	dw.loadingBar.Hide()

	dw.eventsTable = newEventsTable(dw)
	dw.content = container.NewStack(dw.eventsTable)

	dw.window.SetContent(container.NewBorder(
		container.NewVBox(topRow, filterRow, dw.loadingBar),
		nil, nil, nil,
		dw.content,
	))
	dw.window.Resize(fyne.NewSize(1000, 700))
	dw.window.CenterOnScreen()
}

// newDateEntry builds an entry that applies a date bound on every valid
// change: a parseable date sets the bound, clearing the field removes it.
func newDateEntry(placeholder string, apply func(*time.Time)) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder + " (YYYY-MM-DD)")
	entry.OnChanged = func(text string) {
		if text == "" {
			apply(nil)
			return
		}
		if t, err := time.ParseInLocation(dateInputLayout, text, time.Local); err == nil {
			apply(&t)
		}
	}
	return entry
}

// setViewMode swaps the rendering of the already-fetched list. It never
// issues a network call.
func (dw *DashboardWindow) setViewMode(mode ViewMode) {
	dw.viewMode = mode
	dw.refreshContent()
}

// refreshEvents runs on the UI thread after a fetch cycle completes.
func (dw *DashboardWindow) refreshEvents() {
	updateEventsColumnWidths(dw.eventsTable, dw.feed.Events())
	dw.eventsTable.Refresh()
	dw.refreshContent()
	dw.refreshLoading()
}

func (dw *DashboardWindow) refreshContent() {
	dw.tableButton.Importance = widget.MediumImportance
	dw.gridButton.Importance = widget.MediumImportance

	var mainContent fyne.CanvasObject
	switch dw.viewMode {
	case ViewGrid:
		dw.gridButton.Importance = widget.HighImportance
		mainContent = buildEventsGrid(dw.feed.Events(), dw.client.showDetailWindow)
	default:
		dw.tableButton.Importance = widget.HighImportance
		if len(dw.feed.Events()) == 0 {
			mainContent = newEmptyEventsState()
		} else {
			mainContent = dw.eventsTable
		}
	}
	dw.tableButton.Refresh()
	dw.gridButton.Refresh()

	dw.content.Objects = []fyne.CanvasObject{mainContent}
	dw.content.Refresh()
}

func (dw *DashboardWindow) refreshLoading() {
	if dw.feed.Loading() {
		dw.loadingBar.Show()
		dw.loadingBar.Start()
	} else {
		dw.loadingBar.Stop()
		dw.loadingBar.Hide()
	}
}

func (dw *DashboardWindow) Show() {
	dw.window.Show()
}
