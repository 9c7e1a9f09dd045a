package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

var eventsTableHeaders = []string{"Name", "Category", "Event Date", "Location", "Description"}

const eventDateDisplayLayout = "January 02, 2006"

// newEventsTable renders the feed's current list as a table. Selecting a
// row opens the detail window for that event.
func newEventsTable(dw *DashboardWindow) *widget.Table {
	table := widget.NewTable(
		func() (rows int, cols int) {
			return len(dw.feed.Events()), len(eventsTableHeaders)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("Template")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.TableCellID, obj fyne.CanvasObject) {
			label := obj.(*widget.Label)

			events := dw.feed.Events()
			if id.Row >= len(events) {
				label.SetText("")
				return
			}
			label.SetText(eventCellText(events[id.Row], id.Col))
		},
	)

	table.ShowHeaderRow = true
	table.CreateHeader = func() fyne.CanvasObject {
		label := widget.NewLabel("Header")
		label.TextStyle.Bold = true
		return label
	}
	table.UpdateHeader = func(id widget.TableCellID, obj fyne.CanvasObject) {
		label := obj.(*widget.Label)
		if id.Col >= 0 && id.Col < len(eventsTableHeaders) {
			label.SetText(eventsTableHeaders[id.Col])
		}
	}

	table.OnSelected = func(id widget.TableCellID) {
		events := dw.feed.Events()
		if id.Row >= 0 && id.Row < len(events) {
			dw.client.showDetailWindow(events[id.Row].ID)
		}
		table.UnselectAll()
	}

	updateEventsColumnWidths(table, dw.feed.Events())
	return table
}

func eventCellText(event models.Event, col int) string {
	switch col {
	case 0:
		return event.Name
	case 1:
		return event.Category
	case 2:
		return event.EventDate.Format(eventDateDisplayLayout)
	case 3:
		return fmt.Sprintf("%.4f, %.4f", event.Location.Lat, event.Location.Lng)
	case 4:
		return event.Description
	}
	return ""
}

func updateEventsColumnWidths(table *widget.Table, events []models.Event) {
	charWidth := float32(8)
	padding := float32(20)

	columnWidths := make([]float32, len(eventsTableHeaders))
	for i, header := range eventsTableHeaders {
		columnWidths[i] = float32(len(header))*charWidth + padding
	}

	for _, event := range events {
		for col := range eventsTableHeaders {
			width := float32(len(eventCellText(event, col)))*charWidth + padding
			if width > columnWidths[col] {
				columnWidths[col] = width
			}
		}
	}

	minWidths := []float32{150, 110, 160, 160, 200}
	maxWidths := []float32{320, 160, 200, 200, 420}

	for i := range columnWidths {
		if columnWidths[i] < minWidths[i] {
			columnWidths[i] = minWidths[i]
		}
		if columnWidths[i] > maxWidths[i] {
			columnWidths[i] = maxWidths[i]
		}
		table.SetColumnWidth(i, columnWidths[i])
	}
}
