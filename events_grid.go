package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// newEmptyEventsState is what both views render when the filter matches
// nothing.
func newEmptyEventsState() fyne.CanvasObject {
	empty := widget.NewLabel("No events found.\n\nAdjust the filters above or add a new event to get started.")
	empty.Wrapping = fyne.TextWrapWord
	empty.Importance = widget.MediumImportance
	return container.NewPadded(empty)
}

// buildEventsGrid renders the same fetched list as a wrap grid of cards.
func buildEventsGrid(events []models.Event, onView func(eventID string)) fyne.CanvasObject {
	if len(events) == 0 {
		return newEmptyEventsState()
	}

	cards := []fyne.CanvasObject{}
	for _, event := range events {
		cards = append(cards, newEventCard(event, onView))
	}

	return container.NewVScroll(container.NewGridWrap(fyne.NewSize(320, 220), cards...))
}

func newEventCard(event models.Event, onView func(eventID string)) fyne.CanvasObject {
	description := widget.NewLabel(event.Description)
	description.Wrapping = fyne.TextWrapWord

	details := widget.NewLabel("Category: " + event.Category +
		"\nEvent Date: " + event.EventDate.Format(eventDateDisplayLayout))
	details.Importance = widget.MediumImportance

	eventID := event.ID
	viewButton := widget.NewButton("View Event", func() {
		onView(eventID)
	})

	return widget.NewCard(event.Name, "",
		container.NewVBox(description, details, viewButton),
	)
}
