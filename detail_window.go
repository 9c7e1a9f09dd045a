package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/api"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/audio"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/export"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/mapview"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

type detailState int

const (
	detailLoading detailState = iota
	detailLoaded
	detailNotFound
	detailEditing
)

// maxRecommended caps how many similar events the detail view shows,
// regardless of how many the service returns.
const maxRecommended = 3

// DetailWindow shows one event and owns its edit and delete flows.
type DetailWindow struct {
	window  fyne.Window
	client  *EventsClient
	eventID string

	state detailState
	event models.Event

	recommended      []models.Event
	recommendedReady bool

	content *fyne.Container
}

func NewDetailWindow(ec *EventsClient, eventID string) *DetailWindow {
	dw := &DetailWindow{
		client:  ec,
		eventID: eventID,
		state:   detailLoading,
	}

	dw.window = ec.app.NewWindow("Event Details")
	dw.content = container.NewStack()
	dw.window.SetContent(dw.content)
	dw.window.Resize(fyne.NewSize(620, 760))
	dw.window.CenterOnScreen()

	dw.render()
	dw.fetchEvent()

	return dw
}

func (dw *DetailWindow) Show() {
	dw.window.Show()
}

func (dw *DetailWindow) fetchEvent() {
	go func() {
		event, err := dw.client.api.Get(dw.eventID)
		fyne.Do(func() {
			if err != nil {
				if !errors.Is(err, api.ErrNotFound) {
					log.Printf("Error fetching event %s: %v", dw.eventID, err)
				}
				dw.state = detailNotFound
				dw.render()
				return
			}

			dw.event = event
			dw.state = detailLoaded
			dw.render()

			// Similar events need the event's own coordinates, so this
			// fetch starts only once the record has arrived.
			dw.fetchRecommended(event.Location)
		})
	}()
}

func (dw *DetailWindow) fetchRecommended(location models.LatLng) {
	go func() {
		events, err := dw.client.api.Similar(dw.eventID, location)
		fyne.Do(func() {
			if err != nil {
				// Best-effort section: render the empty state.
				log.Printf("Error fetching recommended events: %v", err)
				events = nil
			}
			dw.recommended = events
			dw.recommendedReady = true
			if dw.state == detailLoaded {
				dw.render()
			}
		})
	}()
}

func (dw *DetailWindow) render() {
	var body fyne.CanvasObject

	switch dw.state {
	case detailLoading:
		loading := widget.NewProgressBarInfinite()
		loading.Start()
		body = container.NewCenter(container.NewVBox(
			widget.NewLabel("Loading event..."),
			loading,
		))
	case detailNotFound:
		notFound := widget.NewLabel("Event not found")
		notFound.Importance = widget.WarningImportance
		body = container.NewCenter(notFound)
	case detailEditing:
		body = dw.buildEditForm()
	default:
		body = dw.buildDetailView()
	}

	dw.content.Objects = []fyne.CanvasObject{body}
	dw.content.Refresh()
}

func (dw *DetailWindow) buildDetailView() fyne.CanvasObject {
	name := widget.NewLabel(dw.event.Name)
	name.TextStyle.Bold = true
	name.Wrapping = fyne.TextWrapWord

	description := widget.NewLabel(dw.event.Description)
	description.Wrapping = fyne.TextWrapWord

	meta := widget.NewLabel("Category: " + dw.event.Category +
		"\nEvent Date: " + dw.event.EventDate.Format(eventDateDisplayLayout))
	meta.Importance = widget.MediumImportance

	eventMap := mapview.NewTileMap(dw.client.env.TileURL, dw.client.env.MapAPIKey, dw.event.Location, false)

	editButton := widget.NewButton("Edit", func() {
		dw.state = detailEditing
		dw.render()
	})
	editButton.Importance = widget.HighImportance

	deleteButton := widget.NewButton("Delete", dw.confirmDelete)
	deleteButton.Importance = widget.DangerImportance

	exportButton := widget.NewButton("Add to Calendar", dw.exportICS)

	content := container.NewVBox(
		name,
		description,
		meta,
		widget.NewLabel("Location:"),
		eventMap,
		container.NewHBox(editButton, deleteButton, exportButton),
		widget.NewSeparator(),
		dw.buildRecommendedSection(),
	)

	return container.NewVScroll(container.NewPadded(content))
}

func (dw *DetailWindow) buildRecommendedSection() fyne.CanvasObject {
	header := widget.NewLabel("Recommended Events")
	header.TextStyle.Bold = true

	section := container.NewVBox(header)

	if !dw.recommendedReady {
		section.Add(widget.NewLabel("Loading..."))
		return section
	}
	if len(dw.recommended) == 0 {
		section.Add(widget.NewLabel("No recommended events available."))
		return section
	}

	recommended := dw.recommended
	if len(recommended) > maxRecommended {
		recommended = recommended[:maxRecommended]
	}
	for _, event := range recommended {
		section.Add(newEventCard(event, dw.client.showDetailWindow))
	}
	return section
}

func (dw *DetailWindow) buildEditForm() fyne.CanvasObject {
	nameEntry := widget.NewEntry()
	nameEntry.SetText(dw.event.Name)
	nameEntry.Validator = requiredValidator("Name is required!")

	descriptionEntry := widget.NewMultiLineEntry()
	descriptionEntry.SetText(dw.event.Description)
	descriptionEntry.Validator = maxLenValidator(models.MaxDescriptionLen, "Description is too big.")

	dateEntry := widget.NewEntry()
	dateEntry.SetText(dw.event.EventDate.Format(dateInputLayout))
	dateEntry.Validator = dateValidator("Event date is required!")

	categorySelect := widget.NewSelect(models.Categories, nil)
	categorySelect.SetSelected(dw.event.Category)

	location := dw.event.Location
	eventMap := mapview.NewTileMap(dw.client.env.TileURL, dw.client.env.MapAPIKey, location, true)
	eventMap.OnPointMoved = func(p models.LatLng) {
		location = p
	}

	form := widget.NewForm(
		widget.NewFormItem("Event Name", nameEntry),
		widget.NewFormItem("Description", descriptionEntry),
		widget.NewFormItem("Event Date", dateEntry),
		widget.NewFormItem("Category", categorySelect),
		widget.NewFormItem("Location", eventMap),
	)
	form.SubmitText = "Save"
	form.CancelText = "Cancel"

	form.OnCancel = func() {
		dw.state = detailLoaded
		dw.render()
	}
	form.OnSubmit = func() {
		eventDate, _ := time.ParseInLocation(dateInputLayout, dateEntry.Text, time.Local)
		fields := models.EventFields{
			Name:        nameEntry.Text,
			Description: descriptionEntry.Text,
			Category:    categorySelect.Selected,
			EventDate:   eventDate,
			Location:    location,
		}
		if problems := fields.Validate(); len(problems) > 0 {
			dialog.ShowError(firstProblem(problems), dw.window)
			return
		}
		dw.submitUpdate(fields)
	}

	return container.NewVScroll(container.NewPadded(form))
}

func (dw *DetailWindow) submitUpdate(fields models.EventFields) {
	go func() {
		updated, err := dw.client.api.Update(dw.eventID, fields)
		fyne.Do(func() {
			if err != nil {
				// The form stays in edit mode; nothing was applied.
				log.Printf("Error updating event %s: %v", dw.eventID, err)
				dialog.ShowError(fmt.Errorf("failed to save event: %w", err), dw.window)
				return
			}

			// The save response replaces the held record; no re-fetch.
			dw.event = updated
			dw.state = detailLoaded
			dw.render()
			dw.client.refreshDashboard()
		})
	}()
}

func (dw *DetailWindow) confirmDelete() {
	dialog.ShowConfirm("Confirm Deletion",
		"Are you sure you want to delete this event?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			go func() {
				err := dw.client.api.Delete(dw.eventID)
				fyne.Do(func() {
					if err != nil {
						// Leaving silently here would make failure look like
						// success, so the window stays open instead.
						log.Printf("Error deleting event %s: %v", dw.eventID, err)
						dialog.ShowError(fmt.Errorf("failed to delete event: %w", err), dw.window)
						return
					}
					audio.Chime()
					dw.client.refreshDashboard()
					dw.window.Close()
				})
			}()
		}, dw.window)
}

func (dw *DetailWindow) exportICS() {
	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := export.WriteICS(writer, dw.event); err != nil {
			log.Printf("Error exporting event %s: %v", dw.eventID, err)
			dialog.ShowError(err, dw.window)
		}
	}, dw.window)
	fileSave.SetFileName(dw.event.Name + ".ics")
	fileSave.Show()
}

func firstProblem(problems map[string]string) error {
	for _, message := range problems {
		return errors.New(message)
	}
	return nil
}
