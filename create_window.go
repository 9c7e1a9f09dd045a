package main

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/audio"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/geo"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/mapview"
	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// CreateWindow is the new-event form. The map starts at a geolocated
// position when one can be resolved, and the window only closes once the
// service has accepted the event.
type CreateWindow struct {
	window fyne.Window
	client *EventsClient

	form       *widget.Form
	submitting bool

	location  models.LatLng
	userMoved bool
	eventMap  *mapview.TileMap
}

func NewCreateWindow(ec *EventsClient, locator *geo.Locator) *CreateWindow {
	cw := &CreateWindow{
		client:   ec,
		location: geo.DefaultLocation,
	}

	cw.window = ec.app.NewWindow("Create Event")
	cw.buildUI()
	cw.locate(locator)

	return cw
}

func (cw *CreateWindow) Show() {
	cw.window.Show()
}

// locate resolves an approximate starting point for the map. Best-effort:
// the fixed default stands when the lookup fails, and a point the user has
// already picked is never overridden.
func (cw *CreateWindow) locate(locator *geo.Locator) {
	if locator == nil {
		return
	}
	go func() {
		located, err := locator.Locate()
		if err != nil {
			log.Printf("Geolocation unavailable: %v", err)
			return
		}
		fyne.Do(func() {
			if cw.userMoved {
				return
			}
			cw.location = located
			cw.eventMap.SetPoint(located)
		})
	}()
}

func (cw *CreateWindow) buildUI() {
	title := widget.NewLabel("Create Event")
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Name")
	nameEntry.Validator = requiredValidator("Name is required!")

	descriptionEntry := widget.NewEntry()
	descriptionEntry.SetPlaceHolder("Description")
	descriptionEntry.Validator = maxLenValidator(models.MaxDescriptionLen, "Description is too big.")

	dateEntry := widget.NewEntry()
	dateEntry.SetText(time.Now().Format(dateInputLayout))
	dateEntry.Validator = dateValidator("Event date is required!")

	categorySelect := widget.NewSelect(models.Categories, nil)
	categorySelect.PlaceHolder = "Category"

	cw.eventMap = mapview.NewTileMap(cw.client.env.TileURL, cw.client.env.MapAPIKey, cw.location, true)
	cw.eventMap.OnPointMoved = func(p models.LatLng) {
		cw.location = p
		cw.userMoved = true
	}

	cw.form = widget.NewForm(
		widget.NewFormItem("Name", nameEntry),
		widget.NewFormItem("Description", descriptionEntry),
		widget.NewFormItem("Event Date", dateEntry),
		widget.NewFormItem("Category", categorySelect),
		widget.NewFormItem("Location", cw.eventMap),
	)
	cw.form.SubmitText = "Save"
	cw.form.CancelText = "Cancel"

	cw.form.OnCancel = func() {
		cw.window.Close()
	}
	cw.form.OnSubmit = func() {
		if cw.submitting {
			return
		}

		eventDate, _ := time.ParseInLocation(dateInputLayout, dateEntry.Text, time.Local)
		fields := models.EventFields{
			Name:        nameEntry.Text,
			Description: descriptionEntry.Text,
			Category:    categorySelect.Selected,
			EventDate:   eventDate,
			Location:    cw.location,
		}
		if problems := fields.Validate(); len(problems) > 0 {
			dialog.ShowError(firstProblem(problems), cw.window)
			return
		}
		cw.submit(fields)
	}

	content := container.NewVBox(title, cw.form)
	cw.window.SetContent(container.NewVScroll(container.NewPadded(content)))
	cw.window.Resize(fyne.NewSize(620, 680))
	cw.window.CenterOnScreen()
}

func (cw *CreateWindow) submit(fields models.EventFields) {
	cw.submitting = true

	go func() {
		created, err := cw.client.api.Create(fields)
		fyne.Do(func() {
			cw.submitting = false

			if err != nil {
				// Navigating away here would make failure indistinguishable
				// from success, so the form stays open.
				log.Printf("Error creating event: %v", err)
				dialog.ShowError(fmt.Errorf("failed to create event: %w", err), cw.window)
				return
			}

			log.Printf("Created event %s", created.ID)
			cw.client.app.SendNotification(fyne.NewNotification(
				"CG Events", "Event created successfully!"))
			audio.Chime()

			cw.client.refreshDashboard()
			cw.window.Close()
		})
	}()
}
