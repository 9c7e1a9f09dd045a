// Package export writes a single event as an iCalendar file so it can be
// handed to the local calendar application.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

const productID = "-//CGEventsClient//Events//EN"

// WriteICS encodes event as a VCALENDAR with one all-day VEVENT.
func WriteICS(w io.Writer, event models.Event) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	ev := ical.NewEvent()
	ev.Props.SetText(ical.PropUID, event.ID)
	ev.Props.SetText(ical.PropSummary, event.Name)
	if event.Description != "" {
		ev.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Category != "" {
		ev.Props.SetText(ical.PropCategories, event.Category)
	}
	ev.Props.SetText(ical.PropGeo, fmt.Sprintf("%v;%v", event.Location.Lat, event.Location.Lng))
	ev.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())

	// Events carry date precision only; export as an all-day entry.
	ev.Props.SetDate(ical.PropDateTimeStart, event.EventDate)
	ev.Props.SetDate(ical.PropDateTimeEnd, event.EventDate.AddDate(0, 0, 1))

	cal.Children = append(cal.Children, ev.Component)

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}
