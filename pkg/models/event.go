package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// LatLng is a complete coordinate pair; neither field is ever present alone.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Event represents a single event as exchanged with the remote service
type Event struct {
	ID          string    `json:"id"`          // Assigned by the server, never generated here
	Name        string    `json:"name"`        // Display name
	Description string    `json:"description"` // Free text
	Category    string    `json:"category"`    // One of Categories
	EventDate   time.Time `json:"eventDate"`   // Date precision, ISO-8601 on the wire
	Location    LatLng    `json:"location"`    // Coordinate pair
}

// EventFields is the editable subset of an Event, used for create and
// update payloads. The server responds with a full Event.
type EventFields struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	EventDate   time.Time `json:"eventDate"`
	Location    LatLng    `json:"location"`
}

// Fields returns the editable portion of an event.
func (e Event) Fields() EventFields {
	return EventFields{
		Name:        e.Name,
		Description: e.Description,
		Category:    e.Category,
		EventDate:   e.EventDate,
		Location:    e.Location,
	}
}

// Categories is the fixed category set shared by the filter UI and the
// create/edit forms.
var Categories = []string{
	"Conference",
	"Workshop",
	"Webinar",
	"Networking",
}

// ValidCategory reports whether category is a member of Categories.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// MaxDescriptionLen is the soft length limit enforced by form validation.
// It is not a storage invariant; the server is authoritative.
const MaxDescriptionLen = 30

// Validate checks the editable fields the way the create/edit forms do.
// It returns one message per failing field, keyed by JSON field name.
func (f EventFields) Validate() map[string]string {
	problems := map[string]string{}

	if f.Name == "" {
		problems["name"] = "Name is required!"
	}
	if len(f.Description) > MaxDescriptionLen {
		problems["description"] = "Description is too big."
	}
	if f.EventDate.IsZero() {
		problems["eventDate"] = "Event date is required!"
	}
	if f.Category == "" {
		problems["category"] = "Category is required!"
	} else if !ValidCategory(f.Category) {
		problems["category"] = fmt.Sprintf("Unknown category: %s", f.Category)
	}

	return problems
}

// MarshalJSON serializes EventDate as a full ISO-8601 timestamp.
func (f EventFields) MarshalJSON() ([]byte, error) {
	type alias EventFields
	return json.Marshal(struct {
		alias
		EventDate string `json:"eventDate"`
	}{
		alias:     alias(f),
		EventDate: f.EventDate.Format(time.RFC3339),
	})
}
