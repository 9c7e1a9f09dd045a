// Package store holds the dashboard's single source of truth for which
// events are currently of interest and what the service last returned.
package store

import (
	"log"
	"sync"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// EventLister is the slice of the API client the feed needs.
type EventLister interface {
	List(query models.EventQuery) ([]models.Event, error)
}

// EventFeed owns the live filter state, the last successfully fetched list
// and the loading flag. SetFilter is the only mutation path; every call
// schedules a fetch cycle, even when the merged query is value-identical
// to the previous one.
//
// Responses can complete out of order, so each cycle is tagged with a
// generation at issuance and only the highest generation seen so far may
// apply its result.
type EventFeed struct {
	mu sync.Mutex

	client EventLister
	query  models.EventQuery
	events []models.Event

	issued  uint64 // generation of the most recently issued fetch
	applied uint64 // highest generation that has completed
	loading bool

	onChange func()
}

// NewEventFeed creates a feed over client. onChange fires when a fetch
// cycle completes, always from the fetch goroutine and outside the feed's
// lock; UI consumers wrap it in fyne.Do. SetFilter flips the loading flag
// before it returns, so callers can repaint immediately after issuing it.
func NewEventFeed(client EventLister, onChange func()) *EventFeed {
	return &EventFeed{
		client:   client,
		events:   []models.Event{},
		onChange: onChange,
	}
}

// Query returns a copy of the current filter state.
func (f *EventFeed) Query() models.EventQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

// Events returns the last successfully fetched list. The slice is shared;
// consumers render it and do not mutate it.
func (f *EventFeed) Events() []models.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.events
}

// Loading reports whether a fetch cycle that could still win is in flight.
func (f *EventFeed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Refresh issues a fetch cycle for the current query without changing it.
// Used on dashboard mount.
func (f *EventFeed) Refresh() {
	f.SetFilter(models.QueryPatch{})
}

// SetFilter merges patch into the filter state and unconditionally starts a
// new fetch cycle. The call returns as soon as the cycle is issued; results
// arrive through the onChange callback.
func (f *EventFeed) SetFilter(patch models.QueryPatch) {
	f.mu.Lock()
	f.query = f.query.Apply(patch)
	f.issued++
	gen := f.issued
	query := f.query
	f.loading = true
	f.mu.Unlock()

	go f.fetch(gen, query)
}

func (f *EventFeed) fetch(gen uint64, query models.EventQuery) {
	events, err := f.client.List(query)

	f.mu.Lock()
	if gen <= f.applied {
		// A newer cycle already completed; this result is stale either way.
		f.mu.Unlock()
		log.Printf("Discarding stale fetch result (generation %d)", gen)
		f.notify()
		return
	}
	f.applied = gen

	if err != nil {
		// Stale-on-error: keep whatever list we had.
		log.Printf("Error fetching events: %v", err)
	} else {
		f.events = events
	}

	// The loading flag must clear on every exit path of the winning cycle,
	// but stays up while a newer cycle is still in flight.
	f.loading = gen != f.issued
	f.mu.Unlock()

	f.notify()
}

func (f *EventFeed) notify() {
	if f.onChange != nil {
		f.onChange()
	}
}
