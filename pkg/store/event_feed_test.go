package store

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// fakeLister records every List call and answers through a queue of
// scripted responses, or through a respond function when one is set
// (needed when concurrent cycles make call order nondeterministic).
type fakeLister struct {
	mu        sync.Mutex
	calls     int
	queries   []models.EventQuery
	responses []scriptedResponse
	respond   func(models.EventQuery) ([]models.Event, error)
}

type scriptedResponse struct {
	events []models.Event
	err    error
	gate   chan struct{} // when non-nil, List blocks until it closes
}

func (f *fakeLister) List(query models.EventQuery) ([]models.Event, error) {
	f.mu.Lock()
	f.calls++
	f.queries = append(f.queries, query)
	respond := f.respond
	var resp scriptedResponse
	if respond == nil && len(f.responses) > 0 {
		resp = f.responses[0]
		f.responses = f.responses[1:]
	}
	f.mu.Unlock()

	if respond != nil {
		return respond(query)
	}
	if resp.gate != nil {
		<-resp.gate
	}
	return resp.events, resp.err
}

func (f *fakeLister) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitChange(t *testing.T, done chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a fetch cycle to complete")
	}
}

func singleEvent() []models.Event {
	return []models.Event{{
		ID:        "1",
		Name:      "Conf",
		Category:  "Conference",
		EventDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Location:  models.LatLng{Lat: 1, Lng: 2},
	}}
}

func TestMountFetchWithEmptyFilter(t *testing.T) {
	lister := &fakeLister{responses: []scriptedResponse{{events: singleEvent()}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.Refresh()
	waitChange(t, done)

	if got := lister.queries[0].Encode(); got != "" {
		t.Errorf("mount query = %q, want empty", got)
	}
	if !reflect.DeepEqual(feed.Events(), singleEvent()) {
		t.Errorf("events = %+v", feed.Events())
	}
	if feed.Loading() {
		t.Error("loading should be false after the cycle completes")
	}
}

func TestEverySetFilterIssuesAFetch(t *testing.T) {
	// No de-duplication: value-identical merges still fetch.
	lister := &fakeLister{responses: []scriptedResponse{{}, {}, {}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.SetFilter(models.WithCategory("Workshop"))
	waitChange(t, done)
	feed.SetFilter(models.WithCategory("Workshop"))
	waitChange(t, done)
	feed.SetFilter(models.WithCategory("Workshop"))
	waitChange(t, done)

	if got := lister.callCount(); got != 3 {
		t.Errorf("List called %d times, want 3 (one per SetFilter)", got)
	}
}

func TestLoadingCoversTheWholeCycle(t *testing.T) {
	gate := make(chan struct{})
	lister := &fakeLister{responses: []scriptedResponse{{events: singleEvent(), gate: gate}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	if feed.Loading() {
		t.Error("loading should start false")
	}

	feed.SetFilter(models.QueryPatch{})
	if !feed.Loading() {
		t.Error("loading should be true while the fetch is in flight")
	}

	close(gate)
	waitChange(t, done)
	if feed.Loading() {
		t.Error("loading should be false after success")
	}
}

func TestLoadingClearsOnFailureToo(t *testing.T) {
	lister := &fakeLister{responses: []scriptedResponse{{err: errors.New("connection refused")}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.SetFilter(models.QueryPatch{})
	waitChange(t, done)

	if feed.Loading() {
		t.Error("loading must clear on the error path")
	}
}

func TestFailureKeepsPreviousList(t *testing.T) {
	lister := &fakeLister{responses: []scriptedResponse{
		{events: singleEvent()},
		{err: errors.New("boom")},
	}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.SetFilter(models.QueryPatch{})
	waitChange(t, done)
	before := feed.Events()

	feed.SetFilter(models.WithCategory("Workshop"))
	waitChange(t, done)

	if !reflect.DeepEqual(feed.Events(), before) {
		t.Errorf("list changed on failure: %+v", feed.Events())
	}
}

func TestFilterQueryReachesTheClient(t *testing.T) {
	lister := &fakeLister{responses: []scriptedResponse{{err: errors.New("boom")}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.SetFilter(models.WithCategory("Workshop"))
	waitChange(t, done)

	if got := lister.queries[0].Encode(); got != "categories=Workshop" {
		t.Errorf("query = %q, want categories=Workshop", got)
	}
	if len(feed.Events()) != 0 {
		t.Errorf("list should still be empty, got %+v", feed.Events())
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	slow := make(chan struct{})
	lister := &fakeLister{}
	lister.respond = func(query models.EventQuery) ([]models.Event, error) {
		if query.Categories == "" {
			// First cycle: held in flight until the test releases it.
			<-slow
			return singleEvent(), nil
		}
		return []models.Event{{ID: "2", Name: "Newer"}}, nil
	}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	feed.SetFilter(models.QueryPatch{})
	feed.SetFilter(models.WithCategory("Webinar"))
	waitChange(t, done) // second cycle completes first

	if got := feed.Events(); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("events = %+v, want the newer response", got)
	}
	if feed.Loading() {
		t.Error("loading should clear once the newest cycle completes")
	}

	// Now the older response arrives; it must not overwrite the newer one.
	close(slow)
	waitChange(t, done)

	if got := feed.Events(); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("stale response overwrote newer result: %+v", got)
	}
	if feed.Loading() {
		t.Error("loading should remain false")
	}
}

func TestMergePreservesUntouchedFields(t *testing.T) {
	lister := &fakeLister{responses: []scriptedResponse{{}, {}}}
	done := make(chan struct{}, 8)
	feed := NewEventFeed(lister, func() { done <- struct{}{} })

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	feed.SetFilter(models.WithFromDate(&from))
	waitChange(t, done)
	feed.SetFilter(models.WithCategory("Conference"))
	waitChange(t, done)

	query := feed.Query()
	if query.Categories != "Conference" {
		t.Errorf("Categories = %q", query.Categories)
	}
	if query.FromDate == nil || !query.FromDate.Equal(from) {
		t.Errorf("FromDate lost by later patch: %v", query.FromDate)
	}
}
