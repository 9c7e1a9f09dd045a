package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

func sampleEvent() models.Event {
	return models.Event{
		ID:        "1",
		Name:      "Conf",
		Category:  "Conference",
		EventDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Location:  models.LatLng{Lat: 1, Lng: 2},
	}
}

func TestListSendsFilterQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/events" {
			t.Errorf("path = %s, want /api/events", r.URL.Path)
		}
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]models.Event{sampleEvent()})
	}))
	defer server.Close()

	svc := NewEventsService(server.URL, nil)

	events, err := svc.List(models.EventQuery{Categories: "Workshop"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if gotQuery != "categories=Workshop" {
		t.Errorf("query = %q, want categories=Workshop", gotQuery)
	}
	if len(events) != 1 || events[0].ID != "1" {
		t.Errorf("unexpected events: %+v", events)
	}
}

func TestListEmptyFilterSendsNoQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]models.Event{})
	}))
	defer server.Close()

	if _, err := NewEventsService(server.URL, nil).List(models.EventQuery{}); err != nil {
		t.Fatalf("List: %v", err)
	}
}

func TestListEmptyBodyYieldsEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	events, err := NewEventsService(server.URL, nil).List(models.EventQuery{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if events == nil {
		t.Fatal("List should return an empty list, not nil")
	}
	if len(events) != 0 {
		t.Errorf("got %d events, want 0", len(events))
	}
}

func TestGetNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := NewEventsService(server.URL, nil).Get("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetEmptyBodyResolvesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewEventsService(server.URL, nil).Get("ghost")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSimilarSendsCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/events/1/similar" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("lat") != "49.84" || r.URL.Query().Get("lng") != "24.03" {
			t.Errorf("coords = %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]models.Event{sampleEvent()})
	}))
	defer server.Close()

	events, err := NewEventsService(server.URL, nil).Similar("1", models.LatLng{Lat: 49.84, Lng: 24.03})
	if err != nil {
		t.Fatalf("Similar: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events, want 1", len(events))
	}
}

func TestCreateSendsFieldsAndReturnsServerID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}

		var fields map[string]any
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if fields["name"] != "Conf" {
			t.Errorf("name = %v", fields["name"])
		}
		if fields["eventDate"] != "2024-05-01T00:00:00Z" {
			t.Errorf("eventDate = %v, want full ISO-8601", fields["eventDate"])
		}

		json.NewEncoder(w).Encode(sampleEvent())
	}))
	defer server.Close()

	created, err := NewEventsService(server.URL, nil).Create(sampleEvent().Fields())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != "1" {
		t.Errorf("ID = %q, want server-assigned 1", created.ID)
	}
}

func TestUpdateUsesPut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/events/1" {
			t.Errorf("%s %s, want PUT /api/events/1", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(sampleEvent())
	}))
	defer server.Close()

	if _, err := NewEventsService(server.URL, nil).Update("1", sampleEvent().Fields()); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestDeleteSendsNoBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/events/1" {
			t.Errorf("%s %s, want DELETE /api/events/1", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	if err := NewEventsService(server.URL, nil).Delete("1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestServerErrorIsReturnedNotPanicked(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	if _, err := NewEventsService(server.URL, nil).List(models.EventQuery{}); err == nil {
		t.Fatal("expected an error for a 500 response")
	}
}

func TestNetworkFailureIsContained(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	if _, err := NewEventsService(server.URL, nil).List(models.EventQuery{}); err == nil {
		t.Fatal("expected a transport error")
	}
}
