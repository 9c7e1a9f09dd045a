// Package api translates filter state and CRUD intents into HTTP requests
// against the remote events service. Every operation is one-shot: no retry,
// no backoff, no caching.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// ErrNotFound is returned by Get when the service has no event for the id.
var ErrNotFound = errors.New("event not found")

// EventsService is the HTTP client for the events API.
type EventsService struct {
	baseURL string
	http    *http.Client
}

// NewEventsService creates a client for the service at baseURL
// (e.g. "http://localhost:8080"). A trailing slash is tolerated.
func NewEventsService(baseURL string, client *http.Client) *EventsService {
	if client == nil {
		client = http.DefaultClient
	}
	return &EventsService{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    client,
	}
}

// List fetches the events matching query. The response is trusted to be an
// array of event-shaped objects; no client-side reshaping is done.
func (s *EventsService) List(query models.EventQuery) ([]models.Event, error) {
	endpoint := s.baseURL + "/api/events"
	if qs := query.Encode(); qs != "" {
		endpoint += "?" + qs
	}

	var events []models.Event
	if err := s.do(http.MethodGet, endpoint, nil, &events); err != nil {
		return nil, err
	}
	// A bodyless 200 decodes to nil; callers rely on the empty list.
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Get fetches a single event. A 404 or an empty body resolves to ErrNotFound
// so the detail view can render its not-found state.
func (s *EventsService) Get(id string) (models.Event, error) {
	var event models.Event
	err := s.do(http.MethodGet, s.baseURL+"/api/events/"+id, nil, &event)
	if err != nil {
		return models.Event{}, err
	}
	if event.ID == "" {
		return models.Event{}, ErrNotFound
	}
	return event, nil
}

// Similar fetches events near location, keyed by the event's own id. The
// service decides how many to return; callers truncate for display.
func (s *EventsService) Similar(id string, location models.LatLng) ([]models.Event, error) {
	endpoint := fmt.Sprintf("%s/api/events/%s/similar?lat=%v&lng=%v",
		s.baseURL, id, location.Lat, location.Lng)

	var events []models.Event
	if err := s.do(http.MethodGet, endpoint, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create submits a new event and returns it with the server-assigned id.
func (s *EventsService) Create(fields models.EventFields) (models.Event, error) {
	var event models.Event
	if err := s.do(http.MethodPost, s.baseURL+"/api/events", fields, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Update replaces the editable fields of an existing event.
func (s *EventsService) Update(id string, fields models.EventFields) (models.Event, error) {
	var event models.Event
	if err := s.do(http.MethodPut, s.baseURL+"/api/events/"+id, fields, &event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

// Delete removes an event. The service returns no body.
func (s *EventsService) Delete(id string) error {
	return s.do(http.MethodDelete, s.baseURL+"/api/events/"+id, nil, nil)
}

// do runs one request/response round trip. The request id ties together the
// log lines of a single call.
func (s *EventsService) do(method, endpoint string, payload, out any) error {
	reqID := uuid.New().String()[:8]

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Printf("[api %s] %s %s", reqID, method, endpoint)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[api %s] status %d: %s", reqID, resp.StatusCode, strings.TrimSpace(string(data)))
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if out == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		// Some endpoints answer 200 with no body when there is nothing to return.
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	log.Printf("[api %s] done", reqID)
	return nil
}
