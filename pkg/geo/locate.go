// Package geo resolves an approximate position for the current machine so
// the create form can center its map near the user. It is best-effort: any
// failure falls back to a fixed default.
package geo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// DefaultLocation is used when geolocation is unavailable.
var DefaultLocation = models.LatLng{Lat: 49.83626897647696, Lng: 24.027122497558587}

// Locator looks up the machine's approximate coordinates.
type Locator struct {
	endpoint string
	http     *http.Client
}

// NewLocator creates a locator against an ip-api style JSON endpoint.
func NewLocator(endpoint string, client *http.Client) *Locator {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &Locator{endpoint: endpoint, http: client}
}

// Locate returns the approximate position of the caller's public IP.
func (l *Locator) Locate() (models.LatLng, error) {
	resp, err := l.http.Get(l.endpoint)
	if err != nil {
		return DefaultLocation, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DefaultLocation, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return DefaultLocation, fmt.Errorf("failed to decode geolocation response: %w", err)
	}
	if payload.Status != "" && payload.Status != "success" {
		return DefaultLocation, fmt.Errorf("geolocation lookup failed: status %q", payload.Status)
	}

	return models.LatLng{Lat: payload.Lat, Lng: payload.Lon}, nil
}
