// Package config loads the environment-level settings the client consumes:
// the events API base address and the map/geolocation endpoints.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultBaseURL matches the local development server.
	DefaultBaseURL = "http://localhost:8080"

	// DefaultTileURL is the OSM static tile template used by the map widget.
	// Placeholders: {z}, {x}, {y}.
	DefaultTileURL = "https://tile.openstreetmap.org/{z}/{x}/{y}.png"

	// DefaultGeolocationURL answers with an approximate location for the
	// caller's public IP, standing in for browser geolocation.
	DefaultGeolocationURL = "http://ip-api.com/json/"
)

// Env holds the process-level configuration read once at startup.
type Env struct {
	BaseURL        string // events API base address
	TileURL        string // map tile URL template
	GeolocationURL string // IP geolocation endpoint
	MapAPIKey      string // appended to tile requests when the provider wants one
}

// Load reads a .env file when present, then the process environment.
// Missing values fall back to defaults; nothing here is fatal.
func Load() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	return Env{
		BaseURL:        getenv("API_BASE_URL", DefaultBaseURL),
		TileURL:        getenv("MAP_TILE_URL", DefaultTileURL),
		GeolocationURL: getenv("GEOLOCATION_URL", DefaultGeolocationURL),
		MapAPIKey:      os.Getenv("MAP_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
