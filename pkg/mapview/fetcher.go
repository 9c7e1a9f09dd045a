package mapview

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

var tileClient = &http.Client{Timeout: 10 * time.Second}

// fetchTile downloads one map tile. template carries {z}/{x}/{y}
// placeholders; apiKey is appended as a key parameter when non-empty.
func fetchTile(template string, zoom, x, y int, apiKey string) ([]byte, error) {
	tileURL := strings.NewReplacer(
		"{z}", strconv.Itoa(zoom),
		"{x}", strconv.Itoa(x),
		"{y}", strconv.Itoa(y),
	).Replace(template)

	if apiKey != "" {
		sep := "?"
		if strings.Contains(tileURL, "?") {
			sep = "&"
		}
		tileURL += sep + "key=" + apiKey
	}

	req, err := http.NewRequest(http.MethodGet, tileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tile request: %w", err)
	}
	// Tile servers reject anonymous default agents.
	req.Header.Set("User-Agent", "CGEventsClient/1.0")

	resp, err := tileClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching tile %s", resp.StatusCode, tileURL)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile body: %w", err)
	}
	return data, nil
}
