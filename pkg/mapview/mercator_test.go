package mapview

import (
	"math"
	"testing"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

func TestTileCoordsOrigin(t *testing.T) {
	// Lat/lng 0,0 sits at the center of the tile grid.
	x, y := tileCoords(models.LatLng{}, 1)
	if x != 1 || y != 1 {
		t.Errorf("tileCoords(0,0, z=1) = (%v, %v), want (1, 1)", x, y)
	}
}

func TestProjectionRoundTrip(t *testing.T) {
	points := []models.LatLng{
		{Lat: 49.8397, Lng: 24.0297},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 60.1699, Lng: -135.05},
	}

	for _, p := range points {
		x, y := tileCoords(p, 12)
		back := coordsAt(x, y, 12)
		if math.Abs(back.Lat-p.Lat) > 1e-9 || math.Abs(back.Lng-p.Lng) > 1e-9 {
			t.Errorf("round trip %+v -> %+v", p, back)
		}
	}
}

func TestClampLat(t *testing.T) {
	if got := clampLat(90); got >= 86 {
		t.Errorf("clampLat(90) = %v, want inside Mercator range", got)
	}
	if got := clampLat(-90); got <= -86 {
		t.Errorf("clampLat(-90) = %v, want inside Mercator range", got)
	}
	if got := clampLat(50); got != 50 {
		t.Errorf("clampLat(50) = %v, want unchanged", got)
	}
}
