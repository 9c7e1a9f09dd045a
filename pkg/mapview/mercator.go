package mapview

import (
	"math"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// tileSize is the pixel edge of one slippy-map tile.
const tileSize = 256

// tileCoords projects p into fractional tile coordinates at zoom
// (Web Mercator / slippy map convention).
func tileCoords(p models.LatLng, zoom int) (x, y float64) {
	n := float64(int(1) << uint(zoom))
	latRad := p.Lat * math.Pi / 180

	x = (p.Lng + 180) / 360 * n
	y = (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2 * n
	return x, y
}

// coordsAt inverts tileCoords: fractional tile coordinates back to lat/lng.
func coordsAt(x, y float64, zoom int) models.LatLng {
	n := float64(int(1) << uint(zoom))

	lng := x/n*360 - 180
	latRad := math.Atan(math.Sinh(math.Pi * (1 - 2*y/n)))
	return models.LatLng{Lat: latRad * 180 / math.Pi, Lng: lng}
}

// clampLat keeps latitudes inside the Mercator-projectable range.
func clampLat(lat float64) float64 {
	const limit = 85.05112878
	if lat > limit {
		return limit
	}
	if lat < -limit {
		return -limit
	}
	return lat
}
