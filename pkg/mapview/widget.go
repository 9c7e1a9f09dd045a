// Package mapview renders a point on a map and optionally lets the user tap
// to pick a new point. The Picker contract captures the capability; the
// tile widget is one implementation of it.
package mapview

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ArthurLitnarovych/CGEventsClient/pkg/models"
)

// Picker is the narrow map capability consumed by the event screens:
// show a point, read it back, and (when editable) learn that the user
// moved it via the widget's OnPointMoved callback.
type Picker interface {
	fyne.CanvasObject
	SetPoint(models.LatLng)
	Point() models.LatLng
}

// TileMap is a Picker backed by a slippy-map tile server. It shows the
// single tile containing the point with a marker overlay; tapping moves
// the marker when the widget is editable.
type TileMap struct {
	widget.BaseWidget

	// OnPointMoved fires after the user taps a new location. Never fires
	// on read-only maps or from SetPoint.
	OnPointMoved func(models.LatLng)

	template string
	apiKey   string
	zoom     int
	editable bool

	point   models.LatLng
	tx, ty  int
	tileRes fyne.Resource
	loadErr error
	loadSeq int
}

// NewTileMap creates a map widget centered on point. Editable maps report
// taps through OnPointMoved.
func NewTileMap(template, apiKey string, point models.LatLng, editable bool) *TileMap {
	m := &TileMap{
		template: template,
		apiKey:   apiKey,
		zoom:     12,
		editable: editable,
		point:    point,
		tx:       -1,
		ty:       -1,
	}
	m.ExtendBaseWidget(m)
	m.reload()
	return m
}

// Point returns the currently marked location.
func (m *TileMap) Point() models.LatLng {
	return m.point
}

// SetPoint moves the marker, refetching the tile when the point leaves it.
func (m *TileMap) SetPoint(p models.LatLng) {
	p.Lat = clampLat(p.Lat)
	m.point = p
	m.reload()
}

// Tapped converts the tap position back to coordinates and reports it.
func (m *TileMap) Tapped(ev *fyne.PointEvent) {
	if !m.editable {
		return
	}
	size := m.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	x := float64(m.tx) + float64(ev.Position.X/size.Width)
	y := float64(m.ty) + float64(ev.Position.Y/size.Height)
	m.point = coordsAt(x, y, m.zoom)
	m.Refresh()

	if m.OnPointMoved != nil {
		m.OnPointMoved(m.point)
	}
}

func (m *TileMap) reload() {
	x, y := tileCoords(m.point, m.zoom)
	tx, ty := int(x), int(y)

	if m.tileRes != nil && tx == m.tx && ty == m.ty {
		m.Refresh()
		return
	}

	m.tx, m.ty = tx, ty
	m.loadSeq++
	seq := m.loadSeq

	go func() {
		data, err := fetchTile(m.template, m.zoom, tx, ty, m.apiKey)
		fyne.Do(func() {
			if seq != m.loadSeq {
				return
			}
			if err != nil {
				log.Printf("Error fetching map tile: %v", err)
				m.loadErr = err
			} else {
				m.loadErr = nil
				m.tileRes = fyne.NewStaticResource(
					fmt.Sprintf("tile-%d-%d-%d.png", m.zoom, tx, ty), data)
			}
			m.Refresh()
		})
	}()
	m.Refresh()
}

func (m *TileMap) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.InputBackgroundColor())
	tile := canvas.NewImageFromResource(nil)
	tile.FillMode = canvas.ImageFillStretch

	marker := canvas.NewCircle(theme.ErrorColor())
	status := canvas.NewText("Loading map...", theme.ForegroundColor())
	status.Alignment = fyne.TextAlignCenter

	return &tileMapRenderer{
		widget: m,
		bg:     bg,
		tile:   tile,
		marker: marker,
		status: status,
	}
}

type tileMapRenderer struct {
	widget *TileMap
	bg     *canvas.Rectangle
	tile   *canvas.Image
	marker *canvas.Circle
	status *canvas.Text
}

func (r *tileMapRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.tile.Resize(size)
	r.status.Resize(fyne.NewSize(size.Width, r.status.MinSize().Height))
	r.status.Move(fyne.NewPos(0, size.Height/2))
	r.placeMarker(size)
}

func (r *tileMapRenderer) placeMarker(size fyne.Size) {
	x, y := tileCoords(r.widget.point, r.widget.zoom)
	fx := float32(x - float64(r.widget.tx))
	fy := float32(y - float64(r.widget.ty))

	const d = 12
	r.marker.Resize(fyne.NewSize(d, d))
	r.marker.Move(fyne.NewPos(fx*size.Width-d/2, fy*size.Height-d/2))
}

func (r *tileMapRenderer) MinSize() fyne.Size {
	return fyne.NewSize(tileSize, tileSize)
}

func (r *tileMapRenderer) Refresh() {
	r.tile.Resource = r.widget.tileRes
	r.tile.Hidden = r.widget.tileRes == nil

	switch {
	case r.widget.loadErr != nil:
		r.status.Text = "Map unavailable"
		r.status.Hidden = false
	case r.widget.tileRes == nil:
		r.status.Text = "Loading map..."
		r.status.Hidden = false
	default:
		r.status.Hidden = true
	}

	r.placeMarker(r.bg.Size())
	r.bg.Refresh()
	r.tile.Refresh()
	r.marker.Refresh()
	r.status.Refresh()
}

func (r *tileMapRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.tile, r.marker, r.status}
}

func (r *tileMapRenderer) Destroy() {
}
