// Package mapkit is a terminal map widget: a braille-rendered slippy map with
// tile layers, markers and popups, driven imperatively by its owner and
// loaded once per process through a Loader.
package mapkit

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	zone "github.com/lrstanley/bubblezone"

	"padelmatch/internal/geom"
	"padelmatch/internal/layout"
)

var (
	ErrRemoved = errors.New("mapkit: map removed")
	ErrNoSize  = errors.New("mapkit: map has no size")
	ErrNoPane  = errors.New("mapkit: no container pane")
)

// DotPixels is how many world pixels one braille dot spans.
const DotPixels = 4

const defaultMaxZoom = 19

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

type Options struct {
	Center          geom.LatLng
	Zoom            float64
	MinZoom         float64
	MaxZoom         float64 // 0 means 19
	ScrollWheelZoom bool
	ZoomControl     bool

	// Zones marks clickable parts of the view when set.
	Zones *zone.Manager
}

type FitOptions struct {
	Padding int // world pixels on every side
	MaxZoom float64
}

// Map is a map surface mounted into a pane.
type Map struct {
	id     int
	prefix string
	rt     *Runtime
	pane   *layout.Pane
	opts   Options

	center geom.LatLng
	zoom   float64
	size   layout.Size

	layers  []*TileLayer
	markers []*Marker
	open    *Marker
	frame   int
	removed bool
}

// NewMap creates a surface in pane. The surface reads the pane size once
// here and again on every InvalidateSize.
func NewMap(rt *Runtime, pane *layout.Pane, opts Options) (*Map, error) {
	if pane == nil {
		return nil, ErrNoPane
	}
	if rt == nil {
		rt = NewRuntime(geom.Data{})
	}
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = defaultMaxZoom
	}
	m := &Map{
		id:   nextID(),
		rt:   rt,
		pane: pane,
		opts: opts,
		size: pane.Size(),
	}
	if opts.Zones != nil {
		m.prefix = opts.Zones.NewPrefix()
	} else {
		m.prefix = fmt.Sprintf("map%d-", m.id)
	}
	m.center = opts.Center
	m.zoom = m.clampZoom(opts.Zoom)
	return m, nil
}

func (m *Map) ID() int              { return m.id }
func (m *Map) Center() geom.LatLng  { return m.center }
func (m *Map) Zoom() float64        { return m.zoom }
func (m *Map) Size() layout.Size    { return m.size }
func (m *Map) Removed() bool        { return m.removed }
func (m *Map) Runtime() *Runtime    { return m.rt }
func (m *Map) Layers() []*TileLayer { return slices.Clone(m.layers) }
func (m *Map) Markers() []*Marker   { return slices.Clone(m.markers) }
func (m *Map) PopupMarker() *Marker { return m.open }

func (m *Map) zoneID(kind string) string { return m.prefix + kind }

func (m *Map) clampZoom(z float64) float64 {
	return math.Max(m.opts.MinZoom, math.Min(m.opts.MaxZoom, z))
}

// InvalidateSize re-reads the pane size.
func (m *Map) InvalidateSize() error {
	if m.removed {
		return ErrRemoved
	}
	m.size = m.pane.Size()
	return nil
}

func (m *Map) SetView(center geom.LatLng, zoom float64) error {
	if m.removed {
		return ErrRemoved
	}
	m.center = center
	m.zoom = m.clampZoom(zoom)
	return nil
}

func (m *Map) PanTo(ll geom.LatLng) error { return m.SetView(ll, m.zoom) }

func (m *Map) ZoomIn() error  { return m.SetView(m.center, m.zoom+1) }
func (m *Map) ZoomOut() error { return m.SetView(m.center, m.zoom-1) }

// PanBy moves the view by whole cells.
func (m *Map) PanBy(dx, dy int) error {
	cx, cy := geom.Project(m.center, m.zoom)
	cx += float64(dx * 2 * DotPixels)
	cy += float64(dy * 4 * DotPixels)
	return m.SetView(geom.Unproject(cx, cy, m.zoom), m.zoom)
}

// FitBounds centers bb and picks the largest whole zoom at which it fits
// inside the surface less padding, capped at opts.MaxZoom.
func (m *Map) FitBounds(bb geom.BBox, opts FitOptions) error {
	if m.removed {
		return ErrRemoved
	}
	w := float64(m.size.Width*2*DotPixels - 2*opts.Padding)
	h := float64(m.size.Height*4*DotPixels - 2*opts.Padding)
	if m.size.Width <= 0 || m.size.Height <= 0 || w <= 0 || h <= 0 {
		return ErrNoSize
	}
	maxZoom := m.opts.MaxZoom
	if opts.MaxZoom > 0 && opts.MaxZoom < maxZoom {
		maxZoom = opts.MaxZoom
	}

	x0, y0 := geom.Project(geom.LatLng{Lat: bb.MaxY, Lng: bb.MinX}, 0)
	x1, y1 := geom.Project(geom.LatLng{Lat: bb.MinY, Lng: bb.MaxX}, 0)
	bw, bh := x1-x0, y1-y0

	zoom := maxZoom
	if bw > 0 || bh > 0 {
		scale := math.Inf(1)
		if bw > 0 {
			scale = math.Min(scale, w/bw)
		}
		if bh > 0 {
			scale = math.Min(scale, h/bh)
		}
		zoom = math.Min(maxZoom, math.Floor(math.Log2(scale)))
	}
	return m.SetView(geom.Unproject((x0+x1)/2, (y0+y1)/2, 0), zoom)
}

// AddTileLayer attaches l. Its tiles are awaited from Init.
func (m *Map) AddTileLayer(l *TileLayer) error {
	if m.removed {
		return ErrRemoved
	}
	m.layers = append(m.layers, l)
	return nil
}

func (m *Map) AddMarker(mk *Marker) error {
	if m.removed {
		return ErrRemoved
	}
	if mk.m == m {
		return nil
	}
	if mk.m != nil {
		mk.m.RemoveMarker(mk)
	}
	mk.m = m
	m.markers = append(m.markers, mk)
	return nil
}

func (m *Map) RemoveMarker(mk *Marker) {
	if mk.m != m {
		return
	}
	if m.open == mk {
		m.ClosePopup()
	}
	if i := slices.Index(m.markers, mk); i >= 0 {
		m.markers = slices.Delete(m.markers, i, i+1)
	}
	mk.m = nil
}

// OpenPopup shows the popup bound to mk, closing any other popup first.
func (m *Map) OpenPopup(mk *Marker) {
	if m.removed || mk == nil || mk.m != m || mk.popup == nil || m.open == mk {
		return
	}
	m.ClosePopup()
	mk.popup.open()
	m.open = mk
	if mk.popup.Options.AutoPan && !m.inView(mk.latlng) {
		m.center = mk.latlng
	}
	mk.fire(EventPopupOpen)
}

// ClosePopup closes the open popup. Close handlers still see its element.
func (m *Map) ClosePopup() {
	mk := m.open
	if mk == nil {
		return
	}
	mk.fire(EventPopupClose)
	mk.popup.element = nil
	m.open = nil
}

// Remove tears the surface down: popups close, markers and layers detach
// and tile fetching stops. Every later mutation returns ErrRemoved.
func (m *Map) Remove() {
	if m.removed {
		return
	}
	m.ClosePopup()
	for _, mk := range m.markers {
		mk.m = nil
	}
	m.markers = nil
	for _, l := range m.layers {
		l.close()
	}
	m.layers = nil
	m.removed = true
}

// toDots maps ll to micro-grid coordinates relative to the top-left corner.
func (m *Map) toDots(ll geom.LatLng) (float64, float64) {
	x, y := geom.Project(ll, m.zoom)
	cx, cy := geom.Project(m.center, m.zoom)
	return (x-cx)/DotPixels + float64(m.size.Width), (y-cy)/DotPixels + float64(m.size.Height*2)
}

// toCell maps ll to a cell of the surface; the cell may lie outside it.
func (m *Map) toCell(ll geom.LatLng) (int, int) {
	dx, dy := m.toDots(ll)
	return int(math.Floor(dx / 2)), int(math.Floor(dy / 4))
}

// CellLatLng returns the coordinate at the centre of a surface cell.
func (m *Map) CellLatLng(x, y int) geom.LatLng {
	cx, cy := geom.Project(m.center, m.zoom)
	px := cx + (float64(x*2+1)-float64(m.size.Width))*DotPixels
	py := cy + (float64(y*4+2)-float64(m.size.Height*2))*DotPixels
	return geom.Unproject(px, py, m.zoom)
}

func (m *Map) inView(ll geom.LatLng) bool {
	x, y := m.toCell(ll)
	return x >= 0 && y >= 0 && x < m.size.Width && y < m.size.Height
}
