package mapkit

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"padelmatch/internal/geom"
	"padelmatch/internal/tiles"
)

type TileOptions struct {
	Attribution string
	MaxZoom     int
}

// TileLayer draws raster tiles from a tiles.Manager as braille dots. The
// layer owns the manager and closes it when its map is removed.
type TileLayer struct {
	opts TileOptions
	mgr  *tiles.Manager
}

// NewTileLayer creates a layer. A nil manager yields a layer that only
// carries attribution.
func NewTileLayer(mgr *tiles.Manager, opts TileOptions) *TileLayer {
	if opts.MaxZoom <= 0 {
		opts.MaxZoom = defaultMaxZoom
	}
	return &TileLayer{opts: opts, mgr: mgr}
}

func (l *TileLayer) Attribution() string { return l.opts.Attribution }

// TileMsg reports that a tile for a map arrived and the view is stale.
type TileMsg struct {
	mapID int
	Tile  geom.Tile
}

func (l *TileLayer) wait(mapID int) tea.Cmd {
	if l.mgr == nil {
		return nil
	}
	loaded, done := l.mgr.Loaded(), l.mgr.Done()
	return func() tea.Msg {
		select {
		case t := <-loaded:
			return TileMsg{mapID: mapID, Tile: t}
		case <-done:
			return nil
		}
	}
}

func (l *TileLayer) close() {
	if l.mgr != nil {
		l.mgr.Close()
	}
}

// draw samples the cached tiles under every dot of c and requests the ones
// still missing.
func (l *TileLayer) draw(m *Map, c *canvas) {
	if l.mgr == nil {
		return
	}
	tz := int(math.Round(m.zoom))
	tz = max(0, min(l.opts.MaxZoom, tz))
	scale := math.Pow(2, m.zoom-float64(tz))
	cx, cy := geom.Project(m.center, m.zoom)
	w, h := c.w*2, c.h*4

	requested := make(map[geom.Tile]bool)
	for dy := 0; dy < h; dy++ {
		wy := (cy + float64(dy-h/2)*DotPixels) / scale
		for dx := 0; dx < w; dx++ {
			wx := (cx + float64(dx-w/2)*DotPixels) / scale
			t, ok := geom.TileAt(wx, wy, tz)
			if !ok {
				continue
			}
			bm, ok := l.mgr.Get(t)
			if !ok {
				if !requested[t] {
					requested[t] = true
					l.mgr.Request(t)
				}
				continue
			}
			px := int((wx - float64(t.X*geom.TileSize)) / geom.TileSize * float64(bm.Size()))
			py := int((wy - float64(t.Y*geom.TileSize)) / geom.TileSize * float64(bm.Size()))
			if bm.At(px, py) {
				c.set(dx, dy)
			}
		}
	}
}
