package mapkit

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"padelmatch/internal/geom"
	"padelmatch/internal/layout"
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

type cell struct {
	r      rune
	fg, bg string
	bold   bool
	zone   string
}

func (c cell) style() cell { c.r = 0; return c }

// grid is the styled cell matrix a view is composed on.
type grid struct {
	w, h int
	c    [][]cell
}

func newGrid(w, h int) *grid {
	c := make([][]cell, h)
	for y := range c {
		c[y] = make([]cell, w)
		for x := range c[y] {
			c[y][x].r = ' '
		}
	}
	return &grid{w: w, h: h, c: c}
}

func (g *grid) put(x, y int, c cell) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.c[y][x] = c
}

func (g *grid) text(x, y int, s string, c cell) {
	for _, r := range s {
		c.r = r
		g.put(x, y, c)
		x++
	}
}

// lines renders rows, styling runs of equal cells once.
func (g *grid) lines(zones *zone.Manager) []string {
	out := make([]string, g.h)
	for y, row := range g.c {
		var b strings.Builder
		for x := 0; x < len(row); {
			key := row[x].style()
			var run []rune
			for ; x < len(row) && row[x].style() == key; x++ {
				run = append(run, row[x].r)
			}
			seg := string(run)
			if key.fg != "" || key.bg != "" || key.bold {
				st := lipgloss.NewStyle().Bold(key.bold)
				if key.fg != "" {
					st = st.Foreground(lipgloss.Color(key.fg))
				}
				if key.bg != "" {
					st = st.Background(lipgloss.Color(key.bg))
				}
				seg = st.Render(seg)
			}
			if key.zone != "" && zones != nil {
				seg = zones.Mark(key.zone, seg)
			}
			b.WriteString(seg)
		}
		out[y] = b.String()
	}
	return out
}

var (
	zoomInRect  = rect{x: 0, y: 0, w: 3, h: 1}
	zoomOutRect = rect{x: 0, y: 1, w: 3, h: 1}
)

// View renders the surface at its cached size.
func (m *Map) View() string {
	if m.removed || m.size.Width <= 0 || m.size.Height <= 0 {
		return ""
	}
	w, h := m.size.Width, m.size.Height
	theme := m.rt.Theme()
	g := newGrid(w, h)

	tc := newCanvas(w, h)
	for _, l := range m.layers {
		l.draw(m, tc)
	}
	bc := newCanvas(w, h)
	m.drawBasemap(bc, !m.hasTiles())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := bc.rune(x, y); r != 0 {
				g.put(x, y, cell{r: r, fg: theme.Basemap})
			} else if r := tc.rune(x, y); r != 0 {
				g.put(x, y, cell{r: r, fg: theme.Tiles})
			}
		}
	}

	// larger icons are drawn last so they sit on top
	order := make([]int, len(m.markers))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(m.markers[a].icon.Size, m.markers[b].icon.Size)
	})
	for _, i := range order {
		m.drawMarker(g, i, theme)
	}

	if m.opts.ZoomControl {
		ctl := cell{fg: theme.Accent, bold: true}
		ctl.zone = m.zoneID("zoomin")
		g.text(zoomInRect.x, zoomInRect.y, "[+]", ctl)
		ctl.zone = m.zoneID("zoomout")
		g.text(zoomOutRect.x, zoomOutRect.y, "[-]", ctl)
	}
	if attr := m.attribution(); attr != "" && ansi.StringWidth(attr) < w {
		g.text(w-ansi.StringWidth(attr), h-1, attr, cell{fg: theme.BadgeNeutral})
	}

	out := strings.Join(g.lines(m.opts.Zones), "\n")
	if m.open != nil {
		box, r, _ := m.popupLayout(theme)
		out = layout.Overlay(out, box, r.x, r.y)
	}
	return out
}

func (m *Map) hasTiles() bool {
	for _, l := range m.layers {
		if l.mgr != nil {
			return true
		}
	}
	return false
}

func (m *Map) attribution() string {
	var parts []string
	for _, l := range m.layers {
		if a := l.Attribution(); a != "" {
			parts = append(parts, a)
		}
	}
	return strings.Join(parts, " | ")
}

// drawBasemap draws the runtime's outline geometry. Land is filled when no
// tile layer provides a background.
func (m *Map) drawBasemap(c *canvas, fill bool) {
	d := m.rt.Basemap()
	dot := func(p [2]float64) [2]int {
		x, y := m.toDots(geom.LatLng{Lat: p[1], Lng: p[0]})
		return [2]int{int(math.Floor(x)), int(math.Floor(y))}
	}
	for _, poly := range d.Polygons {
		for i, ring := range poly {
			pts := make([][2]int, len(ring))
			for j, p := range ring {
				pts[j] = dot(p)
			}
			if fill && i == 0 && len(pts) >= 3 {
				c.fill(pts)
			}
			for j := range pts {
				a, b := pts[j], pts[(j+1)%len(pts)]
				c.line(a[0], a[1], b[0], b[1])
			}
		}
	}
	for _, ls := range d.Lines {
		for j := 1; j < len(ls); j++ {
			a, b := dot(ls[j-1]), dot(ls[j])
			c.line(a[0], a[1], b[0], b[1])
		}
	}
	for _, p := range d.Points {
		q := dot(p)
		c.set(q[0], q[1])
	}
}

// markerRect returns the cells covered by a marker's halo, pin and badge.
func (m *Map) markerRect(mk *Marker) rect {
	cx, cy := m.toCell(mk.latlng)
	ic := mk.icon
	r := rect{x: cx - ic.Size/2, y: cy, w: ic.Size, h: 1}
	if ic.Halo {
		r.x--
		r.w += 2
	}
	r.w += ansi.StringWidth(ic.Badge)
	return r
}

func (m *Map) drawMarker(g *grid, i int, theme Theme) {
	mk := m.markers[i]
	ic := mk.icon
	r := m.markerRect(mk)
	id := m.zoneID(fmt.Sprintf("marker%d", i))

	x := r.x
	halo := cell{fg: theme.pulse(m.frame), zone: id}
	if ic.Halo {
		g.text(x, r.y, "(", halo)
		x++
	}
	pin := cell{fg: ic.Color, bold: ic.Size > 1, zone: id}
	if ic.Size > 1 {
		g.text(x, r.y, "["+strings.Repeat("●", ic.Size-2)+"]", pin)
	} else {
		g.text(x, r.y, "●", pin)
	}
	x += ic.Size
	if ic.Halo {
		g.text(x, r.y, ")", halo)
		x++
	}
	if ic.Badge != "" {
		g.text(x, r.y, ic.Badge, cell{fg: theme.BadgeText, bg: ic.BadgeColor, bold: true, zone: id})
	}
}

func actionLabel(a PopupAction) string { return "[ " + a.Label + " ]" }

// popupLayout renders the open popup and places it above its marker. It
// also returns the cell rectangle of every action node.
func (m *Map) popupLayout(theme Theme) (string, rect, []rect) {
	p := m.open.popup
	c := p.Content

	rows := []string{lipgloss.NewStyle().Bold(true).Render(c.Title)}
	rows = append(rows, c.Lines...)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.BadgeNeutral))
	for _, s := range c.Meta {
		rows = append(rows, muted.Render(s))
	}

	// border and horizontal padding
	const inset = 2
	var nodes []rect
	var actions []string
	ax := 0
	btn := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true)
	for i, a := range c.Actions {
		label := actionLabel(a)
		s := btn.Render(label)
		if m.opts.Zones != nil {
			s = m.opts.Zones.Mark(m.zoneID(fmt.Sprintf("node%d", i)), s)
		}
		actions = append(actions, s)
		nodes = append(nodes, rect{x: ax, y: len(rows), w: ansi.StringWidth(label), h: 1})
		ax += ansi.StringWidth(label) + 1
	}
	if len(actions) > 0 {
		rows = append(rows, strings.Join(actions, " "))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.PopupBorder)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	cx, cy := m.toCell(m.open.latlng)
	r := rect{x: cx - bw/2, y: cy - bh, w: bw, h: bh}
	if p.Options.KeepInView && r.y < 0 {
		r.y = cy + 1
	}
	r.x = max(0, min(r.x, m.size.Width-bw))
	r.y = max(0, min(r.y, m.size.Height-bh))

	for i := range nodes {
		nodes[i].x += r.x + inset
		nodes[i].y += r.y + 1
	}
	return box, r, nodes
}
