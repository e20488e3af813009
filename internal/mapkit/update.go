package mapkit

import (
	"fmt"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 300 * time.Millisecond

// FrameMsg advances the marker halo animation of one map.
type FrameMsg struct {
	mapID int
}

// Init starts the animation clock and the tile waits of every layer.
func (m *Map) Init() tea.Cmd {
	cmds := []tea.Cmd{m.tick()}
	for _, l := range m.layers {
		cmds = append(cmds, l.wait(m.id))
	}
	return tea.Batch(cmds...)
}

func (m *Map) tick() tea.Cmd {
	id := m.id
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return FrameMsg{mapID: id} })
}

// Frame is the current animation frame.
func (m *Map) Frame() int { return m.frame }

// Update handles input and the map's own messages. Messages addressed to
// another map, and everything after Remove, are ignored.
func (m *Map) Update(msg tea.Msg) tea.Cmd {
	if m.removed {
		return nil
	}
	switch msg := msg.(type) {
	case FrameMsg:
		if msg.mapID != m.id {
			return nil
		}
		m.frame++
		return m.tick()
	case TileMsg:
		if msg.mapID != m.id {
			return nil
		}
		var cmds []tea.Cmd
		for _, l := range m.layers {
			cmds = append(cmds, l.wait(m.id))
		}
		return tea.Batch(cmds...)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Map) handleKey(msg tea.KeyMsg) tea.Cmd {
	sx, sy := max(1, m.size.Width/8), max(1, m.size.Height/8)
	switch msg.String() {
	case "up":
		_ = m.PanBy(0, -sy)
	case "down":
		_ = m.PanBy(0, sy)
	case "left":
		_ = m.PanBy(-sx, 0)
	case "right":
		_ = m.PanBy(sx, 0)
	case "+", "=":
		_ = m.ZoomIn()
	case "-", "_":
		_ = m.ZoomOut()
	case "tab":
		m.cyclePopup(1)
	case "shift+tab":
		m.cyclePopup(-1)
	case "esc":
		m.ClosePopup()
	case "enter", "f":
		if el := m.openElement(); el != nil && len(el.Nodes) > 0 {
			return el.Nodes[0].Click()
		}
	case "b":
		if el := m.openElement(); el != nil {
			for _, n := range el.Nodes {
				if n.Href != "" {
					return n.Click()
				}
			}
		}
	}
	return nil
}

func (m *Map) openElement() *Element {
	if m.open == nil {
		return nil
	}
	return m.open.popup.Element()
}

func (m *Map) cyclePopup(dir int) {
	n := len(m.markers)
	if n == 0 {
		return
	}
	i := slices.Index(m.markers, m.open)
	switch {
	case i >= 0:
		i = (i + dir + n) % n
	case dir > 0:
		i = 0
	default:
		i = n - 1
	}
	m.OpenPopup(m.markers[i])
}

func (m *Map) handleMouse(msg tea.MouseMsg) tea.Cmd {
	ox, oy := m.pane.Origin()
	x, y := msg.X-ox, msg.Y-oy
	if x < 0 || y < 0 || x >= m.size.Width || y >= m.size.Height {
		return nil
	}
	if msg.Action != tea.MouseActionPress {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.opts.ScrollWheelZoom {
			_ = m.ZoomIn()
		}
	case tea.MouseButtonWheelDown:
		if m.opts.ScrollWheelZoom {
			_ = m.ZoomOut()
		}
	case tea.MouseButtonLeft:
		return m.click(msg, x, y)
	}
	return nil
}

// hit tests a click against a marked zone and against r in surface cells.
// A marker's zone is marked once per styled run and overlays can cut marks,
// so the rectangle decides when the zone does not.
func (m *Map) hit(id string, r rect, msg tea.MouseMsg, x, y int) bool {
	if z := m.opts.Zones; z != nil && z.Get(m.zoneID(id)).InBounds(msg) {
		return true
	}
	return r.contains(x, y)
}

func (m *Map) click(msg tea.MouseMsg, x, y int) tea.Cmd {
	if m.opts.ZoomControl {
		if m.hit("zoomin", zoomInRect, msg, x, y) {
			_ = m.ZoomIn()
			return nil
		}
		if m.hit("zoomout", zoomOutRect, msg, x, y) {
			_ = m.ZoomOut()
			return nil
		}
	}
	if m.open != nil {
		_, box, nodes := m.popupLayout(m.rt.Theme())
		el := m.open.popup.Element()
		for i, r := range nodes {
			if i < len(el.Nodes) && m.hit(fmt.Sprintf("node%d", i), r, msg, x, y) {
				return el.Nodes[i].Click()
			}
		}
		if box.contains(x, y) {
			return nil
		}
	}
	for i := len(m.markers) - 1; i >= 0; i-- {
		mk := m.markers[i]
		if m.hit(fmt.Sprintf("marker%d", i), m.markerRect(mk), msg, x, y) {
			mk.fire(EventClick)
			m.OpenPopup(mk)
			return nil
		}
	}
	m.ClosePopup()
	return nil
}
