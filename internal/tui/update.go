package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"padelmatch/internal/layout"
	"padelmatch/internal/mapkit"
	"padelmatch/internal/venue"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.window.Resize(layout.Size{Width: msg.Width, Height: msg.Height})
		return m, nil
	case spinner.TickMsg:
		// the spinner only runs while the map is loading
		if m.mode != mapMode || m.mapReady() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case venueSelectedMsg:
		m.open(msg.v)
		return m, nil
	case mapkit.LinkMsg:
		m.copyLink(msg.URL)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	// readiness, resize ticks, tiles and animation frames belong to the map
	return m, m.engineUpdate(msg)
}

func (m Model) mapReady() bool { return m.engine != nil && m.engine.Ready() }

func (m Model) engineUpdate(msg tea.Msg) tea.Cmd {
	if m.engine == nil {
		return nil
	}
	return m.engine.Update(msg)
}

func (m Model) bodyHeight() int {
	return max(4, m.height-headerHeight-footerHeight)
}

// resize lays the body out below the header.
func (m *Model) resize() {
	h := m.bodyHeight()
	m.pane.SetOrigin(0, headerHeight)
	m.pane.SetSize(layout.Size{Width: m.width, Height: h})
	m.l.SetSize(m.width, h)
	m.search.Width = max(10, m.width-4)
}

func (m *Model) open(v venue.Venue) {
	m.selected = &v
	m.refreshPlayers()
	m.syncProps()
	m.status = "players at " + v.Name
}

func (m *Model) closeModal() {
	m.selected = nil
	m.refreshPlayers()
	m.syncProps()
	m.status = "ready"
}

func (m *Model) copyLink(url string) {
	if url == "" {
		m.status = "no booking link"
		return
	}
	if err := m.copy(url); err != nil {
		m.log.Warn().Err(err).Str("url", url).Msg("copy booking link")
		m.status = "clipboard error: " + err.Error()
		return
	}
	m.log.Info().Str("url", url).Msg("booking link copied")
	m.status = "booking link copied: " + url
}

// setMode switches between map and list. The map is unmounted while the list
// is shown and mounted again when it returns.
func (m *Model) setMode(mode viewMode) tea.Cmd {
	if mode == m.mode {
		return nil
	}
	m.mode = mode
	if mode == listMode {
		if m.engine != nil {
			m.engine.Unmount()
		}
		m.pane.SetVisible(false)
		m.status = "list view"
		return nil
	}
	m.pane.SetVisible(true)
	m.status = "map view"
	if m.engine == nil {
		return nil
	}
	return tea.Batch(m.engine.Init(), m.spin.Tick)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.selected != nil {
		return m.modalKey(msg)
	}
	if m.search.Focused() {
		switch msg.String() {
		case "esc", "enter", "tab":
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.refilter()
		return m, cmd
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.search.Focus()
		return m, textinput.Blink
	case "v":
		if m.mode == mapMode {
			return m, m.setMode(listMode)
		}
		return m, m.setMode(mapMode)
	case "1":
		return m, m.setMode(mapMode)
	case "2":
		return m, m.setMode(listMode)
	case "h":
		m.helpVisible = !m.helpVisible
		return m, nil
	}
	if m.mode == listMode {
		return m.listKey(msg)
	}
	return m, m.engineUpdate(msg)
}

func (m Model) listKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it, ok := m.l.SelectedItem().(venueItem)
	switch msg.String() {
	case "enter", "f":
		if ok {
			m.open(it.v)
		}
		return m, nil
	case "b":
		if ok {
			m.copyLink(it.v.BookingURL)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}

func (m Model) modalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "x":
		m.closeModal()
		return m, nil
	case "b":
		m.copyLink(m.selected.BookingURL)
		return m, nil
	case "p":
		m.playingHere()
		return m, nil
	case "m":
		m.messagePlayer()
		return m, nil
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) playingHere() {
	m.status = fmt.Sprintf("marked as playing at %s (demo only)", m.selected.Name)
}

func (m *Model) messagePlayer() {
	p, ok := m.highlightedPlayer()
	if !ok {
		m.status = "no player to message"
		return
	}
	m.status = fmt.Sprintf("messaging %s is not available yet", p.Name)
}

func (m Model) clicked(id string, msg tea.MouseMsg) bool {
	return m.zones != nil && m.zones.Get(id).InBounds(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		switch {
		case m.clicked("tab-map", msg):
			return m, m.setMode(mapMode)
		case m.clicked("tab-list", msg):
			return m, m.setMode(listMode)
		}
		if m.selected != nil {
			switch {
			case m.clicked("modal-close", msg):
				m.closeModal()
			case m.clicked("modal-book", msg):
				m.copyLink(m.selected.BookingURL)
			case m.clicked("modal-playing", msg):
				m.playingHere()
			case m.clicked("modal-message", msg):
				m.messagePlayer()
			}
			return m, nil
		}
		if m.mode == listMode {
			for i, v := range m.filtered {
				switch {
				case m.clicked("find-"+v.ID, msg):
					m.open(v)
					return m, nil
				case m.clicked("book-"+v.ID, msg):
					m.copyLink(v.BookingURL)
					return m, nil
				case m.clicked("card-"+v.ID, msg):
					m.l.Select(i)
					return m, nil
				}
			}
		}
	}
	if m.selected != nil || m.mode != mapMode {
		return m, nil
	}
	return m, m.engineUpdate(msg)
}
