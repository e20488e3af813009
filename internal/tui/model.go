package tui

import (
	"github.com/atotto/clipboard"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"padelmatch/internal/layout"
	"padelmatch/internal/mapsync"
	"padelmatch/internal/venue"
)

type viewMode int

const (
	mapMode viewMode = iota
	listMode
)

// Layout rows around the body.
const (
	headerHeight = 2
	footerHeight = 2
)

// Options wires the shell to its data and the map engine.
type Options struct {
	Venues  []venue.Venue
	Players []venue.Player

	Engine *mapsync.Engine
	Window *layout.Window
	Pane   *layout.Pane
	Zones  *zone.Manager
	Log    zerolog.Logger

	// Copy puts text on the clipboard; clipboard.WriteAll when nil.
	Copy func(string) error
}

type Model struct {
	width  int
	height int

	mode        viewMode
	helpVisible bool
	status      string

	// Data
	venues   []venue.Venue
	players  []venue.Player
	filtered []venue.Venue
	selected *venue.Venue

	search textinput.Model
	l      list.Model
	spin   spinner.Model
	tbl    table.Model
	howto  string

	engine *mapsync.Engine
	window *layout.Window
	pane   *layout.Pane
	zones  *zone.Manager
	copy   func(string) error
	log    zerolog.Logger
}

// venueSelectedMsg asks the shell to open the players of a venue.
type venueSelectedMsg struct {
	v venue.Venue
}

func selectVenue(v venue.Venue) tea.Cmd {
	return func() tea.Msg { return venueSelectedMsg{v: v} }
}

func New(opts Options) Model {
	m := Model{
		helpVisible: true,
		status:      "padelmatch ready",
		venues:      venue.WithLiveCounts(opts.Venues, opts.Players),
		players:     opts.Players,
		engine:      opts.Engine,
		window:      opts.Window,
		pane:        opts.Pane,
		zones:       opts.Zones,
		copy:        opts.Copy,
		log:         opts.Log,
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	if m.window == nil {
		m.window = layout.NewWindow()
	}
	if m.pane == nil {
		m.pane = layout.NewPane()
	}
	// search setup
	m.search = textinput.New()
	m.search.Placeholder = "Search courts or cities..."
	m.search.Prompt = "/ "
	m.search.CharLimit = 64
	// card list setup
	m.l = list.New(nil, cardDelegate{zones: m.zones}, 0, 0)
	m.l.SetShowTitle(false)
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	// loading spinner
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle
	// players table setup
	m.tbl = table.New(table.WithColumns(playerColumns), table.WithFocused(true), table.WithHeight(5))
	m.howto = renderHowTo(48)

	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.engine != nil {
		cmds = append(cmds, m.engine.Init())
	}
	cmds = append(cmds, m.spin.Tick)
	return tea.Batch(cmds...)
}

// refilter applies the search query and pushes the result to the list and
// the map.
func (m *Model) refilter() {
	m.filtered = venue.Filter(m.venues, m.search.Value())
	items := make([]list.Item, len(m.filtered))
	for i, v := range m.filtered {
		items[i] = venueItem{v: v}
	}
	m.l.SetItems(items)
	m.syncProps()
}

func (m *Model) syncProps() {
	if m.engine == nil {
		return
	}
	m.engine.SetProps(mapsync.Props{
		Venues:   m.filtered,
		Selected: m.selected,
		OnSelect: selectVenue,
	})
}
