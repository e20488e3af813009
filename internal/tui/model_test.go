package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelmatch/internal/layout"
	"padelmatch/internal/mapkit"
	"padelmatch/internal/mapsync"
	"padelmatch/internal/venue"
)

type outlineFetcher struct{}

func (outlineFetcher) Fetch(ctx context.Context, src string) ([]byte, error) {
	if src == "theme.yaml" {
		return []byte("marker: \"#22c55e\"\n"), nil
	}
	return []byte(`{"type":"Polygon","coordinates":[[[8,55],[13,55],[13,58],[8,58],[8,55]]]}`), nil
}

func newEngine(window *layout.Window, pane *layout.Pane) *mapsync.Engine {
	loader := mapkit.NewLoader(mapkit.NewHead(), outlineFetcher{},
		mapkit.Sources{Script: "dk.json", Stylesheet: "theme.yaml"}, zerolog.Nop())
	cfg := mapsync.DefaultConfig()
	cfg.TilesEnabled = false
	return mapsync.New(loader, window, pane, cfg, zerolog.Nop())
}

type shell struct {
	m      Model
	copied []string
}

func newShell(t *testing.T, withEngine bool) *shell {
	t.Helper()
	s := &shell{}
	opts := Options{
		Venues:  venue.Fixtures(),
		Players: venue.Players(),
		Window:  layout.NewWindow(),
		Pane:    layout.NewPane(),
		Log:     zerolog.Nop(),
		Copy: func(url string) error {
			s.copied = append(s.copied, url)
			return nil
		},
	}
	if withEngine {
		opts.Engine = newEngine(opts.Window, opts.Pane)
	}
	s.m = New(opts)
	s.send(tea.WindowSizeMsg{Width: 100, Height: 36})
	return s
}

func (s *shell) send(msg tea.Msg) tea.Cmd {
	next, cmd := s.m.Update(msg)
	s.m = next.(Model)
	return cmd
}

func (s *shell) key(k string) tea.Cmd {
	switch k {
	case "esc":
		return s.send(tea.KeyMsg{Type: tea.KeyEsc})
	case "enter":
		return s.send(tea.KeyMsg{Type: tea.KeyEnter})
	}
	return s.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

// ready runs cmd until the engine reports a ReadyMsg and delivers it.
func (s *shell) ready(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	out := make(chan tea.Msg, 16)
	var run func(tea.Cmd)
	run = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() { out <- c() }()
	}
	run(cmd)
	for {
		select {
		case msg := <-out:
			switch msg := msg.(type) {
			case tea.BatchMsg:
				for _, c := range msg {
					run(c)
				}
			case mapsync.ReadyMsg:
				s.send(msg)
				return
			}
		case <-deadline:
			t.Fatal("map never became ready")
		}
	}
}

func TestFilterUpdatesListAndMap(t *testing.T) {
	s := newShell(t, true)
	s.ready(t, s.m.Init())
	require.Len(t, s.m.engine.Surface().Markers(), 6)

	s.key("/")
	require.True(t, s.m.search.Focused())
	s.key("aar")
	assert.Len(t, s.m.filtered, 1)
	assert.Equal(t, "Aarhus", s.m.filtered[0].City)
	assert.Len(t, s.m.engine.Surface().Markers(), 1)
	assert.Len(t, s.m.l.Items(), 1)
}

func TestEmptyFilterMessage(t *testing.T) {
	s := newShell(t, false)
	s.key("2")
	s.key("/")
	s.key("zzz")
	s.key("enter")
	assert.Empty(t, s.m.filtered)
	assert.Contains(t, s.m.View(), `No courts found for "zzz".`)
}

func TestSelectOpensAndClosesModal(t *testing.T) {
	s := newShell(t, false)
	v, ok := venue.Find(s.m.venues, "1")
	require.True(t, ok)

	s.send(venueSelectedMsg{v: v})
	require.NotNil(t, s.m.selected)
	assert.Equal(t, "1", s.m.selected.ID)
	assert.Len(t, s.m.tbl.Rows(), len(venue.PlayersAt(s.m.players, "1")))
	assert.Contains(t, s.m.View(), "Players Looking for Opponents")

	s.key("esc")
	assert.Nil(t, s.m.selected)
	assert.NotContains(t, s.m.View(), "Players Looking for Opponents")
}

func TestSelectionReachesEngine(t *testing.T) {
	s := newShell(t, true)
	s.ready(t, s.m.Init())
	v := s.m.filtered[2]

	s.send(venueSelectedMsg{v: v})
	props := s.m.engine.Props()
	require.NotNil(t, props.Selected)
	assert.Equal(t, v.ID, props.Selected.ID)

	s.key("esc")
	assert.Nil(t, s.m.engine.Props().Selected)
}

func TestCopyLink(t *testing.T) {
	s := newShell(t, false)
	s.send(mapkit.LinkMsg{URL: "https://book.example/1"})
	assert.Equal(t, []string{"https://book.example/1"}, s.copied)
	assert.Equal(t, "booking link copied: https://book.example/1", s.m.status)

	s.m.copy = func(string) error { return errors.New("no display") }
	s.send(mapkit.LinkMsg{URL: "https://book.example/2"})
	assert.Equal(t, "clipboard error: no display", s.m.status)

	s.send(mapkit.LinkMsg{})
	assert.Equal(t, "no booking link", s.m.status)
}

func TestListKeys(t *testing.T) {
	s := newShell(t, false)
	s.key("2")
	require.Equal(t, listMode, s.m.mode)

	s.key("b")
	require.Len(t, s.copied, 1)
	assert.Equal(t, s.m.filtered[0].BookingURL, s.copied[0])

	s.key("f")
	require.NotNil(t, s.m.selected)
	assert.Equal(t, s.m.filtered[0].ID, s.m.selected.ID)
}

func TestModeSwitchRemountsMap(t *testing.T) {
	s := newShell(t, true)
	s.ready(t, s.m.Init())
	require.True(t, s.m.mapReady())

	s.key("v")
	assert.Equal(t, listMode, s.m.mode)
	assert.False(t, s.m.mapReady())
	assert.False(t, s.m.pane.Visible())

	cmd := s.key("v")
	assert.Equal(t, mapMode, s.m.mode)
	assert.Contains(t, s.m.View(), "Loading map...")
	s.ready(t, cmd)
	assert.True(t, s.m.mapReady())
	assert.Len(t, s.m.engine.Surface().Markers(), 6)
}

func TestViewLayout(t *testing.T) {
	s := newShell(t, true)
	s.ready(t, s.m.Init())
	out := s.m.View()
	assert.Contains(t, out, "PadelMatch DK")
	assert.Contains(t, out, "Map legend")
	assert.Contains(t, out, "6 Courts")
	assert.Contains(t, out, "Total Courts")
	assert.Equal(t, 36, len(splitLines(out)))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
