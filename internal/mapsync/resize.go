package mapsync

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"padelmatch/internal/layout"
	"padelmatch/internal/mapkit"
)

var lastGen int64

// resizeMsg is the delayed size refresh scheduled when a surface is created.
type resizeMsg struct {
	gen int64
}

// resizeBridge keeps a surface's cached size current: once shortly after
// creation, on every window resize and on every pane size change.
type resizeBridge struct {
	window     *layout.Window
	surface    *mapkit.Map
	listener   *layout.Listener
	disconnect func()
	gen        int64 // pending tick, 0 once fired or detached
	log        zerolog.Logger
}

func attachResize(window *layout.Window, pane *layout.Pane, surface *mapkit.Map, delay time.Duration, log zerolog.Logger) (*resizeBridge, tea.Cmd) {
	b := &resizeBridge{window: window, surface: surface, log: log}
	b.listener = layout.NewListener(func(layout.Size) { b.refresh() })
	if window != nil {
		window.AddListener(b.listener)
	}
	b.disconnect = pane.Observe(func(layout.Size) { b.refresh() })

	b.gen = atomic.AddInt64(&lastGen, 1)
	gen := b.gen
	return b, tea.Tick(delay, func(time.Time) tea.Msg { return resizeMsg{gen: gen} })
}

func (b *resizeBridge) refresh() {
	if err := b.surface.InvalidateSize(); err != nil {
		b.log.Debug().Err(err).Msg("invalidate size")
	}
}

// handle runs the delayed refresh. Ticks of other or detached bridges are
// ignored.
func (b *resizeBridge) handle(msg resizeMsg) bool {
	if b.gen == 0 || msg.gen != b.gen {
		return false
	}
	b.gen = 0
	b.refresh()
	return true
}

func (b *resizeBridge) detach() {
	if b.window != nil {
		b.window.RemoveListener(b.listener)
	}
	if b.disconnect != nil {
		b.disconnect()
		b.disconnect = nil
	}
	b.gen = 0
}
