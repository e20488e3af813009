// Package mapsync keeps a mapkit surface consistent with a venue list and a
// single selected venue.
//
// The engine owns at most one surface per mount. Markers are regenerated in
// full from the current props on every change; popup handlers are bound only
// while their popup is open so they always see the venue of the latest
// reconciliation.
package mapsync

import (
	"context"
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/rs/zerolog"

	"padelmatch/internal/geom"
	"padelmatch/internal/layout"
	"padelmatch/internal/mapkit"
	"padelmatch/internal/tiles"
	"padelmatch/internal/venue"
)

// Props is the declarative input of the engine.
type Props struct {
	Venues   []venue.Venue
	Selected *venue.Venue

	// OnSelect is called when the user asks for the players of a venue.
	OnSelect func(venue.Venue) tea.Cmd
}

type Config struct {
	Center geom.LatLng
	Zoom   float64

	TileURL      string
	Subdomains   string
	Attribution  string
	TileMaxZoom  int
	TilesEnabled bool
	TileWorkers  int

	FitPadding int
	FitMaxZoom float64

	ResizeDelay time.Duration

	Zones *zone.Manager
}

func DefaultConfig() Config {
	return Config{
		Center:       geom.LatLng{Lat: 56.2639, Lng: 9.5018},
		Zoom:         7,
		TileURL:      "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Subdomains:   "abcd",
		Attribution:  "© OpenStreetMap contributors © CARTO",
		TileMaxZoom:  19,
		TilesEnabled: true,
		TileWorkers:  4,
		FitPadding:   32,
		FitMaxZoom:   10,
		ResizeDelay:  50 * time.Millisecond,
	}
}

// ReadyMsg reports that the map runtime is available to a mount.
type ReadyMsg struct {
	Mount   int
	Runtime *mapkit.Runtime
}

type Engine struct {
	cfg    Config
	loader *mapkit.Loader
	window *layout.Window
	pane   *layout.Pane
	log    zerolog.Logger

	mount   int
	mounted bool
	cancel  context.CancelFunc

	props    Props
	surface  *mapkit.Map
	bindings []*binding
	resize   *resizeBridge
}

func New(loader *mapkit.Loader, window *layout.Window, pane *layout.Pane, cfg Config, log zerolog.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		loader: loader,
		window: window,
		pane:   pane,
		log:    log.With().Str("component", "mapsync").Logger(),
	}
}

// Init mounts the engine and returns the command that waits for the map
// runtime. A previous mount is torn down first.
func (e *Engine) Init() tea.Cmd {
	e.Unmount()
	e.mount++
	e.mounted = true
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel

	load := e.loader.EnsureLoaded()
	mount := e.mount
	return func() tea.Msg {
		rt, err := load.Wait(ctx)
		if err != nil || ctx.Err() != nil {
			return nil
		}
		return ReadyMsg{Mount: mount, Runtime: rt}
	}
}

// Unmount removes the surface and everything attached to it. It is safe to
// call at any time.
func (e *Engine) Unmount() {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	if e.resize != nil {
		e.resize.detach()
		e.resize = nil
	}
	if e.surface != nil {
		e.surface.Remove()
		e.surface = nil
	}
	e.bindings = nil
	e.mounted = false
}

// Ready reports whether a surface exists.
func (e *Engine) Ready() bool { return e.surface != nil }

// Surface returns the live surface, or nil.
func (e *Engine) Surface() *mapkit.Map { return e.surface }

func (e *Engine) Props() Props { return e.props }

// SetProps applies new inputs. Markers are rebuilt when the venues or the
// selection changed, the view is refit when the venues changed and moved to
// the selection when it changed to a venue.
func (e *Engine) SetProps(p Props) {
	prev := e.props
	e.props = p
	if e.surface == nil {
		return
	}
	venuesChanged := !slices.Equal(prev.Venues, p.Venues)
	selectionChanged := !sameVenue(prev.Selected, p.Selected)
	if venuesChanged || selectionChanged {
		e.reconcile()
	}
	if venuesChanged {
		e.fitToVenues()
	}
	if selectionChanged && p.Selected != nil {
		e.focusSelection()
	}
}

func sameVenue(a, b *venue.Venue) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (e *Engine) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ReadyMsg:
		return e.ready(msg)
	case resizeMsg:
		if e.resize != nil {
			e.resize.handle(msg)
		}
		return nil
	}
	if e.surface == nil {
		return nil
	}
	return e.surface.Update(msg)
}

func (e *Engine) View() string {
	if e.surface == nil {
		return ""
	}
	return e.surface.View()
}

// ready creates the surface for the current mount. Stale mounts and an
// already existing surface make it a no-op.
func (e *Engine) ready(msg ReadyMsg) tea.Cmd {
	if !e.mounted || msg.Mount != e.mount || e.surface != nil || e.pane == nil {
		return nil
	}
	m, err := mapkit.NewMap(msg.Runtime, e.pane, mapkit.Options{
		Center:          e.cfg.Center,
		Zoom:            e.cfg.Zoom,
		ScrollWheelZoom: true,
		ZoomControl:     true,
		Zones:           e.cfg.Zones,
	})
	if err != nil {
		e.log.Error().Err(err).Msg("create map")
		return nil
	}

	var mgr *tiles.Manager
	if e.cfg.TilesEnabled {
		mgr = tiles.NewManager(tiles.NewTemplateProvider(e.cfg.TileURL, e.cfg.Subdomains), e.cfg.TileWorkers, e.log)
	}
	_ = m.AddTileLayer(mapkit.NewTileLayer(mgr, mapkit.TileOptions{
		Attribution: e.cfg.Attribution,
		MaxZoom:     e.cfg.TileMaxZoom,
	}))
	e.surface = m
	e.log.Debug().Int("mount", msg.Mount).Msg("surface created")

	var tick tea.Cmd
	e.resize, tick = attachResize(e.window, e.pane, m, e.cfg.ResizeDelay, e.log)
	e.reconcile()
	e.fitToVenues()
	return tea.Batch(m.Init(), tick)
}
