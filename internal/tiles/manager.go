package tiles

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"padelmatch/internal/geom"
	"padelmatch/internal/tiles/worker"
)

// Threshold is the luminance below which a tile pixel becomes a dot.
const Threshold = 0.86

type Manager struct {
	provider Provider
	pool     *worker.Pool
	log      zerolog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.RWMutex
	cache   map[geom.Tile]*Bitmap
	pending map[geom.Tile]bool
	failed  map[geom.Tile]bool

	loaded chan geom.Tile
}

// NewManager creates a manager fetching through provider on up to workers goroutines.
func NewManager(provider Provider, workers int, log zerolog.Logger) *Manager {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		provider: provider,
		pool:     worker.NewPool(workers, 10*time.Second),
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
		cache:    make(map[geom.Tile]*Bitmap),
		pending:  make(map[geom.Tile]bool),
		failed:   make(map[geom.Tile]bool),
		loaded:   make(chan geom.Tile, 64),
	}
}

// Get returns a cached tile.
func (m *Manager) Get(tile geom.Tile) (*Bitmap, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.cache[tile]
	return b, ok
}

// Request schedules a fetch unless the tile is cached, in flight or has failed.
// It never blocks.
func (m *Manager) Request(tile geom.Tile) {
	m.mu.Lock()
	if m.cache[tile] != nil || m.pending[tile] || m.failed[tile] {
		m.mu.Unlock()
		return
	}
	m.pending[tile] = true
	m.mu.Unlock()

	ok := m.pool.Submit(worker.Task{Ctx: m.ctx, Work: func(ctx context.Context) error {
		return m.fetch(ctx, tile)
	}})
	if !ok {
		m.mu.Lock()
		delete(m.pending, tile)
		m.mu.Unlock()
	}
}

func (m *Manager) fetch(ctx context.Context, tile geom.Tile) error {
	img, err := m.provider.GetTile(ctx, tile)
	m.mu.Lock()
	delete(m.pending, tile)
	if err != nil {
		if ctx.Err() == nil || ctx.Err() == context.DeadlineExceeded {
			m.failed[tile] = true
		}
		m.mu.Unlock()
		m.log.Debug().Err(err).Int("z", tile.Zoom).Int("x", tile.X).Int("y", tile.Y).Msg("tile fetch failed")
		return err
	}
	m.cache[tile] = NewBitmap(img, DotsPerTile, Threshold)
	m.mu.Unlock()

	select {
	case m.loaded <- tile:
	default:
	}
	return nil
}

// Loaded delivers tiles as they arrive in the cache. Notifications are dropped
// when nobody is listening.
func (m *Manager) Loaded() <-chan geom.Tile { return m.loaded }

// Done is closed once the manager has been closed.
func (m *Manager) Done() <-chan struct{} { return m.ctx.Done() }

// Close stops outstanding fetches.
func (m *Manager) Close() {
	m.cancel()
	m.pool.Shutdown()
}
