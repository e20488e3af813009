package mapkit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"padelmatch/internal/geom"
)

// TagKind distinguishes the two assets a map runtime needs.
type TagKind int

const (
	Stylesheet TagKind = iota
	Script
)

func (k TagKind) String() string {
	if k == Script {
		return "script"
	}
	return "stylesheet"
}

// Tag is one asset attached to a Head. A tag is appended once and never
// removed; its loaded channel closes only on success.
type Tag struct {
	Kind TagKind
	Src  string

	loaded chan struct{}
	theme  Theme // stylesheet payload, valid once loaded
	err    error
}

// Loaded is closed once the asset has been fetched and parsed.
func (t *Tag) Loaded() <-chan struct{} { return t.loaded }

// Err reports the fetch or parse failure, if any.
func (t *Tag) Err() error { return t.err }

// Head is the process-wide set of attached assets and the runtime they
// produce. It plays the part of a document head: assets are appended to it
// and stay there for the life of the process.
type Head struct {
	mu      sync.Mutex
	tags    []*Tag
	runtime *Runtime
}

// DefaultHead is shared by every Loader that does not bring its own.
var DefaultHead = NewHead()

func NewHead() *Head { return &Head{} }

// Query returns the first tag of kind with src, or nil. An empty src matches
// any tag of that kind.
func (h *Head) Query(kind TagKind, src string) *Tag {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.query(kind, src)
}

func (h *Head) query(kind TagKind, src string) *Tag {
	for _, t := range h.tags {
		if t.Kind == kind && (src == "" || t.Src == src) {
			return t
		}
	}
	return nil
}

// Tags returns a snapshot of the attached tags in append order.
func (h *Head) Tags() []*Tag {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*Tag(nil), h.tags...)
}

// Runtime returns the initialized runtime, or nil while none has loaded.
func (h *Head) Runtime() *Runtime {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.runtime
}

// Sources names the assets a Loader attaches.
type Sources struct {
	Script     string
	Stylesheet string
}

// Loader fetches the map runtime into a Head at most once.
type Loader struct {
	head  *Head
	fetch Fetcher
	src   Sources
	log   zerolog.Logger
}

func NewLoader(head *Head, fetch Fetcher, src Sources, log zerolog.Logger) *Loader {
	if head == nil {
		head = DefaultHead
	}
	if fetch == nil {
		fetch = SourceFetcher{}
	}
	return &Loader{head: head, fetch: fetch, src: src, log: log}
}

// Load is a handle on a pending or finished runtime load.
type Load struct {
	head *Head
	done <-chan struct{}
}

// Done is closed when the runtime is available. It never closes if the
// script asset fails to load.
func (l *Load) Done() <-chan struct{} { return l.done }

// Runtime returns the loaded runtime, or nil before Done has closed.
func (l *Load) Runtime() *Runtime {
	select {
	case <-l.done:
		return l.head.Runtime()
	default:
		return nil
	}
}

// Wait blocks until the runtime is available or ctx is done. Cancelling ctx
// abandons the wait only; the fetch carries on for later callers.
func (l *Load) Wait(ctx context.Context) (*Runtime, error) {
	select {
	case <-l.done:
		return l.head.Runtime(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// EnsureLoaded returns a Load for the runtime. Repeated calls share the same
// assets: an existing runtime resolves at once, an in-flight script is
// joined, and only the first call appends tags.
func (l *Loader) EnsureLoaded() *Load {
	h := l.head
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.runtime != nil {
		return &Load{head: h, done: closed}
	}
	if h.query(Stylesheet, "") == nil && l.src.Stylesheet != "" {
		t := &Tag{Kind: Stylesheet, Src: l.src.Stylesheet, loaded: make(chan struct{})}
		h.tags = append(h.tags, t)
		go l.load(t)
	}
	if t := h.query(Script, l.src.Script); t != nil {
		return &Load{head: h, done: t.loaded}
	}
	t := &Tag{Kind: Script, Src: l.src.Script, loaded: make(chan struct{})}
	h.tags = append(h.tags, t)
	go l.load(t)
	return &Load{head: h, done: t.loaded}
}

func (l *Loader) load(t *Tag) {
	log := l.log.With().Str("kind", t.Kind.String()).Str("src", t.Src).Logger()
	b, err := l.fetch.Fetch(context.Background(), t.Src)
	if err != nil {
		l.fail(t, err)
		return
	}

	switch t.Kind {
	case Stylesheet:
		theme, err := ParseTheme(b)
		if err != nil {
			l.fail(t, err)
			return
		}
		l.head.mu.Lock()
		t.theme = theme
		close(t.loaded)
		l.head.mu.Unlock()
	case Script:
		data, err := geom.ParseGeoJSON(b)
		if err != nil {
			l.fail(t, err)
			return
		}
		l.head.mu.Lock()
		if l.head.runtime == nil {
			l.head.runtime = &Runtime{head: l.head, basemap: data}
		}
		close(t.loaded)
		l.head.mu.Unlock()
	}
	log.Debug().Int("bytes", len(b)).Msg("asset loaded")
}

func (l *Loader) fail(t *Tag, err error) {
	l.head.mu.Lock()
	t.err = err
	l.head.mu.Unlock()
	l.log.Error().Err(err).Str("kind", t.Kind.String()).Str("src", t.Src).Msg("asset failed to load")
}

// Runtime is the initialized map library: the basemap geometry plus access
// to the stylesheet attached to the same Head.
type Runtime struct {
	head    *Head
	basemap geom.Data
}

// NewRuntime builds a runtime around already parsed basemap data. It is not
// attached to any Head and always uses the default theme.
func NewRuntime(basemap geom.Data) *Runtime {
	return &Runtime{head: NewHead(), basemap: basemap}
}

func (r *Runtime) Basemap() geom.Data { return r.basemap }

// Theme returns the loaded stylesheet, or the default theme while the
// stylesheet is missing, pending or failed.
func (r *Runtime) Theme() Theme {
	r.head.mu.Lock()
	defer r.head.mu.Unlock()
	t := r.head.query(Stylesheet, "")
	if t == nil {
		return DefaultTheme()
	}
	select {
	case <-t.loaded:
		return t.theme
	default:
		return DefaultTheme()
	}
}
