// Package layout provides the terminal stand-ins for a window and a sized
// container element: resize listeners on the window and size observers on
// panes.
package layout

// Size is a width/height in terminal cells.
type Size struct {
	Width, Height int
}

// Listener receives a size notification. It is registered by pointer so
// it can be removed again.
type Listener struct {
	fn func(Size)
}

// NewListener wraps fn.
func NewListener(fn func(Size)) *Listener { return &Listener{fn: fn} }

// Window dispatches terminal resize events to registered listeners.
type Window struct {
	size      Size
	listeners []*Listener
}

func NewWindow() *Window { return &Window{} }

// Size returns the last dispatched size.
func (w *Window) Size() Size { return w.size }

// AddListener registers l; registering the same listener twice is a no-op.
func (w *Window) AddListener(l *Listener) {
	for _, x := range w.listeners {
		if x == l {
			return
		}
	}
	w.listeners = append(w.listeners, l)
}

// RemoveListener unregisters l.
func (w *Window) RemoveListener(l *Listener) {
	for i, x := range w.listeners {
		if x == l {
			w.listeners = append(w.listeners[:i], w.listeners[i+1:]...)
			return
		}
	}
}

// Listeners reports how many listeners are registered.
func (w *Window) Listeners() int { return len(w.listeners) }

// Resize records the new size and notifies every listener.
func (w *Window) Resize(s Size) {
	w.size = s
	for _, l := range append([]*Listener(nil), w.listeners...) {
		l.fn(s)
	}
}

// Pane is a rectangular region of the screen that hosts a view. Observers are
// notified when its size changes or it becomes visible.
type Pane struct {
	x, y      int
	size      Size
	visible   bool
	observers []*Listener
}

func NewPane() *Pane { return &Pane{visible: true} }

// Size returns the current size, zero when hidden.
func (p *Pane) Size() Size {
	if !p.visible {
		return Size{}
	}
	return p.size
}

// Origin returns the screen cell of the pane's top-left corner.
func (p *Pane) Origin() (x, y int) { return p.x, p.y }

// SetOrigin moves the pane without resizing it.
func (p *Pane) SetOrigin(x, y int) { p.x, p.y = x, y }

// SetSize resizes the pane; observers run only on an actual change.
func (p *Pane) SetSize(s Size) {
	if s == p.size {
		return
	}
	p.size = s
	if p.visible {
		p.notify()
	}
}

func (p *Pane) Visible() bool { return p.visible }

// SetVisible shows or hides the pane. Becoming visible notifies observers.
func (p *Pane) SetVisible(v bool) {
	if v == p.visible {
		return
	}
	p.visible = v
	if v {
		p.notify()
	}
}

// Observe registers fn for size changes and returns the function that disconnects it.
func (p *Pane) Observe(fn func(Size)) (disconnect func()) {
	l := NewListener(fn)
	p.observers = append(p.observers, l)
	return func() {
		for i, x := range p.observers {
			if x == l {
				p.observers = append(p.observers[:i], p.observers[i+1:]...)
				return
			}
		}
	}
}

// Observers reports how many observers are connected.
func (p *Pane) Observers() int { return len(p.observers) }

func (p *Pane) notify() {
	s := p.Size()
	for _, o := range append([]*Listener(nil), p.observers...) {
		o.fn(s)
	}
}
