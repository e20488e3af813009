package mapkit

import "padelmatch/internal/geom"

// Icon describes how a marker is drawn.
type Icon struct {
	Size       int    // pin width in cells: 1 or 3
	Color      string // pin colour
	Badge      string // badge text, empty for none
	BadgeColor string
	Halo       bool // pulsing ring around the pin
}

// PopupAction is a clickable line of popup content.
type PopupAction struct {
	Class string
	Label string
	Href  string
}

// PopupContent is what a popup shows.
type PopupContent struct {
	Title   string
	Lines   []string
	Meta    []string
	Actions []PopupAction
}

type PopupOptions struct {
	AutoPan    bool
	KeepInView bool
}

// Popup is bound to a marker. Its element exists only while it is open.
type Popup struct {
	Content PopupContent
	Options PopupOptions

	element *Element
}

// Element returns the rendered popup, or nil while it is closed.
func (p *Popup) Element() *Element { return p.element }

func (p *Popup) open() {
	el := &Element{}
	for _, a := range p.Content.Actions {
		el.Nodes = append(el.Nodes, &Node{Class: a.Class, Label: a.Label, Href: a.Href})
	}
	p.element = el
}

// Event names fired by markers.
const (
	EventPopupOpen  = "popupopen"
	EventPopupClose = "popupclose"
	EventClick      = "click"
)

// Event is delivered to marker handlers.
type Event struct {
	Type   string
	Marker *Marker
	Popup  *Popup
}

// Marker is a positioned icon with an optional popup.
type Marker struct {
	latlng   geom.LatLng
	icon     Icon
	popup    *Popup
	handlers map[string][]func(Event)
	m        *Map
}

func NewMarker(ll geom.LatLng, icon Icon) *Marker {
	if icon.Size <= 0 {
		icon.Size = 1
	}
	return &Marker{latlng: ll, icon: icon}
}

func (mk *Marker) LatLng() geom.LatLng { return mk.latlng }
func (mk *Marker) Icon() Icon          { return mk.icon }
func (mk *Marker) Popup() *Popup       { return mk.popup }

// Map returns the map the marker is on, or nil once removed.
func (mk *Marker) Map() *Map { return mk.m }

// BindPopup attaches popup content shown when the marker is activated.
func (mk *Marker) BindPopup(c PopupContent, opts PopupOptions) *Marker {
	mk.popup = &Popup{Content: c, Options: opts}
	return mk
}

// On registers fn for event.
func (mk *Marker) On(event string, fn func(Event)) *Marker {
	if mk.handlers == nil {
		mk.handlers = make(map[string][]func(Event))
	}
	mk.handlers[event] = append(mk.handlers[event], fn)
	return mk
}

func (mk *Marker) fire(event string) {
	for _, fn := range mk.handlers[event] {
		fn(Event{Type: event, Marker: mk, Popup: mk.popup})
	}
}
