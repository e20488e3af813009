package mapsync

import (
	"fmt"
	"strconv"

	"padelmatch/internal/mapkit"
	"padelmatch/internal/venue"
)

// Classes of the popup action nodes.
const (
	findPlayersClass = "find-players-btn"
	bookLinkClass    = "book-link"
)

// binding links a venue to the marker built for it in the current
// reconciliation.
type binding struct {
	id       string
	venue    venue.Venue
	marker   *mapkit.Marker
	listener *mapkit.Listener // set while the popup is open
}

func markerIcon(theme mapkit.Theme, selected bool, players int) mapkit.Icon {
	ic := mapkit.Icon{
		Size:       1,
		Color:      theme.Marker,
		Badge:      badgeLabel(players),
		BadgeColor: theme.BadgeNeutral,
	}
	if selected {
		ic.Size = 3
		ic.Color = theme.MarkerSelected
	}
	if players > 0 {
		ic.BadgeColor = theme.BadgeAlert
		ic.Halo = true
	}
	return ic
}

func badgeLabel(n int) string {
	if n > 99 {
		return "99+"
	}
	return strconv.Itoa(n)
}

func popupContent(v venue.Venue) mapkit.PopupContent {
	return mapkit.PopupContent{
		Title: v.Name,
		Lines: []string{v.Address, v.City},
		Meta:  []string{fmt.Sprintf("Looking for opponents: %d * %d courts", v.ActivePlayers, v.Courts)},
		Actions: []mapkit.PopupAction{
			{Class: findPlayersClass, Label: "Find players"},
			{Class: bookLinkClass, Label: "Book court", Href: v.BookingURL},
		},
	}
}

// reconcile drops every marker and builds one per venue in list order.
func (e *Engine) reconcile() {
	for _, b := range e.bindings {
		e.surface.RemoveMarker(b.marker)
	}
	e.bindings = make([]*binding, 0, len(e.props.Venues))

	theme := e.surface.Runtime().Theme()
	sel := e.props.Selected
	for _, v := range e.props.Venues {
		b := &binding{id: v.ID, venue: v}
		b.marker = mapkit.NewMarker(v.LatLng(), markerIcon(theme, sel != nil && sel.ID == v.ID, v.ActivePlayers)).
			BindPopup(popupContent(v), mapkit.PopupOptions{AutoPan: true, KeepInView: true}).
			On(mapkit.EventPopupOpen, func(ev mapkit.Event) { e.popupOpened(b, ev) }).
			On(mapkit.EventPopupClose, func(ev mapkit.Event) { e.popupClosed(b, ev) })
		if err := e.surface.AddMarker(b.marker); err != nil {
			e.log.Debug().Err(err).Str("venue", v.ID).Msg("add marker")
			continue
		}
		e.bindings = append(e.bindings, b)
	}
}

func (e *Engine) binding(id string) *binding {
	for _, b := range e.bindings {
		if b.id == id {
			return b
		}
	}
	return nil
}
