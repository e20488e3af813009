package mapsync

import (
	"padelmatch/internal/geom"
	"padelmatch/internal/mapkit"
)

// fitToVenues frames every venue. An empty list leaves the view alone.
func (e *Engine) fitToVenues() {
	if len(e.props.Venues) == 0 {
		return
	}
	lls := make([]geom.LatLng, len(e.props.Venues))
	for i, v := range e.props.Venues {
		lls[i] = v.LatLng()
	}
	bb, _ := geom.BoundsOf(lls)
	err := e.surface.FitBounds(bb, mapkit.FitOptions{Padding: e.cfg.FitPadding, MaxZoom: e.cfg.FitMaxZoom})
	if err != nil {
		e.log.Debug().Err(err).Msg("fit bounds")
	}
}

// focusSelection closes any popup and pans to the selected venue's marker.
func (e *Engine) focusSelection() {
	e.surface.ClosePopup()
	b := e.binding(e.props.Selected.ID)
	if b == nil {
		return
	}
	if err := e.surface.PanTo(b.marker.LatLng()); err != nil {
		e.log.Debug().Err(err).Msg("pan to selection")
	}
}
