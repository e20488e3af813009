package mapsync

import (
	tea "github.com/charmbracelet/bubbletea"

	"padelmatch/internal/mapkit"
)

func (e *Engine) popupOpened(b *binding, ev mapkit.Event) {
	if ev.Popup == nil {
		return
	}
	node := ev.Popup.Element().Query("." + findPlayersClass)
	if node == nil {
		return
	}
	b.listener = mapkit.NewListener(func() tea.Cmd { return e.selectVenue(b) })
	node.AddEventListener("click", b.listener)
}

func (e *Engine) popupClosed(b *binding, ev mapkit.Event) {
	if b.listener == nil {
		return
	}
	if ev.Popup != nil {
		if node := ev.Popup.Element().Query("." + findPlayersClass); node != nil {
			node.RemoveEventListener("click", b.listener)
		}
	}
	b.listener = nil
}

func (e *Engine) selectVenue(b *binding) tea.Cmd {
	if e.props.OnSelect == nil {
		return nil
	}
	return e.props.OnSelect(b.venue)
}
