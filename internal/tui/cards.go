package tui

import (
	"fmt"
	"io"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"

	"padelmatch/internal/venue"
)

type venueItem struct {
	v venue.Venue
}

func (i venueItem) Title() string       { return i.v.Name }
func (i venueItem) Description() string { return i.v.Address + ", " + i.v.City }
func (i venueItem) FilterValue() string { return i.v.Name + " " + i.v.City }

// cardDelegate draws a venue as a three line card with its two actions.
type cardDelegate struct {
	zones *zone.Manager
}

func (d cardDelegate) Height() int                             { return 3 }
func (d cardDelegate) Spacing() int                            { return 1 }
func (d cardDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d cardDelegate) mark(id, s string) string {
	if d.zones == nil {
		return s
	}
	return d.zones.Mark(id, s)
}

func (d cardDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(venueItem)
	if !ok {
		return
	}
	v := it.v
	width := max(10, m.Width()-2)

	head := titleStyle.Render(v.Name)
	if v.ActivePlayers > 0 {
		head += " " + badgeStyle.Render(fmt.Sprintf("%d looking to play", v.ActivePlayers))
	} else {
		head += " " + idleBadge.Render("quiet")
	}
	info := dimStyle.Render(fmt.Sprintf("%s, %s · %d courts", v.Address, v.City, v.Courts))
	actions := d.mark("find-"+v.ID, buttonStyle.Render("[ Find Players ]")) + " " +
		d.mark("book-"+v.ID, buttonStyle.Render("[ Book Court ]"))

	lines := []string{
		d.mark("card-"+v.ID, ansi.Truncate(head, width, "…")),
		ansi.Truncate(info, width, "…"),
		actions,
	}
	style := cardStyle
	if index == m.Index() {
		style = cardOnStyle
	}
	fmt.Fprint(w, style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}
