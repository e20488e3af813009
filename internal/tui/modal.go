package tui

import (
	"fmt"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"padelmatch/internal/venue"
)

var playerColumns = []table.Column{
	{Title: "Player", Width: 18},
	{Title: "Level", Width: 14},
	{Title: "Prefers", Width: 12},
}

const howTo = `## How it works

- Indicate you're playing at this court
- Connect with other players looking for matches
- Book your court through the venue's portal
`

// renderHowTo renders the help section once; plain text is used if glamour fails.
func renderHowTo(width int) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return howTo
	}
	out, err := r.Render(howTo)
	if err != nil {
		return howTo
	}
	return strings.Trim(out, "\n")
}

// refreshPlayers rebuilds the table rows for the selected venue.
func (m *Model) refreshPlayers() {
	if m.selected == nil {
		m.tbl.SetRows(nil)
		return
	}
	ps := venue.PlayersAt(m.players, m.selected.ID)
	rows := make([]table.Row, 0, len(ps))
	for _, p := range ps {
		rows = append(rows, table.Row{p.Name, p.Level, p.PreferredTime})
	}
	m.tbl.SetRows(rows)
	m.tbl.SetHeight(min(max(len(rows), 1), 6) + 1)
	m.tbl.GotoTop()
}

func (m Model) highlightedPlayer() (venue.Player, bool) {
	if m.selected == nil {
		return venue.Player{}, false
	}
	ps := venue.PlayersAt(m.players, m.selected.ID)
	i := m.tbl.Cursor()
	if i < 0 || i >= len(ps) {
		return venue.Player{}, false
	}
	return ps[i], true
}

func (m Model) mark(id, s string) string {
	if m.zones == nil {
		return s
	}
	return m.zones.Mark(id, s)
}

// renderModal draws the players box of the selected venue.
func (m Model) renderModal() string {
	v := *m.selected
	ps := venue.PlayersAt(m.players, v.ID)

	head := lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render(v.Name), "  ", m.mark("modal-close", dimStyle.Render("[x]")))
	rows := []string{
		head,
		dimStyle.Render(v.City),
		"",
		m.mark("modal-playing", buttonStyle.Render("[ I'm Playing Here ]")) + " " +
			m.mark("modal-book", buttonStyle.Render("[ Book Court ]")),
		"",
		titleStyle.Render(fmt.Sprintf("Players Looking for Opponents (%d)", len(ps))),
	}
	if len(ps) == 0 {
		rows = append(rows,
			dimStyle.Render("No players currently looking here."),
			dimStyle.Render("Be the first to say you're playing!"))
	} else {
		rows = append(rows, m.tbl.View(),
			m.mark("modal-message", buttonStyle.Render("[ Message player ]")))
	}
	rows = append(rows, "", m.howto)
	return modalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
