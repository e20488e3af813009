package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"padelmatch/internal/layout"
	"padelmatch/internal/venue"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	w := m.width
	bodyH := m.bodyHeight()

	// Header
	title := titleStyle.Render(" PadelMatch DK ")
	tabs := m.mark("tab-map", tab(m.mode == mapMode).Render("Map")) + " " +
		m.mark("tab-list", tab(m.mode == listMode).Render("List"))
	gap := max(1, w-lipgloss.Width(title)-lipgloss.Width(tabs))
	header := title + strings.Repeat(" ", gap) + tabs
	search := m.search.View()

	// Body
	var body string
	if m.mode == mapMode {
		body = m.renderMap(w, bodyH)
	} else {
		body = m.renderList(w, bodyH)
	}
	body = lipgloss.NewStyle().Width(w).Height(bodyH).MaxHeight(bodyH).Render(body)
	if m.selected != nil {
		box := m.renderModal()
		x := max(0, (w-lipgloss.Width(box))/2)
		y := max(0, (bodyH-lipgloss.Height(box))/2)
		body = layout.Overlay(body, box, x, y)
	}

	// Footer
	info := m.renderInfo(w)
	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.NewStyle().Width(w).MaxHeight(1).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, status, m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, search, body, info, footer)
	ui = appStyle.Width(w).Height(m.height).MaxHeight(m.height).Render(ui)
	if m.zones != nil {
		ui = m.zones.Scan(ui)
	}
	return ui
}

func tab(on bool) lipgloss.Style {
	if on {
		return tabOnStyle
	}
	return tabStyle
}

func (m Model) renderMap(w, h int) string {
	if !m.mapReady() {
		loading := m.spin.View() + " Loading map..."
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, loading)
	}
	view := m.engine.View()
	legend := renderLegend()
	if lh := lipgloss.Height(legend); h >= lh+4 && w >= lipgloss.Width(legend)+4 {
		view = layout.Overlay(view, legend, 1, h-lh-1)
	}
	return view
}

func renderLegend() string {
	pin := lipgloss.NewStyle().Foreground(brightFg).Render("●")
	rows := []string{
		titleStyle.Render("Map legend"),
		pin + " " + dimStyle.Render("Padel court"),
		pin + badgeStyle.Padding(0).Render("5") + dimStyle.Render(" Players looking"),
		dimStyle.Render("Click a marker to see details"),
		dimStyle.Render("and find players"),
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderList(w, h int) string {
	if len(m.filtered) == 0 {
		msg := boxStyle.Render(`No courts found for "` + m.search.Value() + `".`)
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Top, msg)
	}
	return m.l.View()
}

// renderInfo is the bottom bar with totals over all venues.
func (m Model) renderInfo(w int) string {
	cell := func(n int, label string) string {
		return titleStyle.Render(fmt.Sprint(n)) + " " + dimStyle.Render(label)
	}
	cells := []string{
		cell(len(m.venues), "Courts"),
		cell(len(m.players), "Active Players"),
		cell(venue.TotalCourts(m.venues), "Total Courts"),
	}
	colW := max(1, w/len(cells))
	for i, c := range cells {
		cells[i] = lipgloss.PlaceHorizontal(colW, lipgloss.Center, c)
	}
	return lipgloss.NewStyle().MaxWidth(w).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	var keys []string
	switch {
	case m.selected != nil:
		keys = []string{"↑↓ players", "p playing here", "m message", "b book", "esc close"}
	case m.search.Focused():
		keys = []string{"type to filter", "enter/esc done"}
	case m.mode == listMode:
		keys = []string{"↑↓ move", "enter players", "b book", "/ search", "v map", "q quit"}
	default:
		keys = []string{"↑↓←→ pan", "+/- zoom", "tab markers", "enter players", "b book", "/ search", "v list", "q quit"}
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
