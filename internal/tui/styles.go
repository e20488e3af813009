package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#16A34A")
	brightFg  = lipgloss.Color("#22C55E")
	alertBg   = lipgloss.Color("#EF4444")
	neutralBg = lipgloss.Color("#6B7280")
	panelBg   = lipgloss.Color("#0F141A")
	borderCol = lipgloss.Color("#243141")

	appStyle    = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(baseDimFg)
	tabStyle    = lipgloss.NewStyle().Foreground(baseDimFg).Padding(0, 1)
	tabOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(accentFg).Bold(true).Padding(0, 1)
	buttonStyle = lipgloss.NewStyle().Foreground(brightFg).Bold(true)
	badgeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(alertBg).Bold(true).Padding(0, 1)
	idleBadge   = badgeStyle.Background(neutralBg)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(borderCol).PaddingLeft(1)
	cardOnStyle = cardStyle.BorderForeground(accentFg)
	modalStyle  = boxStyle.Background(panelBg).BorderForeground(accentFg).Padding(0, 2)
)
