package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Overlay draws fg on top of bg with fg's top-left corner at cell (x, y).
// Both may contain ANSI styling; lines of fg outside bg are dropped.
func Overlay(bg, fg string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	bgLines := strings.Split(bg, "\n")
	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row >= len(bgLines) {
			break
		}
		base := bgLines[row]
		w := ansi.StringWidth(base)
		if x >= w {
			bgLines[row] = base + strings.Repeat(" ", x-w) + line
			continue
		}
		fw := ansi.StringWidth(line)
		left := ansi.Truncate(base, x, "")
		right := ""
		if x+fw < w {
			right = ansi.TruncateLeft(base, x+fw, "")
		}
		if strings.Contains(line, "\x1b[") {
			line += "\x1b[0m"
		}
		bgLines[row] = left + line + right
	}
	return strings.Join(bgLines, "\n")
}
