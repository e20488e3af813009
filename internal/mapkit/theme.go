package mapkit

import (
	"embed"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed assets
var assets embed.FS

// Theme is the map stylesheet.
type Theme struct {
	Marker         string `yaml:"marker"`
	MarkerSelected string `yaml:"marker_selected"`
	BadgeAlert     string `yaml:"badge_alert"`
	BadgeNeutral   string `yaml:"badge_neutral"`
	BadgeText      string `yaml:"badge_text"`
	Halo           string `yaml:"halo"`
	Basemap        string `yaml:"basemap"`
	Tiles          string `yaml:"tiles"`
	PopupBorder    string `yaml:"popup_border"`
	Accent         string `yaml:"accent"`
}

// DefaultTheme is used until a stylesheet has loaded.
func DefaultTheme() Theme {
	return Theme{
		Marker:         "#22c55e",
		MarkerSelected: "#16a34a",
		BadgeAlert:     "#ef4444",
		BadgeNeutral:   "#6b7280",
		BadgeText:      "#ffffff",
		Halo:           "#22c55e",
		Basemap:        "#64748b",
		Tiles:          "#334155",
		PopupBorder:    "#243141",
		Accent:         "#16a34a",
	}
}

// ParseTheme reads a YAML stylesheet. Missing keys keep their defaults.
func ParseTheme(b []byte) (Theme, error) {
	t := DefaultTheme()
	if err := yaml.Unmarshal(b, &t); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	for name, c := range map[string]string{
		"marker":          t.Marker,
		"marker_selected": t.MarkerSelected,
		"badge_alert":     t.BadgeAlert,
		"badge_neutral":   t.BadgeNeutral,
		"badge_text":      t.BadgeText,
		"halo":            t.Halo,
		"basemap":         t.Basemap,
		"tiles":           t.Tiles,
		"popup_border":    t.PopupBorder,
		"accent":          t.Accent,
	} {
		if _, err := colorful.Hex(c); err != nil {
			return Theme{}, fmt.Errorf("theme: %s: %w", name, err)
		}
	}
	return t, nil
}

// pulse blends the halo colour towards fade for animation frame n.
func (t Theme) pulse(n int) string {
	from, err1 := colorful.Hex(t.Halo)
	to, err2 := colorful.Hex(t.Tiles)
	if err1 != nil || err2 != nil {
		return t.Halo
	}
	steps := []float64{0, 0.35, 0.7, 0.35}
	return from.BlendLab(to, steps[n%len(steps)]).Clamped().Hex()
}
