package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowListeners(t *testing.T) {
	w := NewWindow()
	var got []Size
	l := NewListener(func(s Size) { got = append(got, s) })
	w.AddListener(l)
	w.AddListener(l)
	assert.Equal(t, 1, w.Listeners())

	w.Resize(Size{Width: 80, Height: 24})
	w.RemoveListener(l)
	w.Resize(Size{Width: 100, Height: 30})

	assert.Equal(t, []Size{{Width: 80, Height: 24}}, got)
	assert.Equal(t, 0, w.Listeners())
	assert.Equal(t, Size{Width: 100, Height: 30}, w.Size())
}

func TestPaneObservers(t *testing.T) {
	p := NewPane()
	calls := 0
	disconnect := p.Observe(func(Size) { calls++ })

	p.SetSize(Size{Width: 40, Height: 10})
	p.SetSize(Size{Width: 40, Height: 10})
	assert.Equal(t, 1, calls, "unchanged size does not notify")

	p.SetVisible(false)
	assert.Equal(t, Size{}, p.Size())
	p.SetSize(Size{Width: 50, Height: 10})
	assert.Equal(t, 1, calls, "hidden pane does not notify")
	p.SetVisible(true)
	assert.Equal(t, 2, calls, "revealing notifies")
	assert.Equal(t, Size{Width: 50, Height: 10}, p.Size())

	disconnect()
	assert.Equal(t, 0, p.Observers())
	p.SetSize(Size{Width: 60, Height: 10})
	assert.Equal(t, 2, calls)
}

func TestOverlay(t *testing.T) {
	bg := "..........\n..........\n.........."
	tests := []struct {
		name string
		fg   string
		x, y int
		want string
	}{
		{name: "middle", fg: "ab\ncd", x: 3, y: 1, want: "..........\n...ab.....\n...cd....."},
		{name: "clipped rows", fg: "xy\nzz\nqq", x: 0, y: 2, want: "..........\n..........\nxy........"},
		{name: "past right edge", fg: "abc", x: 12, y: 0, want: "..........  abc\n..........\n.........."},
		{name: "flush right", fg: "abc", x: 7, y: 0, want: ".......abc\n..........\n.........."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlay(bg, tt.fg, tt.x, tt.y))
		})
	}
}
