package mapkit

import "sort"

// canvas is a braille micro-grid: every cell holds 2x4 dots.
type canvas struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newCanvas(w, h int) *canvas {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &canvas{w: w, h: h, m: m}
}

var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// set marks the dot at micro coords (2x4 per cell).
func (c *canvas) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= c.h || cx >= c.w {
		return
	}
	c.m[cy][cx] |= dotBits[mx%2][my%4]
}

// line draws a line on the micro-grid using Bresenham.
func (c *canvas) line(x0, y0, x1, y1 int) {
	// far off-screen segments are clipped by skipping, not by intersection
	const limit = 1 << 15
	if abs(x0) > limit || abs(y0) > limit || abs(x1) > limit || abs(y1) > limit {
		return
	}
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) ||
		(x0 >= c.w*2 && x1 >= c.w*2) || (y0 >= c.h*4 && y1 >= c.h*4) {
		return
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fill paints the inside of ring with the even-odd rule, one scanline per dot row.
func (c *canvas) fill(ring [][2]int) {
	for y := 0; y < c.h*4; y++ {
		var xs []int
		for i := range ring {
			a, b := ring[i], ring[(i+1)%len(ring)]
			if a[1] == b[1] {
				continue
			}
			if (y >= a[1] && y < b[1]) || (y >= b[1] && y < a[1]) {
				t := float64(y-a[1]) / float64(b[1]-a[1])
				xs = append(xs, int(float64(a[0])+t*float64(b[0]-a[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= xs[i+1] && x < c.w*2; x++ {
				c.set(x, y)
			}
		}
	}
}

// rune returns the glyph for a cell, or 0 when no dot is set.
func (c *canvas) rune(x, y int) rune {
	if m := c.m[y][x]; m != 0 {
		return rune(0x2800 + int(m))
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
