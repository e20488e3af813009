package tiles

import (
	"image"

	"github.com/disintegration/imaging"
)

// DotsPerTile is the edge length of a tile's dot mask.
const DotsPerTile = 64

// Bitmap is a square on/off mask of a tile, sampled for braille rendering.
type Bitmap struct {
	size int
	dots []bool
}

// NewBitmap downsamples img to size x size and sets a dot wherever the
// luminance is below threshold (0..1). Light basemaps leave land empty and
// mark water, roads casing and labels.
func NewBitmap(img image.Image, size int, threshold float64) *Bitmap {
	small := imaging.Grayscale(imaging.Resize(img, size, size, imaging.Box))
	b := &Bitmap{size: size, dots: make([]bool, size*size)}
	limit := uint8(threshold * 255)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := small.NRGBAAt(x, y)
			if c.A > 0 && c.R < limit {
				b.dots[y*size+x] = true
			}
		}
	}
	return b
}

// Size returns the mask's edge length.
func (b *Bitmap) Size() int { return b.size }

// At reports whether the dot at (x, y) is set; out-of-range is unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.size || y >= b.size {
		return false
	}
	return b.dots[y*b.size+x]
}
