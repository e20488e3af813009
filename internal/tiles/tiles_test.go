package tiles

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"padelmatch/internal/geom"
)

func TestTemplateProviderURL(t *testing.T) {
	p := NewTemplateProvider("https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png", "abcd")
	tests := []struct {
		tile geom.Tile
		want string
	}{
		{tile: geom.Tile{X: 0, Y: 0, Zoom: 0}, want: "https://a.basemaps.cartocdn.com/light_all/0/0/0.png"},
		{tile: geom.Tile{X: 68, Y: 39, Zoom: 7}, want: "https://d.basemaps.cartocdn.com/light_all/7/68/39.png"},
		{tile: geom.Tile{X: 69, Y: 39, Zoom: 7}, want: "https://a.basemaps.cartocdn.com/light_all/7/69/39.png"},
		{tile: geom.Tile{X: 1, Y: 1, Zoom: 1}, want: "https://c.basemaps.cartocdn.com/light_all/1/1/1.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.URL(tt.tile))
	}

	noSub := NewTemplateProvider("https://tile.example/{z}/{x}/{y}.png", "")
	assert.Equal(t, "https://tile.example/3/2/1.png", noSub.URL(geom.Tile{X: 2, Y: 1, Zoom: 3}))
}

// halfDark is dark on its left half and white on its right half.
func halfDark(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if x < size/2 {
				c = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestNewBitmap(t *testing.T) {
	b := NewBitmap(halfDark(256), 8, Threshold)
	assert.Equal(t, 8, b.Size())
	assert.True(t, b.At(0, 0))
	assert.True(t, b.At(2, 7))
	assert.False(t, b.At(7, 0))
	assert.False(t, b.At(-1, 0))
	assert.False(t, b.At(8, 8))
}

type fakeProvider struct {
	calls atomic.Int32
	err   error
	gate  chan struct{}
}

func (f *fakeProvider) GetTile(ctx context.Context, tile geom.Tile) (image.Image, error) {
	f.calls.Add(1)
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	return halfDark(256), nil
}

func TestManagerFetchesOnce(t *testing.T) {
	fp := &fakeProvider{gate: make(chan struct{})}
	m := NewManager(fp, 2, zerolog.Nop())
	defer m.Close()

	tile := geom.Tile{X: 1, Y: 2, Zoom: 3}
	m.Request(tile)
	m.Request(tile)
	close(fp.gate)

	select {
	case got := <-m.Loaded():
		assert.Equal(t, tile, got)
	case <-time.After(2 * time.Second):
		t.Fatal("tile never loaded")
	}
	b, ok := m.Get(tile)
	require.True(t, ok)
	assert.Equal(t, DotsPerTile, b.Size())

	m.Request(tile)
	assert.Equal(t, int32(1), fp.calls.Load())
}

func TestManagerDoesNotRetryFailures(t *testing.T) {
	fp := &fakeProvider{err: errors.New("boom")}
	m := NewManager(fp, 1, zerolog.Nop())
	defer m.Close()

	tile := geom.Tile{X: 0, Y: 0, Zoom: 0}
	m.Request(tile)
	assert.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return m.failed[tile]
	}, time.Second, 5*time.Millisecond)

	m.Request(tile)
	_, ok := m.Get(tile)
	assert.False(t, ok)
	assert.Equal(t, int32(1), fp.calls.Load())
}
