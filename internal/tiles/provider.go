// Package tiles fetches raster map tiles, reduces them to braille dot masks
// and caches them for the map surface.
package tiles

import (
	"context"
	"fmt"
	"image"
	_ "image/png"
	"net/http"
	"strconv"
	"strings"

	"padelmatch/internal/geom"
)

// Provider loads the image for a tile.
type Provider interface {
	GetTile(ctx context.Context, tile geom.Tile) (image.Image, error)
}

// TemplateProvider fetches tiles from a URL template with {s}, {z}, {x}, {y}
// and {r} placeholders. {s} rotates over Subdomains, {r} is the retina suffix
// and is always empty.
type TemplateProvider struct {
	Template   string
	Subdomains string
	UserAgent  string
	client     *http.Client
}

func NewTemplateProvider(template, subdomains string) *TemplateProvider {
	return &TemplateProvider{
		Template:   template,
		Subdomains: subdomains,
		UserAgent:  "padelmatch/1.0 (+terminal venue finder)",
		client:     &http.Client{},
	}
}

// URL returns the address of a tile.
func (p *TemplateProvider) URL(tile geom.Tile) string {
	s := ""
	if n := len(p.Subdomains); n > 0 {
		i := tile.X + tile.Y
		if i < 0 {
			i = -i
		}
		s = string(p.Subdomains[i%n])
	}
	return strings.NewReplacer(
		"{s}", s,
		"{z}", strconv.Itoa(tile.Zoom),
		"{x}", strconv.Itoa(tile.X),
		"{y}", strconv.Itoa(tile.Y),
		"{r}", "",
	).Replace(p.Template)
}

func (p *TemplateProvider) GetTile(ctx context.Context, tile geom.Tile) (image.Image, error) {
	url := p.URL(tile)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.UserAgent)
	req.Header.Set("Accept", "image/png,image/*")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tile %s: unexpected status code: %d", url, resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("tile %s: %w", url, err)
	}
	return img, nil
}
