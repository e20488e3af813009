package geom

import "math"

// TileSize is the edge length of a Web Mercator tile in pixels.
const TileSize = 256

// maxLat is the Web Mercator latitude limit.
const maxLat = 85.0511287798

// Project converts a coordinate to world pixel coordinates at the given zoom.
// Zoom may be fractional.
func Project(ll LatLng, zoom float64) (x, y float64) {
	n := math.Pow(2, zoom)
	lat := math.Max(-maxLat, math.Min(maxLat, ll.Lat))
	latRad := lat * math.Pi / 180
	x = TileSize * n * (ll.Lng + 180) / 360
	y = TileSize * n * (1 - math.Log(math.Tan(latRad)+1/math.Cos(latRad))/math.Pi) / 2
	return x, y
}

// Unproject converts world pixel coordinates back to a geographic coordinate.
func Unproject(x, y, zoom float64) LatLng {
	n := math.Pow(2, zoom)
	lng := x/(TileSize*n)*360 - 180
	latRad := math.Pi * (1 - 2*y/(TileSize*n))
	lat := 180 / math.Pi * math.Atan(math.Sinh(latRad))
	return LatLng{Lat: lat, Lng: lng}
}

// Tile addresses one Web Mercator tile.
type Tile struct {
	X, Y, Zoom int
}

// TileAt returns the tile containing world pixel (x, y) at an integer zoom,
// or ok=false when it lies outside the world.
func TileAt(x, y float64, zoom int) (t Tile, ok bool) {
	n := 1 << zoom
	tx := int(math.Floor(x / TileSize))
	ty := int(math.Floor(y / TileSize))
	if tx < 0 || ty < 0 || tx >= n || ty >= n {
		return Tile{}, false
	}
	return Tile{X: tx, Y: ty, Zoom: zoom}, true
}
