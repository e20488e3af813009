package geom

// BBox is an axis-aligned box in lon/lat degrees (X = lon, Y = lat).
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// LatLng is a geographic coordinate.
type LatLng struct {
	Lat, Lng float64
}

// Data is a minimal geometry container for rendering
type Data struct {
	Points   [][2]float64
	Lines    [][][2]float64
	Polygons [][][][2]float64 // polygons with rings (first outer, following holes)
	BBox     BBox
}

// Empty reports whether d holds no geometry at all.
func (d Data) Empty() bool {
	return len(d.Points) == 0 && len(d.Lines) == 0 && len(d.Polygons) == 0
}

// BoundsOf returns the smallest box covering all coordinates. ok is false for an empty slice.
func BoundsOf(lls []LatLng) (bb BBox, ok bool) {
	for i, ll := range lls {
		if i == 0 {
			bb = BBox{MinX: ll.Lng, MinY: ll.Lat, MaxX: ll.Lng, MaxY: ll.Lat}
			continue
		}
		bb = bb.Extend(ll)
	}
	return bb, len(lls) > 0
}

// Extend grows the box to include ll.
func (b BBox) Extend(ll LatLng) BBox {
	if ll.Lng < b.MinX {
		b.MinX = ll.Lng
	}
	if ll.Lat < b.MinY {
		b.MinY = ll.Lat
	}
	if ll.Lng > b.MaxX {
		b.MaxX = ll.Lng
	}
	if ll.Lat > b.MaxY {
		b.MaxY = ll.Lat
	}
	return b
}

// SouthWest and NorthEast corners.
func (b BBox) SouthWest() LatLng { return LatLng{Lat: b.MinY, Lng: b.MinX} }
func (b BBox) NorthEast() LatLng { return LatLng{Lat: b.MaxY, Lng: b.MaxX} }

// Contains reports whether ll lies inside the box, edges included.
func (b BBox) Contains(ll LatLng) bool {
	return ll.Lng >= b.MinX && ll.Lng <= b.MaxX && ll.Lat >= b.MinY && ll.Lat <= b.MaxY
}
