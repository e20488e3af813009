package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	bb, ok := BoundsOf([]LatLng{
		{Lat: 55.71, Lng: 12.60},
		{Lat: 57.00, Lng: 9.87},
		{Lat: 55.47, Lng: 8.45},
	})
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: 8.45, MinY: 55.47, MaxX: 12.60, MaxY: 57.00}, bb)
	assert.True(t, bb.Contains(LatLng{Lat: 56, Lng: 10}))
	assert.False(t, bb.Contains(LatLng{Lat: 54, Lng: 10}))
}

func TestProjectRoundTrip(t *testing.T) {
	ll := LatLng{Lat: 56.2639, Lng: 9.5018}
	for _, z := range []float64{0, 7, 10.5} {
		x, y := Project(ll, z)
		back := Unproject(x, y, z)
		assert.InDelta(t, ll.Lat, back.Lat, 1e-9)
		assert.InDelta(t, ll.Lng, back.Lng, 1e-9)
	}
}

func TestProjectOrigin(t *testing.T) {
	x, y := Project(LatLng{}, 1)
	assert.InDelta(t, 256.0, x, 1e-9)
	assert.InDelta(t, 256.0, y, 1e-9)

	tile, ok := TileAt(x-1, y+1, 1)
	require.True(t, ok)
	assert.Equal(t, Tile{X: 0, Y: 1, Zoom: 1}, tile)

	_, ok = TileAt(-1, 0, 1)
	assert.False(t, ok)
}

func TestParseGeoJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		check   func(t *testing.T, d Data)
		wantErr bool
	}{
		{
			name:  "feature collection with polygon",
			input: `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[8,54.5],[12.7,54.5],[12.7,57.8],[8,57.8],[8,54.5]]]}}]}`,
			check: func(t *testing.T, d Data) {
				require.Len(t, d.Polygons, 1)
				assert.Len(t, d.Polygons[0][0], 5)
				assert.Equal(t, BBox{MinX: 8, MinY: 54.5, MaxX: 12.7, MaxY: 57.8}, d.BBox)
			},
		},
		{
			name:  "bare multipolygon",
			input: `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,0]]],[[[2,2],[3,2],[3,3],[2,2]]]]}`,
			check: func(t *testing.T, d Data) {
				assert.Len(t, d.Polygons, 2)
				assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 3, MaxY: 3}, d.BBox)
			},
		},
		{
			name:  "feature with linestring",
			input: `{"type":"Feature","geometry":{"type":"LineString","coordinates":[[1,2],[3,4]]}}`,
			check: func(t *testing.T, d Data) {
				require.Len(t, d.Lines, 1)
				assert.Empty(t, d.Points)
			},
		},
		{name: "no geometry", input: `{"type":"FeatureCollection","features":[]}`, wantErr: true},
		{name: "not json", input: `POINT(1 2)`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseGeoJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, d)
		})
	}
}
