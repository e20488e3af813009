package geom

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ParseGeoJSON decodes a GeoJSON document (geometry, Feature or FeatureCollection)
// into Data. Points of lines and polygons are folded into the bbox only.
func ParseGeoJSON(b []byte) (Data, error) {
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		return Data{}, fmt.Errorf("geojson: %w", err)
	}
	var d Data
	seen := false
	grow := func(pt [2]float64) {
		ll := LatLng{Lat: pt[1], Lng: pt[0]}
		if !seen {
			d.BBox = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
			seen = true
			return
		}
		d.BBox = d.BBox.Extend(ll)
	}
	parsePoint := func(v any) (pt [2]float64, ok bool) {
		if a, ok := v.([]any); ok && len(a) >= 2 {
			lon, lok := a[0].(float64)
			lat, aok := a[1].(float64)
			if lok && aok {
				return [2]float64{lon, lat}, true
			}
		}
		return [2]float64{}, false
	}
	parseRing := func(v any) (ls [][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, el := range arr {
			if pt, ok := parsePoint(el); ok {
				ls = append(ls, pt)
			}
		}
		return ls, true
	}
	parsePolygon := func(v any) (poly [][][2]float64, ok bool) {
		arr, ok := v.([]any)
		if !ok {
			return nil, false
		}
		for _, ring := range arr {
			if ls, ok := parseRing(ring); ok {
				poly = append(poly, ls)
			}
		}
		return poly, true
	}
	each := func(v any, fn func(any)) {
		if arr, ok := v.([]any); ok {
			for _, el := range arr {
				fn(el)
			}
		}
	}
	addLine := func(ls [][2]float64) {
		d.Lines = append(d.Lines, ls)
		for _, p := range ls {
			grow(p)
		}
	}
	addPoly := func(poly [][][2]float64) {
		d.Polygons = append(d.Polygons, poly)
		for _, ring := range poly {
			for _, p := range ring {
				grow(p)
			}
		}
	}

	var walkGeom func(g map[string]any)
	walkGeom = func(g map[string]any) {
		coords := g["coordinates"]
		switch g["type"] {
		case "Point":
			if pt, ok := parsePoint(coords); ok {
				d.Points = append(d.Points, pt)
				grow(pt)
			}
		case "MultiPoint":
			if pts, ok := parseRing(coords); ok {
				for _, p := range pts {
					d.Points = append(d.Points, p)
					grow(p)
				}
			}
		case "LineString":
			if ls, ok := parseRing(coords); ok {
				addLine(ls)
			}
		case "MultiLineString":
			each(coords, func(el any) {
				if ls, ok := parseRing(el); ok {
					addLine(ls)
				}
			})
		case "Polygon":
			if poly, ok := parsePolygon(coords); ok {
				addPoly(poly)
			}
		case "MultiPolygon":
			each(coords, func(el any) {
				if poly, ok := parsePolygon(el); ok {
					addPoly(poly)
				}
			})
		case "GeometryCollection":
			each(g["geometries"], func(el any) {
				if gm, ok := el.(map[string]any); ok {
					walkGeom(gm)
				}
			})
		}
	}

	switch raw["type"] {
	case "Feature":
		if g, ok := raw["geometry"].(map[string]any); ok {
			walkGeom(g)
		}
	case "FeatureCollection":
		each(raw["features"], func(f any) {
			if fm, ok := f.(map[string]any); ok {
				if g, ok := fm["geometry"].(map[string]any); ok {
					walkGeom(g)
				}
			}
		})
	default:
		walkGeom(raw)
	}
	if d.Empty() {
		return Data{}, errors.New("geojson: no geometries found")
	}
	return d, nil
}
