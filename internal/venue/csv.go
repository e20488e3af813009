package venue

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrDuplicateID is returned when two rows share a venue id.
var ErrDuplicateID = errors.New("duplicate venue id")

// LoadCSV reads venues from a CSV file with a header row.
// Column detection is case-insensitive: id, name, address, city,
// lat|latitude, lng|lon|longitude, courts, booking|booking_url, image.
// id, name, lat and lng are required. Rows with unparsable coordinates are skipped.
func LoadCSV(path string) ([]Venue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("venues csv: %w", err)
	}
	if len(recs) == 0 {
		return nil, errors.New("venues csv: empty")
	}
	idx := map[string]int{}
	for i, h := range recs[0] {
		key := strings.ToLower(strings.TrimSpace(h))
		switch key {
		case "latitude":
			key = "lat"
		case "lon", "long", "longitude":
			key = "lng"
		case "booking_url", "bookingurl":
			key = "booking"
		}
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	for _, col := range []string{"id", "name", "lat", "lng"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("venues csv: column %q not found", col)
		}
	}
	get := func(row []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []Venue
	seen := map[string]bool{}
	for _, row := range recs[1:] {
		lat, err1 := strconv.ParseFloat(get(row, "lat"), 64)
		lng, err2 := strconv.ParseFloat(get(row, "lng"), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		v := Venue{
			ID:         get(row, "id"),
			Name:       get(row, "name"),
			Address:    get(row, "address"),
			City:       get(row, "city"),
			Lat:        lat,
			Lng:        lng,
			BookingURL: get(row, "booking"),
			Image:      get(row, "image"),
		}
		if v.ID == "" {
			continue
		}
		if seen[v.ID] {
			return nil, fmt.Errorf("venues csv: %w: %s", ErrDuplicateID, v.ID)
		}
		seen[v.ID] = true
		if c, err := strconv.Atoi(get(row, "courts")); err == nil {
			v.Courts = c
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("venues csv: no valid rows parsed")
	}
	return out, nil
}
