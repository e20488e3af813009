// Package venue holds the venue and player fixtures shown by the app.
package venue

import (
	"strings"

	"padelmatch/internal/geom"
)

// Venue is a play location. ID is unique within any list and is the only key
// used to correlate a venue with its map marker.
type Venue struct {
	ID            string
	Name          string
	Address       string
	City          string
	Lat           float64
	Lng           float64
	Courts        int
	BookingURL    string
	ActivePlayers int
	Image         string
}

// LatLng returns the venue's position.
func (v Venue) LatLng() geom.LatLng { return geom.LatLng{Lat: v.Lat, Lng: v.Lng} }

// Player is someone currently looking for a match at a venue.
type Player struct {
	ID            string
	Name          string
	Level         string
	VenueID       string
	PreferredTime string
	Avatar        string
}

// WithLiveCounts returns copies of vs with ActivePlayers set to the number of
// players registered at each venue.
func WithLiveCounts(vs []Venue, ps []Player) []Venue {
	counts := make(map[string]int, len(vs))
	for _, p := range ps {
		counts[p.VenueID]++
	}
	out := make([]Venue, len(vs))
	for i, v := range vs {
		v.ActivePlayers = counts[v.ID]
		out[i] = v
	}
	return out
}

// Filter keeps venues whose name or city contains q, case-insensitively.
// An empty query keeps everything.
func Filter(vs []Venue, q string) []Venue {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]Venue, 0, len(vs))
	for _, v := range vs {
		if q == "" || strings.Contains(strings.ToLower(v.Name), q) || strings.Contains(strings.ToLower(v.City), q) {
			out = append(out, v)
		}
	}
	return out
}

// PlayersAt returns the players registered at the venue with the given ID.
func PlayersAt(ps []Player, venueID string) []Player {
	var out []Player
	for _, p := range ps {
		if p.VenueID == venueID {
			out = append(out, p)
		}
	}
	return out
}

// TotalCourts sums the court counts of vs.
func TotalCourts(vs []Venue) int {
	n := 0
	for _, v := range vs {
		n += v.Courts
	}
	return n
}

// Find returns the venue with the given ID.
func Find(vs []Venue, id string) (Venue, bool) {
	for _, v := range vs {
		if v.ID == id {
			return v, true
		}
	}
	return Venue{}, false
}
