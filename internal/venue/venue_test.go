package venue

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLiveCounts(t *testing.T) {
	vs := WithLiveCounts(Fixtures(), Players())
	counts := map[string]int{}
	for _, v := range vs {
		counts[v.ID] = v.ActivePlayers
	}
	assert.Equal(t, map[string]int{"1": 2, "2": 1, "3": 2, "4": 0, "5": 0, "6": 0}, counts)
	// fixtures are not mutated
	assert.Zero(t, Fixtures()[0].ActivePlayers)
}

func TestFilter(t *testing.T) {
	vs := Fixtures()
	tests := []struct {
		query string
		want  []string
	}{
		{query: "", want: []string{"1", "2", "3", "4", "5", "6"}},
		{query: "padel", want: []string{"1", "3", "4", "5", "6"}},
		{query: "AARHUS", want: []string{"2"}},
		{query: "  odense ", want: []string{"3"}},
		{query: "berlin", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			ids := []string{}
			for _, v := range Filter(vs, tt.query) {
				ids = append(ids, v.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestPlayersAtAndTotals(t *testing.T) {
	ps := PlayersAt(Players(), "3")
	require.Len(t, ps, 2)
	assert.Equal(t, "Emma Petersen", ps[0].Name)
	assert.Empty(t, PlayersAt(Players(), "6"))
	assert.Equal(t, 25, TotalCourts(Fixtures()))

	v, ok := Find(Fixtures(), "4")
	require.True(t, ok)
	assert.Equal(t, "Aalborg", v.City)
	_, ok = Find(Fixtures(), "99")
	assert.False(t, ok)
}

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "venues.csv")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeCSV(t, "ID,Name,City,Latitude,Longitude,Courts,Booking_URL\n"+
		"a,Vejle Padel,Vejle,55.70,9.53,2,https://example.com/a\n"+
		"b,Broken,Nowhere,north,east,1,\n"+
		"c,Kolding Padel,Kolding,55.49,9.47,x,\n")
	vs, err := LoadCSV(p)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, Venue{ID: "a", Name: "Vejle Padel", City: "Vejle", Lat: 55.70, Lng: 9.53, Courts: 2, BookingURL: "https://example.com/a"}, vs[0])
	assert.Equal(t, 0, vs[1].Courts)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(writeCSV(t, "id,name,lat,lng\n1,A,55,9\n1,B,56,10\n"))
	assert.ErrorIs(t, err, ErrDuplicateID)

	_, err = LoadCSV(writeCSV(t, "id,name,lat\n1,A,55\n"))
	assert.ErrorContains(t, err, `"lng"`)

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
