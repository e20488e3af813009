package venue

// Fixtures returns the built-in padel venues in Denmark.
func Fixtures() []Venue {
	return []Venue{
		{
			ID:         "1",
			Name:       "Copenhagen Padel Club",
			Address:    "Kattegatvej 6, 2150 København Ø",
			City:       "Copenhagen",
			Lat:        55.718133691218185,
			Lng:        12.607227184305493,
			Courts:     6,
			BookingURL: "https://www.propadel.dk/newlook/proc_baner.asp",
			Image:      "https://images.unsplash.com/photo-1554068865-24cecd4e34b8?w=400&h=300&fit=crop",
		},
		{
			ID:         "2",
			Name:       "Aarhus Pakhus77",
			Address:    "Hveensvej 5, 8000 Aarhus Ø",
			City:       "Aarhus",
			Lat:        56.16221514898522,
			Lng:        10.222711991489575,
			Courts:     4,
			BookingURL: "https://pakhus77.dk/booking/",
			Image:      "https://images.unsplash.com/photo-1622279457486-62e75e84d1ca?w=400&h=300&fit=crop",
		},
		{
			ID:         "3",
			Name:       "Odense City Padel",
			Address:    "Thriges Pl. 9, 5000 Odense C",
			City:       "Odense",
			Lat:        55.404582638615494,
			Lng:        10.390464253603128,
			Courts:     5,
			BookingURL: "https://www.matchi.se/facilities/odensecitypadel",
			Image:      "https://images.unsplash.com/photo-1617883861744-87930cb78f79?w=400&h=300&fit=crop",
		},
		{
			ID:         "4",
			Name:       "Match Padel Aalborg",
			Address:    "Østeraagade 11",
			City:       "Aalborg",
			Lat:        57.00732533922712,
			Lng:        9.870636152808071,
			Courts:     3,
			BookingURL: "https://matchpadel.halbooking.dk/newlook/default.asp",
			Image:      "https://images.unsplash.com/photo-1595435934249-5df7ed86e1c0?w=400&h=300&fit=crop",
		},
		{
			ID:         "5",
			Name:       "Roskilde Padel",
			Address:    "Rønøs Alle 2, 4000 Roskilde",
			City:       "Roskilde",
			Lat:        55.624088488847725,
			Lng:        12.091715969058704,
			Courts:     4,
			BookingURL: "https://racketclub.dk/book",
			Image:      "https://images.unsplash.com/photo-1544919982-b61976f0ba43?w=400&h=300&fit=crop",
		},
		{
			ID:         "6",
			Name:       "Esbjerg Padel Center",
			Address:    "Stormgade 165",
			City:       "Esbjerg",
			Lat:        55.4760,
			Lng:        8.4520,
			Courts:     3,
			BookingURL: "https://example.com/book",
			Image:      "https://images.unsplash.com/photo-1612872087720-bb876e2e67d1?w=400&h=300&fit=crop",
		},
	}
}

// Players returns the built-in players looking for a match.
func Players() []Player {
	return []Player{
		{ID: "1", Name: "Anders Nielsen", Level: "Intermediate", VenueID: "1", PreferredTime: "Evening", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop"},
		{ID: "2", Name: "Sophie Hansen", Level: "Advanced", VenueID: "1", PreferredTime: "Afternoon", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop"},
		{ID: "3", Name: "Lars Jensen", Level: "Beginner", VenueID: "2", PreferredTime: "Morning", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=100&h=100&fit=crop"},
		{ID: "4", Name: "Emma Petersen", Level: "Intermediate", VenueID: "3", PreferredTime: "Evening", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop"},
		{ID: "5", Name: "Mikkel Andersen", Level: "Advanced", VenueID: "3", PreferredTime: "Afternoon", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop"},
	}
}
