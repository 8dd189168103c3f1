package teams

// TeamSeason identifies a franchise for a single year. The same club
// can appear under different identifiers and display names across
// years, so (ID, Year) is the only stable key.
type TeamSeason struct {
	ID   string
	Year int
	Name string
}

// Suggestion is a typeahead hit for a team lookup.
type Suggestion struct {
	ID   string
	Name string
}
