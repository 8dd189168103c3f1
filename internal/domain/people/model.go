package people

// Player is a person from the historical register. Birth and death
// years are unknown for some nineteenth-century players.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	BirthYear *int
	DeathYear *int
}

// Suggestion is a typeahead hit for a player lookup.
type Suggestion struct {
	ID   string
	Name string
}
