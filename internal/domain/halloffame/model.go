package halloffame

// Induction records the year a player was voted into the hall of fame.
// Only inducted players have a record; nominees who never made it are
// absent, not marked.
type Induction struct {
	PlayerID string
	Year     int
}
