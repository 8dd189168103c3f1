package people

import "context"

// Repository describes player-register reads needed by use cases.
type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	Suggest(ctx context.Context, fragment string, limit int) ([]Suggestion, error)
}
