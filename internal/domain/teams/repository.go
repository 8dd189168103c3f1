package teams

import "context"

// Repository describes team lookups needed by use cases.
type Repository interface {
	Suggest(ctx context.Context, fragment string, limit int) ([]Suggestion, error)
}
