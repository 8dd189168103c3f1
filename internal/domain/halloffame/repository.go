package halloffame

import "context"

// Repository describes hall-of-fame lookups needed by use cases.
type Repository interface {
	GetInduction(ctx context.Context, playerID string) (Induction, bool, error)
}
