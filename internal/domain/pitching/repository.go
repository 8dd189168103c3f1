package pitching

import "context"

// Repository describes pitching reads needed by use cases. Team-season
// rows come back ordered by outs pitched descending, career rows by
// year descending.
type Repository interface {
	ListByTeamSeason(ctx context.Context, teamFragment string, year int) ([]SeasonLine, error)
	ListCareer(ctx context.Context, playerID string) ([]SeasonLine, error)
}
