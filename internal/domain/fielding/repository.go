package fielding

import "context"

// Repository describes fielding reads needed by use cases. Team-season
// rows come back ordered by games descending, career rows by year
// descending.
type Repository interface {
	ListByTeamSeason(ctx context.Context, teamFragment string, year int) ([]SeasonLine, error)
	ListCareer(ctx context.Context, playerID string) ([]SeasonLine, error)
}
