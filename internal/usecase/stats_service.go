package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Evowe/baseball-stats-api/internal/domain/batting"
	"github.com/Evowe/baseball-stats-api/internal/domain/fielding"
	"github.com/Evowe/baseball-stats-api/internal/domain/halloffame"
	"github.com/Evowe/baseball-stats-api/internal/domain/people"
	"github.com/Evowe/baseball-stats-api/internal/domain/pitching"
	"github.com/Evowe/baseball-stats-api/internal/domain/teams"
	"github.com/Evowe/baseball-stats-api/internal/platform/cache"
)

// SuggestionLimit caps typeahead result sets.
const SuggestionLimit = 10

const (
	minTeamFragmentLen   = 1
	minPlayerFragmentLen = 2
)

// TeamSeasonReport bundles every statistical category for one team's
// season. IsEmpty is set when no category matched, which the API
// reports as "no data" rather than an error.
type TeamSeasonReport struct {
	TeamFragment string
	Year         int
	Batting      []batting.SeasonLine
	Pitching     []pitching.SeasonLine
	Fielding     []fielding.SeasonLine
	IsEmpty      bool
}

// PlayerCareerReport bundles a player's identity and season-by-season
// lines across the categories. Category slices are empty, never nil,
// for players who only ever batted, pitched, or fielded.
type PlayerCareerReport struct {
	Player         people.Player
	HallOfFame     bool
	HallOfFameYear *int
	Batting        []batting.SeasonLine
	Pitching       []pitching.SeasonLine
	Fielding       []fielding.SeasonLine
}

type StatsService struct {
	peopleRepo   people.Repository
	teamsRepo    teams.Repository
	battingRepo  batting.Repository
	pitchingRepo pitching.Repository
	fieldingRepo fielding.Repository
	hofRepo      halloffame.Repository
	suggestions  *cache.Store
}

// NewStatsService wires the report and typeahead use cases. The
// suggestion cache is optional; pass nil to disable caching.
func NewStatsService(
	peopleRepo people.Repository,
	teamsRepo teams.Repository,
	battingRepo batting.Repository,
	pitchingRepo pitching.Repository,
	fieldingRepo fielding.Repository,
	hofRepo halloffame.Repository,
	suggestions *cache.Store,
) *StatsService {
	return &StatsService{
		peopleRepo:   peopleRepo,
		teamsRepo:    teamsRepo,
		battingRepo:  battingRepo,
		pitchingRepo: pitchingRepo,
		fieldingRepo: fieldingRepo,
		hofRepo:      hofRepo,
		suggestions:  suggestions,
	}
}

// TeamSeasonReport runs the three category queries sequentially on the
// shared handle. The first failure aborts the report; no partial result
// is ever returned.
func (s *StatsService) TeamSeasonReport(ctx context.Context, teamFragment string, year int) (TeamSeasonReport, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.TeamSeasonReport")
	defer span.End()

	teamFragment = strings.TrimSpace(teamFragment)
	if teamFragment == "" {
		return TeamSeasonReport{}, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}
	if year <= 0 {
		return TeamSeasonReport{}, fmt.Errorf("%w: year must be positive", ErrInvalidInput)
	}

	battingLines, err := s.battingRepo.ListByTeamSeason(ctx, teamFragment, year)
	if err != nil {
		return TeamSeasonReport{}, fmt.Errorf("list team batting: %w", err)
	}

	pitchingLines, err := s.pitchingRepo.ListByTeamSeason(ctx, teamFragment, year)
	if err != nil {
		return TeamSeasonReport{}, fmt.Errorf("list team pitching: %w", err)
	}

	fieldingLines, err := s.fieldingRepo.ListByTeamSeason(ctx, teamFragment, year)
	if err != nil {
		return TeamSeasonReport{}, fmt.Errorf("list team fielding: %w", err)
	}

	return TeamSeasonReport{
		TeamFragment: teamFragment,
		Year:         year,
		Batting:      notNil(battingLines),
		Pitching:     notNil(pitchingLines),
		Fielding:     notNil(fieldingLines),
		IsEmpty:      len(battingLines) == 0 && len(pitchingLines) == 0 && len(fieldingLines) == 0,
	}, nil
}

// PlayerCareerReport resolves the player first; an unknown id is
// ErrNotFound. A known player with no statistical lines still gets a
// report, with empty category slices.
func (s *StatsService) PlayerCareerReport(ctx context.Context, playerID string) (PlayerCareerReport, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.PlayerCareerReport")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerCareerReport{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	player, exists, err := s.peopleRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerCareerReport{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return PlayerCareerReport{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	induction, inducted, err := s.hofRepo.GetInduction(ctx, playerID)
	if err != nil {
		return PlayerCareerReport{}, fmt.Errorf("get induction: %w", err)
	}

	battingLines, err := s.battingRepo.ListCareer(ctx, playerID)
	if err != nil {
		return PlayerCareerReport{}, fmt.Errorf("list career batting: %w", err)
	}

	pitchingLines, err := s.pitchingRepo.ListCareer(ctx, playerID)
	if err != nil {
		return PlayerCareerReport{}, fmt.Errorf("list career pitching: %w", err)
	}

	fieldingLines, err := s.fieldingRepo.ListCareer(ctx, playerID)
	if err != nil {
		return PlayerCareerReport{}, fmt.Errorf("list career fielding: %w", err)
	}

	report := PlayerCareerReport{
		Player:     player,
		HallOfFame: inducted,
		Batting:    notNil(battingLines),
		Pitching:   notNil(pitchingLines),
		Fielding:   notNil(fieldingLines),
	}
	if inducted {
		year := induction.Year
		report.HallOfFameYear = &year
	}
	return report, nil
}

// SuggestTeams matches a fragment of at least one character against
// team names and identifiers.
func (s *StatsService) SuggestTeams(ctx context.Context, fragment string) ([]teams.Suggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.SuggestTeams")
	defer span.End()

	fragment = strings.TrimSpace(fragment)
	if len(fragment) < minTeamFragmentLen {
		return []teams.Suggestion{}, nil
	}

	if s.suggestions == nil {
		out, err := s.teamsRepo.Suggest(ctx, fragment, SuggestionLimit)
		if err != nil {
			return nil, fmt.Errorf("suggest teams: %w", err)
		}
		return notNil(out), nil
	}

	key := "teams:" + strings.ToLower(fragment)
	value, err := s.suggestions.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		out, err := s.teamsRepo.Suggest(ctx, fragment, SuggestionLimit)
		if err != nil {
			return nil, err
		}
		return notNil(out), nil
	})
	if err != nil {
		return nil, fmt.Errorf("suggest teams: %w", err)
	}
	return value.([]teams.Suggestion), nil
}

// SuggestPlayers matches a fragment of at least two characters against
// first name, last name, and the combined form.
func (s *StatsService) SuggestPlayers(ctx context.Context, fragment string) ([]people.Suggestion, error) {
	ctx, span := startUsecaseSpan(ctx, "StatsService.SuggestPlayers")
	defer span.End()

	fragment = strings.TrimSpace(fragment)
	if len(fragment) < minPlayerFragmentLen {
		return []people.Suggestion{}, nil
	}

	if s.suggestions == nil {
		out, err := s.peopleRepo.Suggest(ctx, fragment, SuggestionLimit)
		if err != nil {
			return nil, fmt.Errorf("suggest players: %w", err)
		}
		return notNil(out), nil
	}

	key := "players:" + strings.ToLower(fragment)
	value, err := s.suggestions.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		out, err := s.peopleRepo.Suggest(ctx, fragment, SuggestionLimit)
		if err != nil {
			return nil, err
		}
		return notNil(out), nil
	})
	if err != nil {
		return nil, fmt.Errorf("suggest players: %w", err)
	}
	return value.([]people.Suggestion), nil
}

func notNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
