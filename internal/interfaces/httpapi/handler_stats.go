package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Evowe/baseball-stats-api/internal/domain/batting"
	"github.com/Evowe/baseball-stats-api/internal/domain/fielding"
	"github.com/Evowe/baseball-stats-api/internal/domain/pitching"
	"github.com/Evowe/baseball-stats-api/internal/usecase"
)

const emptyReportMessage = "no statistics found for this team and year"

type playerDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	BirthYear *int   `json:"birth_year"`
	DeathYear *int   `json:"death_year"`
}

type battingLineDTO struct {
	PlayerID  string `json:"player_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Year      int    `json:"year,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	TeamName  string `json:"team_name,omitempty"`

	Games            int `json:"games"`
	AtBats           int `json:"at_bats"`
	Runs             int `json:"runs"`
	Hits             int `json:"hits"`
	Doubles          int `json:"doubles"`
	Triples          int `json:"triples"`
	HomeRuns         int `json:"home_runs"`
	RBIs             int `json:"rbis"`
	StolenBases      int `json:"stolen_bases"`
	CaughtStealing   int `json:"caught_stealing"`
	Walks            int `json:"walks"`
	IntentionalWalks int `json:"intentional_walks"`
	HitByPitch       int `json:"hit_by_pitch"`
	SacrificeHits    int `json:"sacrifice_hits"`
	SacrificeFlies   int `json:"sacrifice_flies"`
	Strikeouts       int `json:"strikeouts"`
	GroundedIntoDP   int `json:"gidp"`
	PlateAppearances int `json:"plate_appearances"`

	BattingAverage *float64 `json:"batting_avg"`
	OnBasePct      *float64 `json:"obp"`
	SluggingPct    *float64 `json:"slg"`
	IsolatedPower  *float64 `json:"iso"`
	BABIP          *float64 `json:"babip"`

	HallOfFame     bool `json:"is_hall_of_fame"`
	HallOfFameYear *int `json:"hof_year"`
}

type pitchingLineDTO struct {
	PlayerID  string `json:"player_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Year      int    `json:"year,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	TeamName  string `json:"team_name,omitempty"`

	Games            int `json:"games"`
	GamesStarted     int `json:"games_started"`
	CompleteGames    int `json:"complete_games"`
	Shutouts         int `json:"shutouts"`
	Wins             int `json:"wins"`
	Losses           int `json:"losses"`
	Saves            int `json:"saves"`
	OutsPitched      int `json:"outs_pitched"`
	Hits             int `json:"hits"`
	Runs             int `json:"runs"`
	EarnedRuns       int `json:"earned_runs"`
	Walks            int `json:"walks"`
	IntentionalWalks int `json:"intentional_walks"`
	HitByPitch       int `json:"hit_by_pitch"`
	Strikeouts       int `json:"strikeouts"`
	HomeRuns         int `json:"home_runs"`
	WildPitches      int `json:"wild_pitches"`
	Balks            int `json:"balks"`
	BattersFaced     int `json:"batters_faced"`
	GamesFinished    int `json:"games_finished"`
	SacrificeHits    int `json:"sacrifice_hits"`
	SacrificeFlies   int `json:"sacrifice_flies"`
	GroundedIntoDP   int `json:"gidp"`

	ERA            float64  `json:"era"`
	OppBattingAvg  float64  `json:"opp_batting_avg"`
	InningsPitched float64  `json:"innings_pitched"`
	WHIP           *float64 `json:"whip"`

	HallOfFame     bool `json:"is_hall_of_fame"`
	HallOfFameYear *int `json:"hof_year"`
}

type fieldingLineDTO struct {
	PlayerID  string `json:"player_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Year      int    `json:"year,omitempty"`
	TeamID    string `json:"team_id,omitempty"`
	TeamName  string `json:"team_name,omitempty"`

	Position     string `json:"position"`
	Games        int    `json:"games"`
	GamesStarted int    `json:"games_started"`
	InningsOuts  int    `json:"innings_outs"`
	Putouts      int    `json:"putouts"`
	Assists      int    `json:"assists"`
	Errors       int    `json:"errors"`
	DoublePlays  int    `json:"double_plays"`
	PassedBalls  int    `json:"passed_balls"`

	PutoutsPerGame *float64 `json:"putouts_per_game"`
	FieldingPct    float64  `json:"fielding_pct"`

	HallOfFame     bool `json:"is_hall_of_fame"`
	HallOfFameYear *int `json:"hof_year"`
}

type teamSeasonReportDTO struct {
	Team     string            `json:"team"`
	Year     int               `json:"year"`
	Batting  []battingLineDTO  `json:"batting"`
	Pitching []pitchingLineDTO `json:"pitching"`
	Fielding []fieldingLineDTO `json:"fielding"`
	IsEmpty  bool              `json:"is_empty"`
	Message  string            `json:"message,omitempty"`
}

type playerCareerReportDTO struct {
	Player         playerDTO         `json:"player"`
	HallOfFame     bool              `json:"is_hall_of_fame"`
	HallOfFameYear *int              `json:"hof_year"`
	Batting        []battingLineDTO  `json:"batting"`
	Pitching       []pitchingLineDTO `json:"pitching"`
	Fielding       []fieldingLineDTO `json:"fielding"`
}

type suggestionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *Handler) GetTeamSeasonReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSeasonReport")
	defer span.End()

	team := r.URL.Query().Get("team")
	yearRaw := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: year must be an integer", usecase.ErrInvalidInput))
		return
	}

	report, err := h.statsService.TeamSeasonReport(ctx, team, year)
	if err != nil {
		h.logger.ErrorContext(ctx, "team season report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := teamSeasonReportDTO{
		Team:     report.TeamFragment,
		Year:     report.Year,
		Batting:  battingLineDTOs(report.Batting),
		Pitching: pitchingLineDTOs(report.Pitching),
		Fielding: fieldingLineDTOs(report.Fielding),
		IsEmpty:  report.IsEmpty,
	}
	if report.IsEmpty {
		dto.Message = emptyReportMessage
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) GetPlayerCareerReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerCareerReport")
	defer span.End()

	report, err := h.statsService.PlayerCareerReport(ctx, r.PathValue("playerID"))
	if err != nil {
		h.logger.ErrorContext(ctx, "player career report failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerCareerReportDTO{
		Player: playerDTO{
			ID:        report.Player.ID,
			FirstName: report.Player.FirstName,
			LastName:  report.Player.LastName,
			BirthYear: report.Player.BirthYear,
			DeathYear: report.Player.DeathYear,
		},
		HallOfFame:     report.HallOfFame,
		HallOfFameYear: report.HallOfFameYear,
		Batting:        battingLineDTOs(report.Batting),
		Pitching:       pitchingLineDTOs(report.Pitching),
		Fielding:       fieldingLineDTOs(report.Fielding),
	})
}

func (h *Handler) SuggestTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestTeams")
	defer span.End()

	suggestions, err := h.statsService.SuggestTeams(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.ErrorContext(ctx, "suggest teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]suggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionDTO{ID: s.ID, Name: s.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) SuggestPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestPlayers")
	defer span.End()

	suggestions, err := h.statsService.SuggestPlayers(ctx, r.URL.Query().Get("q"))
	if err != nil {
		h.logger.ErrorContext(ctx, "suggest players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]suggestionDTO, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, suggestionDTO{ID: s.ID, Name: s.Name})
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func battingLineDTOs(lines []batting.SeasonLine) []battingLineDTO {
	out := make([]battingLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, battingLineDTO{
			PlayerID:         l.PlayerID,
			FirstName:        l.FirstName,
			LastName:         l.LastName,
			Year:             l.Year,
			TeamID:           l.TeamID,
			TeamName:         l.TeamName,
			Games:            l.Games,
			AtBats:           l.AtBats,
			Runs:             l.Runs,
			Hits:             l.Hits,
			Doubles:          l.Doubles,
			Triples:          l.Triples,
			HomeRuns:         l.HomeRuns,
			RBIs:             l.RBIs,
			StolenBases:      l.StolenBases,
			CaughtStealing:   l.CaughtStealing,
			Walks:            l.Walks,
			IntentionalWalks: l.IntentionalWalks,
			HitByPitch:       l.HitByPitch,
			SacrificeHits:    l.SacrificeHits,
			SacrificeFlies:   l.SacrificeFlies,
			Strikeouts:       l.Strikeouts,
			GroundedIntoDP:   l.GroundedIntoDP,
			PlateAppearances: l.PlateAppearances,
			BattingAverage:   l.BattingAverage,
			OnBasePct:        l.OnBasePct,
			SluggingPct:      l.SluggingPct,
			IsolatedPower:    l.IsolatedPower,
			BABIP:            l.BABIP,
			HallOfFame:       l.HallOfFame,
			HallOfFameYear:   l.HallOfFameYear,
		})
	}
	return out
}

func pitchingLineDTOs(lines []pitching.SeasonLine) []pitchingLineDTO {
	out := make([]pitchingLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, pitchingLineDTO{
			PlayerID:         l.PlayerID,
			FirstName:        l.FirstName,
			LastName:         l.LastName,
			Year:             l.Year,
			TeamID:           l.TeamID,
			TeamName:         l.TeamName,
			Games:            l.Games,
			GamesStarted:     l.GamesStarted,
			CompleteGames:    l.CompleteGames,
			Shutouts:         l.Shutouts,
			Wins:             l.Wins,
			Losses:           l.Losses,
			Saves:            l.Saves,
			OutsPitched:      l.OutsPitched,
			Hits:             l.Hits,
			Runs:             l.Runs,
			EarnedRuns:       l.EarnedRuns,
			Walks:            l.Walks,
			IntentionalWalks: l.IntentionalWalks,
			HitByPitch:       l.HitByPitch,
			Strikeouts:       l.Strikeouts,
			HomeRuns:         l.HomeRuns,
			WildPitches:      l.WildPitches,
			Balks:            l.Balks,
			BattersFaced:     l.BattersFaced,
			GamesFinished:    l.GamesFinished,
			SacrificeHits:    l.SacrificeHits,
			SacrificeFlies:   l.SacrificeFlies,
			GroundedIntoDP:   l.GroundedIntoDP,
			ERA:              l.ERA,
			OppBattingAvg:    l.OppBattingAvg,
			InningsPitched:   l.InningsPitched,
			WHIP:             l.WHIP,
			HallOfFame:       l.HallOfFame,
			HallOfFameYear:   l.HallOfFameYear,
		})
	}
	return out
}

func fieldingLineDTOs(lines []fielding.SeasonLine) []fieldingLineDTO {
	out := make([]fieldingLineDTO, 0, len(lines))
	for _, l := range lines {
		out = append(out, fieldingLineDTO{
			PlayerID:       l.PlayerID,
			FirstName:      l.FirstName,
			LastName:       l.LastName,
			Year:           l.Year,
			TeamID:         l.TeamID,
			TeamName:       l.TeamName,
			Position:       l.Position,
			Games:          l.Games,
			GamesStarted:   l.GamesStarted,
			InningsOuts:    l.InningsOuts,
			Putouts:        l.Putouts,
			Assists:        l.Assists,
			Errors:         l.Errors,
			DoublePlays:    l.DoublePlays,
			PassedBalls:    l.PassedBalls,
			PutoutsPerGame: l.PutoutsPerGame,
			FieldingPct:    l.FieldingPct,
			HallOfFame:     l.HallOfFame,
			HallOfFameYear: l.HallOfFameYear,
		})
	}
	return out
}
