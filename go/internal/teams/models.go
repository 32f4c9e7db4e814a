package teams

import (
	"errors"

	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

var (
	// ErrNotFound is returned when no team matches the requested team id.
	ErrNotFound = errors.New("team not found")
	// ErrValidation wraps request validation failures.
	ErrValidation = errors.New("validation failed")
	// ErrNoFields is returned by updates that carry no writable field.
	ErrNoFields = errors.New("no fields to update")
	// ErrConflict is returned when a team id is already taken.
	ErrConflict = errors.New("team already exists")
)

// DeletedTeam is the body of a successful delete.
type DeletedTeam struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
}

// ImportedTeamParams is one scraped standings row ready to be stored.
type ImportedTeamParams struct {
	TeamID        int64
	TeamName      string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	Rating        int
	Position      *int
	TournamentID  int64
	Season        string
}

type assignment struct {
	Column string
	Value  any
}

// updateColumns lists the writable columns present in an update request.
// team_id and tournament_id are identity and never updated.
func updateColumns(in models.TeamInput) []assignment {
	var out []assignment
	str := func(col string, v *string) {
		if v != nil {
			out = append(out, assignment{col, *v})
		}
	}
	num := func(col string, v *int) {
		if v != nil {
			out = append(out, assignment{col, *v})
		}
	}

	str("team_name", in.TeamName)
	str("team_short_name", in.TeamShortName)
	str("team_logo", in.TeamLogo)
	str("city", in.City)
	str("stadium", in.Stadium)
	num("matches_played", in.MatchesPlayed)
	num("wins", in.Wins)
	num("draws", in.Draws)
	num("losses", in.Losses)
	num("goals_for", in.GoalsFor)
	num("goals_against", in.GoalsAgainst)
	num("rating", in.Rating)
	num("position", in.Position)
	str("form", in.Form)
	str("streak", in.Streak)
	num("home_wins", in.HomeWins)
	num("home_draws", in.HomeDraws)
	num("home_losses", in.HomeLosses)
	num("away_wins", in.AwayWins)
	num("away_draws", in.AwayDraws)
	num("away_losses", in.AwayLosses)
	num("yellow_cards", in.YellowCards)
	num("red_cards", in.RedCards)
	str("season", in.Season)
	if in.IsActive != nil {
		out = append(out, assignment{"is_active", *in.IsActive})
	}
	return out
}
