package models

import (
	"strconv"

	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

// Defaults applied to new tournament teams when the request leaves them out.
const (
	DefaultRating       = 1500
	DefaultTournamentID = int64(1056456)
	DefaultSeason       = "2024/2025"
)

// WMFLTeam is a tournament team row as exposed by the teams endpoint.
// GoalDifference and Points are computed by the store from the counters.
type WMFLTeam struct {
	ID             int64   `json:"id"`
	TeamID         *int64  `json:"team_id,omitempty"`
	TeamName       string  `json:"team_name"`
	TeamShortName  *string `json:"team_short_name,omitempty"`
	TeamLogo       *string `json:"team_logo,omitempty"`
	City           *string `json:"city,omitempty"`
	Stadium        *string `json:"stadium,omitempty"`
	MatchesPlayed  int     `json:"matches_played"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	GoalsFor       int     `json:"goals_for"`
	GoalsAgainst   int     `json:"goals_against"`
	GoalDifference int     `json:"goal_difference"`
	Points         int     `json:"points"`
	Rating         int     `json:"rating"`
	Position       *int    `json:"position,omitempty"`
	Form           *string `json:"form,omitempty"`
	Streak         *string `json:"streak,omitempty"`
	HomeWins       int     `json:"home_wins"`
	HomeDraws      int     `json:"home_draws"`
	HomeLosses     int     `json:"home_losses"`
	AwayWins       int     `json:"away_wins"`
	AwayDraws      int     `json:"away_draws"`
	AwayLosses     int     `json:"away_losses"`
	YellowCards    int     `json:"yellow_cards"`
	RedCards       int     `json:"red_cards"`
	TournamentID   int64   `json:"tournament_id,omitempty"`
	Season         *string `json:"season,omitempty"`
	IsActive       bool    `json:"is_active"`
}

// Key returns the identifier used in team_id query parameters, falling back
// to the row id for teams created without an external team id.
func (t WMFLTeam) Key() int64 {
	if t.TeamID != nil {
		return *t.TeamID
	}
	return t.ID
}

// Record converts the row into the ranker's input shape.
func (t WMFLTeam) Record() standings.TeamRecord {
	return standings.TeamRecord{
		ID:           strconv.FormatInt(t.Key(), 10),
		Name:         t.TeamName,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		Points:       t.Points,
	}
}

// WMFLRecords converts a slice of rows for ranking.
func WMFLRecords(teams []WMFLTeam) []standings.TeamRecord {
	records := make([]standings.TeamRecord, len(teams))
	for i, t := range teams {
		records[i] = t.Record()
	}
	return records
}

// TeamInput carries the writable team fields of create and update requests.
// Nil fields are absent from the request body.
type TeamInput struct {
	TeamID        *int64  `json:"team_id,omitempty"`
	TeamName      *string `json:"team_name,omitempty"`
	TeamShortName *string `json:"team_short_name,omitempty"`
	TeamLogo      *string `json:"team_logo,omitempty"`
	City          *string `json:"city,omitempty"`
	Stadium       *string `json:"stadium,omitempty"`
	MatchesPlayed *int    `json:"matches_played,omitempty"`
	Wins          *int    `json:"wins,omitempty"`
	Draws         *int    `json:"draws,omitempty"`
	Losses        *int    `json:"losses,omitempty"`
	GoalsFor      *int    `json:"goals_for,omitempty"`
	GoalsAgainst  *int    `json:"goals_against,omitempty"`
	Rating        *int    `json:"rating,omitempty"`
	Position      *int    `json:"position,omitempty"`
	Form          *string `json:"form,omitempty"`
	Streak        *string `json:"streak,omitempty"`
	HomeWins      *int    `json:"home_wins,omitempty"`
	HomeDraws     *int    `json:"home_draws,omitempty"`
	HomeLosses    *int    `json:"home_losses,omitempty"`
	AwayWins      *int    `json:"away_wins,omitempty"`
	AwayDraws     *int    `json:"away_draws,omitempty"`
	AwayLosses    *int    `json:"away_losses,omitempty"`
	YellowCards   *int    `json:"yellow_cards,omitempty"`
	RedCards      *int    `json:"red_cards,omitempty"`
	TournamentID  *int64  `json:"tournament_id,omitempty"`
	Season        *string `json:"season,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

// TeamForm is the admin edit form: the subset of team fields an operator
// fills in by hand.
type TeamForm struct {
	TeamName     string `json:"team_name"`
	City         string `json:"city"`
	Stadium      string `json:"stadium"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Rating       int    `json:"rating"`
	Form         string `json:"form"`
}

// NewTeamForm returns an empty form with the default rating.
func NewTeamForm() TeamForm {
	return TeamForm{Rating: DefaultRating}
}

// TeamFormFrom fills the form from an existing team.
func TeamFormFrom(t WMFLTeam) TeamForm {
	return TeamForm{
		TeamName:     t.TeamName,
		City:         deref(t.City),
		Stadium:      deref(t.Stadium),
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		Rating:       t.Rating,
		Form:         deref(t.Form),
	}
}

// Input converts the form into a request body. Every form field is sent,
// including zero values.
func (f TeamForm) Input() TeamInput {
	return TeamInput{
		TeamName:     &f.TeamName,
		City:         &f.City,
		Stadium:      &f.Stadium,
		Wins:         &f.Wins,
		Draws:        &f.Draws,
		Losses:       &f.Losses,
		GoalsFor:     &f.GoalsFor,
		GoalsAgainst: &f.GoalsAgainst,
		Rating:       &f.Rating,
		Form:         &f.Form,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
