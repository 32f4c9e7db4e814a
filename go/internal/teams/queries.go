package teams

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// Queries runs the team statements against a database or transaction.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

// teamKey matches rows by their external team id. New rows always carry
// one (the insert trigger copies the row id); the fallback covers rows
// the migration could not backfill.
const teamKey = "COALESCE(team_id, id)"

const teamColumns = `id, team_id, team_name, team_short_name, team_logo, city, stadium,
	matches_played, wins, draws, losses, goals_for, goals_against, goal_difference, points,
	rating, position, form, streak, home_wins, home_draws, home_losses,
	away_wins, away_draws, away_losses, yellow_cards, red_cards,
	tournament_id, season, is_active`

type TeamRow struct {
	ID             int64
	TeamID         sql.NullInt64
	TeamName       string
	TeamShortName  sql.NullString
	TeamLogo       sql.NullString
	City           sql.NullString
	Stadium        sql.NullString
	MatchesPlayed  int32
	Wins           int32
	Draws          int32
	Losses         int32
	GoalsFor       int32
	GoalsAgainst   int32
	GoalDifference int32
	Points         int32
	Rating         int32
	Position       sql.NullInt32
	Form           sql.NullString
	Streak         sql.NullString
	HomeWins       int32
	HomeDraws      int32
	HomeLosses     int32
	AwayWins       int32
	AwayDraws      int32
	AwayLosses     int32
	YellowCards    int32
	RedCards       int32
	TournamentID   int64
	Season         sql.NullString
	IsActive       bool
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTeam(s rowScanner) (TeamRow, error) {
	var t TeamRow
	err := s.Scan(
		&t.ID, &t.TeamID, &t.TeamName, &t.TeamShortName, &t.TeamLogo, &t.City, &t.Stadium,
		&t.MatchesPlayed, &t.Wins, &t.Draws, &t.Losses, &t.GoalsFor, &t.GoalsAgainst,
		&t.GoalDifference, &t.Points,
		&t.Rating, &t.Position, &t.Form, &t.Streak, &t.HomeWins, &t.HomeDraws, &t.HomeLosses,
		&t.AwayWins, &t.AwayDraws, &t.AwayLosses, &t.YellowCards, &t.RedCards,
		&t.TournamentID, &t.Season, &t.IsActive,
	)
	return t, err
}

func (q *Queries) ListActiveTeams(ctx context.Context) ([]TeamRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT `+teamColumns+`
		FROM wmfl_tournament_teams
		WHERE is_active = true
		ORDER BY points DESC, goal_difference DESC, goals_for DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TeamRow
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (q *Queries) GetActiveTeam(ctx context.Context, teamID int64) (TeamRow, error) {
	row := q.db.QueryRowContext(ctx, `SELECT `+teamColumns+`
		FROM wmfl_tournament_teams
		WHERE `+teamKey+` = $1 AND is_active = true`, teamID)
	return scanTeam(row)
}

type InsertTeamParams struct {
	TeamID        sql.NullInt64
	TeamName      string
	TeamShortName sql.NullString
	TeamLogo      sql.NullString
	City          sql.NullString
	Stadium       sql.NullString
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsFor      int
	GoalsAgainst  int
	Rating        int
	Position      sql.NullInt32
	Form          sql.NullString
	Streak        sql.NullString
	HomeWins      int
	HomeDraws     int
	HomeLosses    int
	AwayWins      int
	AwayDraws     int
	AwayLosses    int
	YellowCards   int
	RedCards      int
	TournamentID  int64
	Season        string
	IsActive      bool
}

func (q *Queries) InsertTeam(ctx context.Context, arg InsertTeamParams) (TeamRow, error) {
	row := q.db.QueryRowContext(ctx, `INSERT INTO wmfl_tournament_teams
		(team_id, team_name, team_short_name, team_logo, city, stadium,
		 matches_played, wins, draws, losses, goals_for, goals_against,
		 rating, position, form, streak, home_wins, home_draws, home_losses,
		 away_wins, away_draws, away_losses, yellow_cards, red_cards,
		 tournament_id, season, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27)
		RETURNING `+teamColumns,
		arg.TeamID, arg.TeamName, arg.TeamShortName, arg.TeamLogo, arg.City, arg.Stadium,
		arg.MatchesPlayed, arg.Wins, arg.Draws, arg.Losses, arg.GoalsFor, arg.GoalsAgainst,
		arg.Rating, arg.Position, arg.Form, arg.Streak, arg.HomeWins, arg.HomeDraws, arg.HomeLosses,
		arg.AwayWins, arg.AwayDraws, arg.AwayLosses, arg.YellowCards, arg.RedCards,
		arg.TournamentID, arg.Season, arg.IsActive,
	)
	return scanTeam(row)
}

// buildUpdate renders the UPDATE statement for a set of assignments. Column
// names come from updateColumns, never from the request.
func buildUpdate(teamID int64, sets []assignment) (string, []any) {
	clauses := make([]string, 0, len(sets)+1)
	args := make([]any, 0, len(sets)+1)
	for i, s := range sets {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", s.Column, i+1))
		args = append(args, s.Value)
	}
	clauses = append(clauses, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, teamID)

	query := fmt.Sprintf(`UPDATE wmfl_tournament_teams
		SET %s
		WHERE %s = $%d
		RETURNING %s`, strings.Join(clauses, ", "), teamKey, len(args), teamColumns)
	return query, args
}

func (q *Queries) UpdateTeam(ctx context.Context, teamID int64, sets []assignment) (TeamRow, error) {
	query, args := buildUpdate(teamID, sets)
	return scanTeam(q.db.QueryRowContext(ctx, query, args...))
}

func (q *Queries) SoftDeleteTeam(ctx context.Context, teamID int64) (DeletedTeam, error) {
	var d DeletedTeam
	err := q.db.QueryRowContext(ctx, `UPDATE wmfl_tournament_teams
		SET is_active = false, updated_at = CURRENT_TIMESTAMP
		WHERE `+teamKey+` = $1
		RETURNING `+teamKey+`, team_name`, teamID).Scan(&d.TeamID, &d.TeamName)
	return d, err
}

func (q *Queries) UpsertImportedTeam(ctx context.Context, arg ImportedTeamParams, position sql.NullInt32) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO wmfl_tournament_teams
		(team_id, team_name, matches_played, wins, draws, losses,
		 goals_for, goals_against, rating, position, tournament_id, season, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, true)
		ON CONFLICT (team_id) DO UPDATE SET
			team_name = EXCLUDED.team_name,
			matches_played = EXCLUDED.matches_played,
			wins = EXCLUDED.wins,
			draws = EXCLUDED.draws,
			losses = EXCLUDED.losses,
			goals_for = EXCLUDED.goals_for,
			goals_against = EXCLUDED.goals_against,
			rating = EXCLUDED.rating,
			position = EXCLUDED.position,
			updated_at = CURRENT_TIMESTAMP`,
		arg.TeamID, arg.TeamName, arg.MatchesPlayed, arg.Wins, arg.Draws, arg.Losses,
		arg.GoalsFor, arg.GoalsAgainst, arg.Rating, position, arg.TournamentID, arg.Season,
	)
	return err
}
