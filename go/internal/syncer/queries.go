package syncer

import (
	"context"
	"database/sql"
	"time"

	"github.com/sqlc-dev/pqtype"
)

type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) ListActiveTournaments(ctx context.Context) ([]int64, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT DISTINCT tournament_id
		FROM wmfl_tournament_teams
		WHERE is_active = true
		ORDER BY tournament_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

type TournamentTeamRow struct {
	TeamID       int64
	TeamName     string
	Wins         int32
	Draws        int32
	Losses       int32
	GoalsFor     int32
	GoalsAgainst int32
	Points       int32
	Position     sql.NullInt32
}

// ListTournamentTeams returns active teams in insertion order. Ranking is
// done in Go so ties resolve the same way everywhere.
func (q *Queries) ListTournamentTeams(ctx context.Context, tournamentID int64) ([]TournamentTeamRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT COALESCE(team_id, id), team_name, wins, draws, losses,
		       goals_for, goals_against, points, position
		FROM wmfl_tournament_teams
		WHERE tournament_id = $1 AND is_active = true
		ORDER BY id`, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TournamentTeamRow
	for rows.Next() {
		var t TournamentTeamRow
		if err := rows.Scan(&t.TeamID, &t.TeamName, &t.Wins, &t.Draws, &t.Losses,
			&t.GoalsFor, &t.GoalsAgainst, &t.Points, &t.Position); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	return items, rows.Err()
}

func (q *Queries) UpdatePosition(ctx context.Context, tournamentID, teamID int64, position int32) error {
	_, err := q.db.ExecContext(ctx, `UPDATE wmfl_tournament_teams
		SET position = $1, updated_at = CURRENT_TIMESTAMP
		WHERE COALESCE(team_id, id) = $2 AND tournament_id = $3`, position, teamID, tournamentID)
	return err
}

type InsertSyncLogParams struct {
	TournamentID int64
	Status       string
	Message      string
	TeamsUpdated int32
	Details      pqtype.NullRawMessage
}

func (q *Queries) InsertSyncLog(ctx context.Context, arg InsertSyncLogParams) error {
	_, err := q.db.ExecContext(ctx, `INSERT INTO wmfl_sync_log
		(tournament_id, status, message, teams_updated, details)
		VALUES ($1, $2, $3, $4, $5)`,
		arg.TournamentID, arg.Status, arg.Message, arg.TeamsUpdated, arg.Details)
	return err
}

type SyncLogRow struct {
	ID           int64
	TournamentID int64
	SyncTime     time.Time
	Status       string
	Message      sql.NullString
	TeamsUpdated int32
}

func (q *Queries) ListSyncLogs(ctx context.Context, limit int32) ([]SyncLogRow, error) {
	rows, err := q.db.QueryContext(ctx, `SELECT id, tournament_id, sync_time, status, message, teams_updated
		FROM wmfl_sync_log
		ORDER BY sync_time DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SyncLogRow
	for rows.Next() {
		var l SyncLogRow
		if err := rows.Scan(&l.ID, &l.TournamentID, &l.SyncTime, &l.Status, &l.Message, &l.TeamsUpdated); err != nil {
			return nil, err
		}
		items = append(items, l)
	}
	return items, rows.Err()
}
