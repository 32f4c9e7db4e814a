package syncer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sqlc-dev/pqtype"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/sqlutil"
)

// Repository implements sync data access on top of Postgres
type Repository struct {
	db      *sql.DB
	queries *Queries
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:      db,
		queries: New(db),
	}
}

func (r *Repository) ActiveTournaments(ctx context.Context) ([]int64, error) {
	ids, err := r.queries.ListActiveTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}
	return ids, nil
}

// InTx runs fn against a store bound to a single transaction.
func (r *Repository) InTx(ctx context.Context, fn func(TournamentStore) error) error {
	return sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *Queries { return New(tx) }, func(q *Queries) error {
		return fn(txStore{q: q})
	})
}

func (r *Repository) InsertLog(ctx context.Context, entry LogEntry) error {
	details := pqtype.NullRawMessage{}
	if entry.Details != nil {
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("failed to marshal sync details: %w", err)
		}
		details = pqtype.NullRawMessage{RawMessage: raw, Valid: true}
	}

	err := r.queries.InsertSyncLog(ctx, InsertSyncLogParams{
		TournamentID: entry.TournamentID,
		Status:       entry.Status,
		Message:      entry.Message,
		TeamsUpdated: int32(entry.TeamsUpdated),
		Details:      details,
	})
	if err != nil {
		return fmt.Errorf("failed to insert sync log: %w", err)
	}
	return nil
}

func (r *Repository) ListLogs(ctx context.Context, limit int) ([]models.SyncLog, error) {
	rows, err := r.queries.ListSyncLogs(ctx, int32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}

	logs := make([]models.SyncLog, len(rows))
	for i, row := range rows {
		logs[i] = models.SyncLog{
			ID:           row.ID,
			TournamentID: row.TournamentID,
			SyncTime:     row.SyncTime.UTC().Format(time.RFC3339Nano),
			Status:       row.Status,
			Message:      sqlutil.FromSqlString(row.Message, ""),
			TeamsUpdated: int(row.TeamsUpdated),
		}
	}
	return logs, nil
}

type txStore struct {
	q *Queries
}

func (s txStore) Teams(ctx context.Context, tournamentID int64) ([]TournamentTeam, error) {
	rows, err := s.q.ListTournamentTeams(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament teams: %w", err)
	}

	out := make([]TournamentTeam, len(rows))
	for i, row := range rows {
		out[i] = TournamentTeam{
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			Wins:         int(row.Wins),
			Draws:        int(row.Draws),
			Losses:       int(row.Losses),
			GoalsFor:     int(row.GoalsFor),
			GoalsAgainst: int(row.GoalsAgainst),
			Points:       int(row.Points),
			Position:     sqlutil.FromSqlInt32(row.Position),
		}
	}
	return out, nil
}

func (s txStore) SetPosition(ctx context.Context, tournamentID, teamID int64, position int) error {
	if err := s.q.UpdatePosition(ctx, tournamentID, teamID, int32(position)); err != nil {
		return fmt.Errorf("failed to update position of team %d: %w", teamID, err)
	}
	return nil
}
