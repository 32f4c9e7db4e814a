package syncer

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/events"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

// LogLimit caps the sync history returned by ListLogs.
const LogLimit = 50

// Response messages.
const (
	MessageSynced        = "Synchronization complete"
	MessageNoTournaments = "No tournaments to synchronize"
)

// TournamentTeam is the part of a team row the synchronizer reads.
type TournamentTeam struct {
	TeamID       int64
	TeamName     string
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
	Points       int
	Position     *int
}

// LogEntry is one row written to the sync history.
type LogEntry struct {
	TournamentID int64
	Status       string
	Message      string
	TeamsUpdated int
	Details      any
}

// TournamentStore reads and writes the teams of one tournament
type TournamentStore interface {
	Teams(ctx context.Context, tournamentID int64) ([]TournamentTeam, error)
	SetPosition(ctx context.Context, tournamentID, teamID int64, position int) error
}

// SyncRepository defines what the app layer needs from the repository
type SyncRepository interface {
	ActiveTournaments(ctx context.Context) ([]int64, error)
	InTx(ctx context.Context, fn func(TournamentStore) error) error
	InsertLog(ctx context.Context, entry LogEntry) error
	ListLogs(ctx context.Context, limit int) ([]models.SyncLog, error)
}

// App recomputes tournament positions from the stored results
type App struct {
	repo      SyncRepository
	publisher events.Publisher

	// one synchronization at a time, whether scheduled or requested
	mu sync.Mutex
}

func NewApp(repo SyncRepository, publisher events.Publisher) *App {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &App{
		repo:      repo,
		publisher: publisher,
	}
}

// ListLogs returns the latest sync log entries, newest first
func (a *App) ListLogs(ctx context.Context) ([]models.SyncLog, error) {
	logs, err := a.repo.ListLogs(ctx, LogLimit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []models.SyncLog{}
	}
	return logs, nil
}

// Sync synchronizes one tournament, or every tournament with active teams
// when tournamentID is nil.
func (a *App) Sync(ctx context.Context, tournamentID *int64) (*models.SyncResponse, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if tournamentID != nil {
		return a.syncSingle(ctx, *tournamentID)
	}
	return a.syncAll(ctx)
}

func (a *App) syncSingle(ctx context.Context, tournamentID int64) (*models.SyncResponse, error) {
	result, err := a.syncTournament(ctx, tournamentID)
	if err != nil {
		a.writeLog(ctx, LogEntry{TournamentID: tournamentID, Status: models.SyncStatusError, Message: err.Error()})
		return nil, err
	}

	a.writeLog(ctx, LogEntry{
		TournamentID: tournamentID,
		Status:       models.SyncStatusSuccess,
		Message:      fmt.Sprintf("Synchronized teams: %d", result.TeamsUpdated),
		TeamsUpdated: result.TeamsUpdated,
		Details:      result,
	})
	a.publish(ctx, result)

	return &models.SyncResponse{
		Success: true,
		Message: MessageSynced,
		Result:  result,
	}, nil
}

func (a *App) syncAll(ctx context.Context) (*models.SyncResponse, error) {
	ids, err := a.repo.ActiveTournaments(ctx)
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		zero := 0
		return &models.SyncResponse{
			Success:     true,
			Message:     MessageNoTournaments,
			SyncedCount: &zero,
		}, nil
	}

	results := make([]models.SyncResult, 0, len(ids))
	for _, id := range ids {
		result, err := a.syncTournament(ctx, id)
		if err != nil {
			log.Error().Err(err).Int64("tournament_id", id).Msg("tournament sync failed")
			a.writeLog(ctx, LogEntry{TournamentID: id, Status: models.SyncStatusError, Message: err.Error()})
			continue
		}
		results = append(results, *result)
		a.writeLog(ctx, LogEntry{
			TournamentID: id,
			Status:       models.SyncStatusSuccess,
			Message:      fmt.Sprintf("Auto-sync: updated %d teams", result.TeamsUpdated),
			TeamsUpdated: result.TeamsUpdated,
			Details:      result,
		})
		a.publish(ctx, result)
	}

	synced := len(results)
	return &models.SyncResponse{
		Success:     true,
		Message:     fmt.Sprintf("Synchronized tournaments: %d", synced),
		Results:     results,
		SyncedCount: &synced,
	}, nil
}

// syncTournament ranks the active teams of a tournament and writes the
// positions that changed. Stored points are compared against 3W+D and
// reported, never rewritten.
func (a *App) syncTournament(ctx context.Context, tournamentID int64) (*models.SyncResult, error) {
	result := &models.SyncResult{TournamentID: tournamentID, Status: models.SyncStatusSuccess}

	err := a.repo.InTx(ctx, func(store TournamentStore) error {
		teams, err := store.Teams(ctx, tournamentID)
		if err != nil {
			return err
		}
		result.TeamsCount = len(teams)

		records := make([]standings.TeamRecord, len(teams))
		for i, t := range teams {
			records[i] = recordOf(i, t)
		}

		for i, rec := range standings.Rank(records) {
			idx, _ := strconv.Atoi(rec.ID)
			team := teams[idx]
			position := i + 1
			if team.Points != 3*team.Wins+team.Draws {
				result.PointsMismatches++
			}
			if team.Position != nil && *team.Position == position {
				continue
			}
			if err := store.SetPosition(ctx, tournamentID, team.TeamID, position); err != nil {
				return err
			}
			result.TeamsUpdated++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sync tournament %d: %w", tournamentID, err)
	}

	log.Info().
		Int64("tournament_id", tournamentID).
		Int("teams", result.TeamsCount).
		Int("updated", result.TeamsUpdated).
		Int("points_mismatches", result.PointsMismatches).
		Msg("tournament synchronized")
	return result, nil
}

// recordOf uses the slice index as record id.
func recordOf(index int, t TournamentTeam) standings.TeamRecord {
	return standings.TeamRecord{
		ID:           strconv.Itoa(index),
		Name:         t.TeamName,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		Points:       t.Points,
	}
}

// writeLog records a sync outcome. A failed write never fails the sync.
func (a *App) writeLog(ctx context.Context, entry LogEntry) {
	if err := a.repo.InsertLog(ctx, entry); err != nil {
		log.Error().Err(err).Int64("tournament_id", entry.TournamentID).Msg("failed to write sync log")
	}
}

func (a *App) publish(ctx context.Context, result *models.SyncResult) {
	if err := a.publisher.Publish(ctx, events.New(events.TypeSyncCompleted, result.TournamentID, result)); err != nil {
		log.Warn().Err(err).Msg("failed to publish sync event")
	}
}
