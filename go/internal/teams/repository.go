package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	ListActiveTeams(ctx context.Context) ([]TeamRow, error)
	GetActiveTeam(ctx context.Context, teamID int64) (TeamRow, error)
	InsertTeam(ctx context.Context, arg InsertTeamParams) (TeamRow, error)
	UpdateTeam(ctx context.Context, teamID int64, sets []assignment) (TeamRow, error)
	SoftDeleteTeam(ctx context.Context, teamID int64) (DeletedTeam, error)
	UpsertImportedTeam(ctx context.Context, arg ImportedTeamParams, position sql.NullInt32) error
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// ListActive returns active teams in table order
func (r *Repository) ListActive(ctx context.Context) ([]models.WMFLTeam, error) {
	rows, err := r.queries.ListActiveTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]models.WMFLTeam, len(rows))
	for i, row := range rows {
		teams[i] = r.rowToModel(row)
	}
	return teams, nil
}

// Get returns an active team by team id
func (r *Repository) Get(ctx context.Context, teamID int64) (*models.WMFLTeam, error) {
	row, err := r.queries.GetActiveTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, mapError(err))
	}
	team := r.rowToModel(row)
	return &team, nil
}

// Create inserts a team, filling absent fields with the store defaults
func (r *Repository) Create(ctx context.Context, in models.TeamInput) (*models.WMFLTeam, error) {
	row, err := r.queries.InsertTeam(ctx, r.inputToInsertParams(in))
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", mapError(err))
	}
	team := r.rowToModel(row)
	return &team, nil
}

// Update writes the fields present in the request
func (r *Repository) Update(ctx context.Context, teamID int64, in models.TeamInput) (*models.WMFLTeam, error) {
	sets := updateColumns(in)
	if len(sets) == 0 {
		return nil, ErrNoFields
	}

	row, err := r.queries.UpdateTeam(ctx, teamID, sets)
	if err != nil {
		return nil, fmt.Errorf("failed to update team %d: %w", teamID, mapError(err))
	}
	team := r.rowToModel(row)
	return &team, nil
}

// SoftDelete marks a team inactive
func (r *Repository) SoftDelete(ctx context.Context, teamID int64) (*DeletedTeam, error) {
	d, err := r.queries.SoftDeleteTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete team %d: %w", teamID, mapError(err))
	}
	return &d, nil
}

// UpsertImported inserts or refreshes a team scraped from the tournament site
func (r *Repository) UpsertImported(ctx context.Context, p ImportedTeamParams) error {
	if err := r.queries.UpsertImportedTeam(ctx, p, sqlutil.ToSqlInt32(p.Position)); err != nil {
		return fmt.Errorf("failed to upsert team %q: %w", p.TeamName, mapError(err))
	}
	return nil
}

// mapError translates driver errors into package sentinels.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Name() {
		case "unique_violation":
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Detail)
		case "not_null_violation", "check_violation", "invalid_text_representation":
			return fmt.Errorf("%w: %s", ErrValidation, pqErr.Message)
		}
	}
	return err
}

// inputToInsertParams converts a create request to insert params
func (r *Repository) inputToInsertParams(in models.TeamInput) InsertTeamParams {
	return InsertTeamParams{
		TeamID:        sqlutil.ToSqlInt64(in.TeamID),
		TeamName:      strOr(in.TeamName, ""),
		TeamShortName: sqlutil.ToSqlString(in.TeamShortName),
		TeamLogo:      sqlutil.ToSqlString(in.TeamLogo),
		City:          sqlutil.ToSqlString(in.City),
		Stadium:       sqlutil.ToSqlString(in.Stadium),
		MatchesPlayed: intOr(in.MatchesPlayed, 0),
		Wins:          intOr(in.Wins, 0),
		Draws:         intOr(in.Draws, 0),
		Losses:        intOr(in.Losses, 0),
		GoalsFor:      intOr(in.GoalsFor, 0),
		GoalsAgainst:  intOr(in.GoalsAgainst, 0),
		Rating:        intOr(in.Rating, models.DefaultRating),
		Position:      sqlutil.ToSqlInt32(in.Position),
		Form:          sqlutil.ToSqlString(in.Form),
		Streak:        sqlutil.ToSqlString(in.Streak),
		HomeWins:      intOr(in.HomeWins, 0),
		HomeDraws:     intOr(in.HomeDraws, 0),
		HomeLosses:    intOr(in.HomeLosses, 0),
		AwayWins:      intOr(in.AwayWins, 0),
		AwayDraws:     intOr(in.AwayDraws, 0),
		AwayLosses:    intOr(in.AwayLosses, 0),
		YellowCards:   intOr(in.YellowCards, 0),
		RedCards:      intOr(in.RedCards, 0),
		TournamentID:  int64Or(in.TournamentID, models.DefaultTournamentID),
		Season:        strOr(in.Season, models.DefaultSeason),
		IsActive:      in.IsActive == nil || *in.IsActive,
	}
}

// rowToModel converts a database row to the API model
func (r *Repository) rowToModel(row TeamRow) models.WMFLTeam {
	return models.WMFLTeam{
		ID:             row.ID,
		TeamID:         sqlutil.FromSqlInt64(row.TeamID),
		TeamName:       row.TeamName,
		TeamShortName:  sqlutil.FromSqlStringPtr(row.TeamShortName),
		TeamLogo:       sqlutil.FromSqlStringPtr(row.TeamLogo),
		City:           sqlutil.FromSqlStringPtr(row.City),
		Stadium:        sqlutil.FromSqlStringPtr(row.Stadium),
		MatchesPlayed:  int(row.MatchesPlayed),
		Wins:           int(row.Wins),
		Draws:          int(row.Draws),
		Losses:         int(row.Losses),
		GoalsFor:       int(row.GoalsFor),
		GoalsAgainst:   int(row.GoalsAgainst),
		GoalDifference: int(row.GoalDifference),
		Points:         int(row.Points),
		Rating:         int(row.Rating),
		Position:       sqlutil.FromSqlInt32(row.Position),
		Form:           sqlutil.FromSqlStringPtr(row.Form),
		Streak:         sqlutil.FromSqlStringPtr(row.Streak),
		HomeWins:       int(row.HomeWins),
		HomeDraws:      int(row.HomeDraws),
		HomeLosses:     int(row.HomeLosses),
		AwayWins:       int(row.AwayWins),
		AwayDraws:      int(row.AwayDraws),
		AwayLosses:     int(row.AwayLosses),
		YellowCards:    int(row.YellowCards),
		RedCards:       int(row.RedCards),
		TournamentID:   row.TournamentID,
		Season:         sqlutil.FromSqlStringPtr(row.Season),
		IsActive:       row.IsActive,
	}
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func int64Or(v *int64, fallback int64) int64 {
	if v == nil {
		return fallback
	}
	return *v
}

func strOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
