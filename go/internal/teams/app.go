package teams

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	ListActive(ctx context.Context) ([]models.WMFLTeam, error)
	Get(ctx context.Context, teamID int64) (*models.WMFLTeam, error)
	Create(ctx context.Context, in models.TeamInput) (*models.WMFLTeam, error)
	Update(ctx context.Context, teamID int64, in models.TeamInput) (*models.WMFLTeam, error)
	SoftDelete(ctx context.Context, teamID int64) (*DeletedTeam, error)
	UpsertImported(ctx context.Context, p ImportedTeamParams) error
}

// App handles tournament team business logic
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// ListActive returns active teams ordered by points, goal difference, goals for
func (a *App) ListActive(ctx context.Context) ([]models.WMFLTeam, error) {
	teams, err := a.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		teams = []models.WMFLTeam{}
	}
	return teams, nil
}

// Get retrieves an active team by team id
func (a *App) Get(ctx context.Context, teamID int64) (*models.WMFLTeam, error) {
	team, err := a.repo.Get(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// Create validates and stores a new team
func (a *App) Create(ctx context.Context, in models.TeamInput) (*models.WMFLTeam, error) {
	if in.TeamName == nil || strings.TrimSpace(*in.TeamName) == "" {
		return nil, fmt.Errorf("%w: missing required field: team_name", ErrValidation)
	}
	if err := validateCounters(in); err != nil {
		return nil, err
	}

	team, err := a.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	log.Info().
		Int64("id", team.ID).
		Str("team_name", team.TeamName).
		Msg("team created")
	return team, nil
}

// Update applies the fields present in the request
func (a *App) Update(ctx context.Context, teamID int64, in models.TeamInput) (*models.WMFLTeam, error) {
	if len(updateColumns(in)) == 0 {
		return nil, ErrNoFields
	}
	if in.TeamName != nil && strings.TrimSpace(*in.TeamName) == "" {
		return nil, fmt.Errorf("%w: team_name cannot be empty", ErrValidation)
	}
	if err := validateCounters(in); err != nil {
		return nil, err
	}

	team, err := a.repo.Update(ctx, teamID, in)
	if err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	log.Info().
		Int64("team_id", teamID).
		Int("fields", len(updateColumns(in))).
		Msg("team updated")
	return team, nil
}

// Delete deactivates a team. The row is kept.
func (a *App) Delete(ctx context.Context, teamID int64) (*DeletedTeam, error) {
	deleted, err := a.repo.SoftDelete(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete team: %w", err)
	}

	log.Info().
		Int64("team_id", deleted.TeamID).
		Str("team_name", deleted.TeamName).
		Msg("team deactivated")
	return deleted, nil
}

// UpsertImported stores a team scraped from the tournament site
func (a *App) UpsertImported(ctx context.Context, p ImportedTeamParams) error {
	if strings.TrimSpace(p.TeamName) == "" {
		return fmt.Errorf("%w: imported team has no name", ErrValidation)
	}
	if p.Season == "" {
		p.Season = models.DefaultSeason
	}
	return a.repo.UpsertImported(ctx, p)
}

func validateCounters(in models.TeamInput) error {
	counters := map[string]*int{
		"matches_played": in.MatchesPlayed,
		"wins":           in.Wins,
		"draws":          in.Draws,
		"losses":         in.Losses,
		"goals_for":      in.GoalsFor,
		"goals_against":  in.GoalsAgainst,
	}
	for name, v := range counters {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s cannot be negative", ErrValidation, name)
		}
	}
	return nil
}
