package wmfl_client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

func (c *Client) teamURL(teamID int64) string {
	q := url.Values{}
	q.Set(TeamIDParam, strconv.FormatInt(teamID, 10))
	return c.endpoints.Teams + "?" + q.Encode()
}

// ListTeams returns every active team, already ordered by the server.
func (c *Client) ListTeams(ctx context.Context) ([]models.WMFLTeam, error) {
	var teams []models.WMFLTeam
	if err := c.GetJSON(ctx, c.endpoints.Teams, &teams); err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	if teams == nil {
		teams = []models.WMFLTeam{}
	}
	return teams, nil
}

// GetTeam returns one active team by its team id.
func (c *Client) GetTeam(ctx context.Context, teamID int64) (*models.WMFLTeam, error) {
	var team models.WMFLTeam
	if err := c.GetJSON(ctx, c.teamURL(teamID), &team); err != nil {
		return nil, fmt.Errorf("failed to get team %d: %w", teamID, err)
	}
	return &team, nil
}

// CreateTeam posts a new team. Any team_id in input is dropped.
func (c *Client) CreateTeam(ctx context.Context, input models.TeamInput) error {
	input.TeamID = nil
	if err := c.SendJSON(ctx, http.MethodPost, c.endpoints.Teams, input, nil); err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// UpdateTeam sends the fields of input for the team identified by teamID.
func (c *Client) UpdateTeam(ctx context.Context, teamID int64, input models.TeamInput) error {
	input.TeamID = &teamID
	if err := c.SendJSON(ctx, http.MethodPut, c.endpoints.Teams, input, nil); err != nil {
		return fmt.Errorf("failed to update team %d: %w", teamID, err)
	}
	return nil
}

// DeleteTeam removes the team identified by teamID.
func (c *Client) DeleteTeam(ctx context.Context, teamID int64) error {
	if _, err := c.Delete(ctx, c.teamURL(teamID)); err != nil {
		return fmt.Errorf("failed to delete team %d: %w", teamID, err)
	}
	return nil
}
