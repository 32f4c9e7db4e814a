package wmfl_client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// ImportTournament asks the backend to import the standings of an external
// tournament. A successful call may still report zero imported teams.
func (c *Client) ImportTournament(ctx context.Context, tournamentID int64) (*models.ImportResult, error) {
	var result models.ImportResult
	req := models.ImportRequest{TournamentID: tournamentID}
	if err := c.SendJSON(ctx, http.MethodPost, c.endpoints.Import, req, &result); err != nil {
		return nil, fmt.Errorf("failed to import tournament %d: %w", tournamentID, err)
	}
	return &result, nil
}

// ListSyncLogs returns the most recent synchronization log entries.
func (c *Client) ListSyncLogs(ctx context.Context) ([]models.SyncLog, error) {
	var resp models.SyncLogsResponse
	if err := c.GetJSON(ctx, c.endpoints.Sync, &resp); err != nil {
		return nil, fmt.Errorf("failed to list sync logs: %w", err)
	}
	if resp.Logs == nil {
		resp.Logs = []models.SyncLog{}
	}
	return resp.Logs, nil
}

// Synchronize triggers a server side recomputation for every tournament.
func (c *Client) Synchronize(ctx context.Context) (*models.SyncResponse, error) {
	var resp models.SyncResponse
	if err := c.SendJSON(ctx, http.MethodPost, c.endpoints.Sync, struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("failed to synchronize: %w", err)
	}
	return &resp, nil
}
