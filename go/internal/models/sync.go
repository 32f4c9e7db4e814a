package models

import (
	"fmt"
	"time"
)

// Sync log statuses written by the synchronizer.
const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
)

// SyncLog is one entry of the synchronization history.
type SyncLog struct {
	ID           int64  `json:"id"`
	TournamentID int64  `json:"tournament_id"`
	SyncTime     string `json:"sync_time"`
	Status       string `json:"status"`
	Message      string `json:"message"`
	TeamsUpdated int    `json:"teams_updated"`
}

var syncTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05.999999",
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
}

// Time parses SyncTime. The server emits RFC 3339, older deployments emit
// Postgres' default text form.
func (l SyncLog) Time() (time.Time, error) {
	for _, layout := range syncTimeLayouts {
		if t, err := time.Parse(layout, l.SyncTime); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised sync_time %q", l.SyncTime)
}

// SyncLogsResponse is the body of GET on the sync endpoint.
type SyncLogsResponse struct {
	Logs []SyncLog `json:"logs"`
}

// SyncRequest is the body of POST on the sync endpoint. A nil TournamentID
// synchronizes every tournament with active teams.
type SyncRequest struct {
	TournamentID *int64 `json:"tournament_id,omitempty"`
}

// SyncResult summarises the synchronization of one tournament.
type SyncResult struct {
	TournamentID     int64  `json:"tournament_id"`
	TeamsCount       int    `json:"teams_count"`
	TeamsUpdated     int    `json:"teams_updated"`
	PointsMismatches int    `json:"points_mismatches"`
	Status           string `json:"status"`
}

// SyncResponse is the body returned by POST on the sync endpoint.
type SyncResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Error       string       `json:"error,omitempty"`
	Result      *SyncResult  `json:"result,omitempty"`
	Results     []SyncResult `json:"results,omitempty"`
	SyncedCount *int         `json:"synced_count,omitempty"`
}

// ImportRequest is the body of the import endpoint.
type ImportRequest struct {
	TournamentID int64 `json:"tournament_id"`
}

// ImportedTeam is a standings row scraped from the tournament site.
type ImportedTeam struct {
	Position     *int   `json:"position,omitempty"`
	TeamName     string `json:"team_name"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

// ImportResult is the body returned by the import endpoint.
type ImportResult struct {
	Success       bool           `json:"success"`
	ImportedCount int            `json:"imported_count"`
	TotalTeams    int            `json:"total_teams,omitempty"`
	TournamentID  int64          `json:"tournament_id,omitempty"`
	Message       string         `json:"message,omitempty"`
	Teams         []ImportedTeam `json:"teams,omitempty"`
}
