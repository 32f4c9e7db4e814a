package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/clients"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

const (
	msgLoadFailed     = "Failed to load teams"
	msgTeamAdded      = "Team added"
	msgTeamUpdated    = "Team updated"
	msgSaveFailed     = "Failed to save team"
	msgTeamDeleted    = "Team deleted"
	msgDeleteFailed   = "Failed to delete team"
	msgNothingImport  = "No teams were imported"
	msgImportFailed   = "Import failed. Check the tournament ID."
	msgLogsFailed     = "Failed to load sync history"
	msgSyncDone       = "Synchronization complete"
	msgSyncNotRun     = "Synchronization was not performed"
	msgUnknownFailure = "unknown error"
)

// Load fetches the team list, as done when the screen is first shown.
// On failure the previous cache stays visible.
func (c *Console) Load(ctx context.Context) error {
	if err := c.begin(ActionLoad); err != nil {
		return err
	}
	defer c.end(ActionLoad)

	return c.refetchTeams(ctx)
}

// refetchTeams replaces the cache with the server's list. Concurrent
// refetches are not ordered: whichever resolves last wins.
func (c *Console) refetchTeams(ctx context.Context) error {
	teams, err := c.gateway.ListTeams(ctx)
	if err != nil {
		c.fail(ActionLoad, msgLoadFailed, err)
		return err
	}
	c.dispatch(teamsLoaded{teams: teams})
	return nil
}

// OpenCreateForm opens an empty team form.
func (c *Console) OpenCreateForm() {
	c.dispatch(formOpened{values: models.NewTeamForm()})
}

// OpenEditForm opens the form pre-filled with team.
func (c *Console) OpenEditForm(team models.WMFLTeam) {
	c.dispatch(formOpened{editing: &team, values: models.TeamFormFrom(team)})
}

// CloseForm discards the form.
func (c *Console) CloseForm() {
	c.dispatch(formClosed{})
}

// SubmitForm creates a team, or updates the team being edited. On success
// the form closes and the list is refetched; on failure the form stays open.
func (c *Console) SubmitForm(ctx context.Context, form models.TeamForm) error {
	if err := c.begin(ActionSave); err != nil {
		return err
	}
	defer c.end(ActionSave)

	editing := c.State().Form.Editing

	var err error
	success := msgTeamAdded
	if editing != nil {
		success = msgTeamUpdated
		err = c.gateway.UpdateTeam(ctx, editing.Key(), form.Input())
	} else {
		err = c.gateway.CreateTeam(ctx, form.Input())
	}
	if err != nil {
		c.dispatch(formOpened{editing: editing, values: form})
		c.fail(ActionSave, msgSaveFailed, err)
		return err
	}

	c.notify(LevelSuccess, success)
	c.dispatch(formClosed{})
	_ = c.refetchTeams(ctx)
	return nil
}

// Delete removes a team and refetches the list.
func (c *Console) Delete(ctx context.Context, teamID int64) error {
	if err := c.begin(ActionDelete); err != nil {
		return err
	}
	defer c.end(ActionDelete)

	if err := c.gateway.DeleteTeam(ctx, teamID); err != nil {
		c.fail(ActionDelete, msgDeleteFailed, err)
		return err
	}

	c.notify(LevelSuccess, msgTeamDeleted)
	_ = c.refetchTeams(ctx)
	return nil
}

// OpenImportDialog shows the import dialog.
func (c *Console) OpenImportDialog() {
	c.dispatch(importOpened{})
}

// CloseImportDialog hides the import dialog.
func (c *Console) CloseImportDialog() {
	c.dispatch(importClosed{})
}

// Import asks the server to import a tournament. Only a positive imported
// count counts as success; success=true with zero teams is a warning.
func (c *Console) Import(ctx context.Context, tournamentID int64) error {
	if tournamentID <= 0 {
		return ErrInvalidTournament
	}
	if err := c.begin(ActionImport); err != nil {
		return err
	}
	defer c.end(ActionImport)

	c.dispatch(tournamentChosen{tournamentID: tournamentID})

	result, err := c.gateway.ImportTournament(ctx, tournamentID)
	if err != nil {
		c.fail(ActionImport, msgImportFailed, err)
		return err
	}

	if !result.Success || result.ImportedCount <= 0 {
		message := result.Message
		if message == "" {
			message = msgNothingImport
		}
		log.Warn().Int64("tournament_id", tournamentID).Str("message", message).Msg("import returned no teams")
		c.notify(LevelWarning, message)
		return ErrNothingImported
	}

	c.notify(LevelSuccess, fmt.Sprintf("Imported teams: %d", result.ImportedCount))
	c.dispatch(importClosed{})
	_ = c.refetchTeams(ctx)
	return nil
}

// LoadSyncLogs fetches the synchronization history.
func (c *Console) LoadSyncLogs(ctx context.Context) error {
	if err := c.begin(ActionLoadLogs); err != nil {
		return err
	}
	defer c.end(ActionLoadLogs)

	return c.refetchLogs(ctx)
}

func (c *Console) refetchLogs(ctx context.Context) error {
	logs, err := c.gateway.ListSyncLogs(ctx)
	if err != nil {
		c.fail(ActionLoadLogs, msgLogsFailed, err)
		return err
	}
	c.dispatch(logsLoaded{logs: logs})
	return nil
}

// Synchronize triggers a server side synchronization. On success the log
// list is refetched and the sync-complete callback runs.
func (c *Console) Synchronize(ctx context.Context) error {
	if err := c.begin(ActionSync); err != nil {
		return err
	}
	defer c.end(ActionSync)

	resp, err := c.gateway.Synchronize(ctx)
	if err != nil {
		c.fail(ActionSync, syncFailureMessage(err), err)
		return err
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = msgSyncNotRun
		}
		c.notify(LevelWarning, message)
		return ErrSyncRejected
	}

	message := resp.Message
	if message == "" {
		message = msgSyncDone
	}
	c.notify(LevelSuccess, message)
	_ = c.refetchLogs(ctx)
	if c.onSyncComplete != nil {
		c.onSyncComplete(ctx)
	}
	return nil
}

// syncFailureMessage prefers the status code and server message of an HTTP
// failure over the generic transport text.
func syncFailureMessage(err error) string {
	var apiErr *clients.APIError
	if errors.As(err, &apiErr) {
		message := apiErr.Message
		if message == "" {
			message = msgUnknownFailure
		}
		return fmt.Sprintf("Error %d: %s", apiErr.StatusCode, message)
	}
	return fmt.Sprintf("Synchronization failed: %v", err)
}
