package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/wmfl-league/leagueadmin/go/internal/console"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

type command struct {
	console *console.Console
	out     io.Writer
}

// finish prints the notices raised by the action and passes err through.
func (c *command) finish(err error) error {
	printNotices(c.out, c.console.Notices())
	return err
}

func (c *command) teams(ctx context.Context) error {
	if err := c.console.Load(ctx); err != nil {
		return c.finish(err)
	}
	printTeams(c.out, c.console.Teams())
	return nil
}

func (c *command) table(ctx context.Context) error {
	if err := c.console.Load(ctx); err != nil {
		return c.finish(err)
	}
	printStandings(c.out, c.console.Standings())
	return nil
}

func formFlags(fs *flag.FlagSet, form *models.TeamForm) {
	fs.StringVar(&form.TeamName, "name", form.TeamName, "team name")
	fs.StringVar(&form.City, "city", form.City, "city")
	fs.StringVar(&form.Stadium, "stadium", form.Stadium, "stadium")
	fs.IntVar(&form.Wins, "wins", form.Wins, "wins")
	fs.IntVar(&form.Draws, "draws", form.Draws, "draws")
	fs.IntVar(&form.Losses, "losses", form.Losses, "losses")
	fs.IntVar(&form.GoalsFor, "goals_for", form.GoalsFor, "goals scored")
	fs.IntVar(&form.GoalsAgainst, "goals_against", form.GoalsAgainst, "goals conceded")
	fs.IntVar(&form.Rating, "rating", form.Rating, "rating")
	fs.StringVar(&form.Form, "form", form.Form, "recent form, e.g. WWDLW")
}

func (c *command) create(ctx context.Context, args []string) error {
	form := models.NewTeamForm()
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	formFlags(fs, &form)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if form.TeamName == "" {
		return fmt.Errorf("-name is required")
	}

	c.console.OpenCreateForm()
	return c.finish(c.console.SubmitForm(ctx, form))
}

// teamFlags declares -team_id next to the form flags, defaulting the form
// flags to form.
func teamFlags(name string, form *models.TeamForm) (*flag.FlagSet, *int64) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	teamID := fs.Int64("team_id", 0, "team id")
	formFlags(fs, form)
	return fs, teamID
}

func (c *command) update(ctx context.Context, args []string) error {
	probe := models.NewTeamForm()
	fs, teamID := teamFlags("update", &probe)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *teamID <= 0 {
		return fmt.Errorf("-team_id is required")
	}
	if err := c.console.Load(ctx); err != nil {
		return c.finish(err)
	}

	var team *models.WMFLTeam
	for _, t := range c.console.Teams() {
		if t.Key() == *teamID {
			team = &t
			break
		}
	}
	if team == nil {
		return fmt.Errorf("team %d not found", *teamID)
	}

	// Parse again with the current values as defaults so only the given
	// flags change.
	form := models.TeamFormFrom(*team)
	fs, _ = teamFlags("update", &form)
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.console.OpenEditForm(*team)
	return c.finish(c.console.SubmitForm(ctx, form))
}

func (c *command) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	teamID := fs.Int64("team_id", 0, "team id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *teamID <= 0 {
		return fmt.Errorf("-team_id is required")
	}
	return c.finish(c.console.Delete(ctx, *teamID))
}

func (c *command) importTournament(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	tournamentID := fs.Int64("tournament", models.DefaultTournamentID, "tournament id on the public site")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c.console.OpenImportDialog()
	err := c.console.Import(ctx, *tournamentID)
	if err == nil {
		printTeams(c.out, c.console.Teams())
	}
	return c.finish(err)
}

func (c *command) sync(ctx context.Context) error {
	err := c.console.Synchronize(ctx)
	if err == nil {
		printLogs(c.out, c.console.State().SyncLogs)
	}
	return c.finish(err)
}

func (c *command) logs(ctx context.Context) error {
	if err := c.console.LoadSyncLogs(ctx); err != nil {
		return c.finish(err)
	}
	printLogs(c.out, c.console.State().SyncLogs)
	return nil
}
