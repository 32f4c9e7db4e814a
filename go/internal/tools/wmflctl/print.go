package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/wmfl-league/leagueadmin/go/internal/console"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printTeams(w io.Writer, teams []models.WMFLTeam) {
	tw := newTable(w)
	fmt.Fprintln(tw, "TEAM_ID\tNAME\tCITY\tP\tW\tD\tL\tGF\tGA\tPTS\tRATING")
	for _, t := range teams {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\n",
			t.Key(), t.TeamName, deref(t.City), t.MatchesPlayed,
			t.Wins, t.Draws, t.Losses, t.GoalsFor, t.GoalsAgainst, t.Points, t.Rating)
	}
	tw.Flush()
}

func zoneMark(z standings.Zone) string {
	switch z {
	case standings.ZoneQualification:
		return "Q"
	case standings.ZoneRelegation:
		return "R"
	default:
		return ""
	}
}

func printStandings(w io.Writer, rows []standings.Row) {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tTEAM\tP\tW\tD\tL\tGF:GA\tGD\tPTS\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d:%d\t%+d\t%d\t%s\n",
			r.Position, r.Team.Name, r.MatchesPlayed, r.Team.Wins, r.Team.Draws, r.Team.Losses,
			r.Team.GoalsFor, r.Team.GoalsAgainst, r.GoalDifference, r.Team.Points, zoneMark(r.Zone))
	}
	tw.Flush()
}

func printLogs(w io.Writer, logs []models.SyncLog) {
	tw := newTable(w)
	fmt.Fprintln(tw, "TIME\tTOURNAMENT\tSTATUS\tUPDATED\tMESSAGE")
	for _, l := range logs {
		when := l.SyncTime
		if t, err := l.Time(); err == nil {
			when = t.Local().Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\n", when, l.TournamentID, l.Status, l.TeamsUpdated, l.Message)
	}
	tw.Flush()
}

func printNotices(w io.Writer, notices []console.Notice) {
	for _, n := range notices {
		fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Message)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
