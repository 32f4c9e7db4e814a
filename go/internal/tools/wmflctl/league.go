package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/wmfl-league/leagueadmin/go/internal/league"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// runLeague serves the bundled dataset. Register and transfer act on an
// in-memory copy that lives for this invocation only.
func runLeague(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New("league: missing view")
	}
	catalog, err := league.LoadDefault(clockwork.NewRealClock())
	if err != nil {
		return err
	}

	view, rest := args[0], args[1:]
	fs := flag.NewFlagSet("league "+view, flag.ContinueOnError)

	switch view {
	case "teams":
		tw := newTable(out)
		fmt.Fprintln(tw, "ID\tNAME\tSTADIUM\tCOACH\tFOUNDED")
		for _, t := range catalog.Teams() {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", t.ID, t.Name, t.Stadium, t.Coach, t.Founded)
		}
		return tw.Flush()

	case "table":
		printStandings(out, catalog.Standings())
		return nil

	case "players":
		team := fs.String("team", "", "team id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		players, err := catalog.PlayersByTeam(models.TeamID(*team))
		if err != nil {
			return err
		}
		printPlayers(out, players)
		return nil

	case "transfers":
		printTransfers(out, catalog.Transfers())
		return nil

	case "matches":
		status := fs.String("status", "", "scheduled, live or finished")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		tw := newTable(out)
		fmt.Fprintln(tw, "DATE\tTIME\tHOME\tSCORE\tAWAY\tSTATUS")
		for _, m := range catalog.MatchesByStatus(models.MatchStatus(*status)) {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				m.Date, m.Time, teamName(catalog, m.HomeTeamID), score(m), teamName(catalog, m.AwayTeamID), m.Status)
		}
		return tw.Flush()

	case "news":
		category := fs.String("category", "", "transfer, match, team or player")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		for _, n := range catalog.NewsByCategory(models.NewsCategory(*category)) {
			fmt.Fprintf(out, "%s [%s] %s\n", n.Date, n.Category, n.Title)
		}
		return nil

	case "register":
		var req league.RegisterPlayerRequest
		team := fs.String("team", "", "team id")
		fs.StringVar(&req.Name, "name", "", "player name")
		fs.StringVar(&req.Position, "position", "", "position")
		fs.IntVar(&req.Number, "number", 0, "shirt number")
		fs.IntVar(&req.Age, "age", 0, "age")
		fs.StringVar(&req.Nationality, "nationality", "", "nationality")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		req.TeamID = models.TeamID(*team)
		player, err := catalog.RegisterPlayer(req)
		if err != nil {
			return err
		}
		printPlayers(out, []models.Player{player})
		printNotifications(out, catalog)
		return nil

	case "transfer":
		var req league.TransferRequest
		player := fs.String("player", "", "player id")
		to := fs.String("to", "", "destination team id")
		fs.StringVar(&req.Fee, "fee", "", "transfer fee")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		req.PlayerID = models.PlayerID(*player)
		req.ToTeamID = models.TeamID(*to)
		if _, err := catalog.RequestTransfer(req); err != nil {
			return err
		}
		printTransfers(out, catalog.Transfers())
		printNotifications(out, catalog)
		return nil

	case "notifications":
		printNotifications(out, catalog)
		return nil

	default:
		return fmt.Errorf("league: unknown view %q", view)
	}
}

func printPlayers(w io.Writer, players []models.Player) {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\t#\tNAME\tPOS\tAGE\tGOALS\tASSISTS")
	for _, p := range players {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%d\t%d\n", p.ID, p.Number, p.Name, p.Position, p.Age, p.Goals, p.Assists)
	}
	tw.Flush()
}

func printTransfers(w io.Writer, transfers []models.Transfer) {
	tw := newTable(w)
	fmt.Fprintln(tw, "DATE\tPLAYER\tFROM\tTO\tFEE\tSTATUS")
	for _, t := range transfers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", t.Date, t.PlayerName, t.FromTeamName, t.ToTeamName, t.Fee, t.Status)
	}
	tw.Flush()
}

func printNotifications(w io.Writer, catalog *league.Catalog) {
	fmt.Fprintf(w, "notifications (%d unread)\n", catalog.UnreadCount())
	for _, n := range catalog.Notifications() {
		mark := " "
		if !n.Read {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %s: %s\n", mark, n.Title, n.Message)
	}
}

func teamName(catalog *league.Catalog, id models.TeamID) string {
	if t, err := catalog.Team(id); err == nil {
		return t.Name
	}
	return string(id)
}

func score(m models.Match) string {
	if m.HomeScore == nil || m.AwayScore == nil {
		return "-:-"
	}
	return fmt.Sprintf("%d:%d", *m.HomeScore, *m.AwayScore)
}
