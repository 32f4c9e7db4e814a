// Command wmflctl is the operator CLI for the WMFL team service and the
// bundled league dataset.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/clients/wmfl_client"
	"github.com/wmfl-league/leagueadmin/go/internal/console"
)

const usage = `usage: wmflctl [-config file] <command> [flags]

commands:
  teams                  list active teams
  table                  show the ranked standings of the active teams
  create  -name ...      add a team
  update  -team_id N ... edit a team
  delete  -team_id N     remove a team
  import  [-tournament N] import a tournament from the public site
  sync                   run a synchronization and show the history
  logs                   show the synchronization history
  league  <view>         browse the bundled league (teams, table, players, transfers, matches, news)
`

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wmflctl", flag.ContinueOnError)
	configPath := fs.String("config", "config.yaml", "path to the YAML config file")
	fs.Usage = func() { fmt.Fprint(fs.Output(), usage) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errors.New("missing command")
	}
	name, rest := fs.Arg(0), fs.Args()[1:]

	if name == "league" {
		return runLeague(rest, out)
	}

	config, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	client := wmfl_client.NewWMFLClient(config.BaseURL, config.Endpoints)
	c := console.New(client)
	cmd := &command{console: c, out: out}

	switch name {
	case "teams":
		return cmd.teams(ctx)
	case "table":
		return cmd.table(ctx)
	case "create":
		return cmd.create(ctx, rest)
	case "update":
		return cmd.update(ctx, rest)
	case "delete":
		return cmd.delete(ctx, rest)
	case "import":
		return cmd.importTournament(ctx, rest)
	case "sync":
		return cmd.sync(ctx)
	case "logs":
		return cmd.logs(ctx)
	default:
		fs.Usage()
		return fmt.Errorf("unknown command %q", name)
	}
}
