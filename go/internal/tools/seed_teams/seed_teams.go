package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/wmfl-league/leagueadmin/go/internal/dbconfig"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

//go:embed assets/wmfl_teams.json
var fixture []byte

// Team mirrors the fixture layout
type Team struct {
	TeamID        int64  `json:"team_id"`
	TeamName      string `json:"team_name"`
	TeamShortName string `json:"team_short_name"`
	City          string `json:"city"`
	Stadium       string `json:"stadium"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsFor      int    `json:"goals_for"`
	GoalsAgainst  int    `json:"goals_against"`
	Form          string `json:"form"`
}

const upsertTeam = `
INSERT INTO wmfl_tournament_teams (
  team_id, team_name, team_short_name, city, stadium,
  matches_played, wins, draws, losses, goals_for, goals_against,
  form, tournament_id, season
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14
)
ON CONFLICT (team_id) DO NOTHING`

func main() {
	tournamentID := flag.Int64("tournament", models.DefaultTournamentID, "tournament id for seeded teams")
	season := flag.String("season", models.DefaultSeason, "season label for seeded teams")
	migrate := flag.Bool("migrate", true, "apply the schema before seeding")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	// 1) Decode the embedded fixture
	var teams []Team
	if err := json.Unmarshal(fixture, &teams); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal JSON: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if *migrate {
		if _, err := pool.Exec(ctx, dbconfig.Schema); err != nil {
			fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
			os.Exit(1)
		}
	}

	// 3) Queue every upsert in one batch and count
	batch := &pgx.Batch{}
	for _, t := range teams {
		batch.Queue(upsertTeam,
			t.TeamID, t.TeamName, t.TeamShortName, t.City, t.Stadium,
			t.Wins+t.Draws+t.Losses, t.Wins, t.Draws, t.Losses, t.GoalsFor, t.GoalsAgainst,
			t.Form, *tournamentID, *season,
		)
	}

	var (
		total    = len(teams)
		inserted int
		skipped  int
		errs     int
	)

	results := pool.SendBatch(ctx, batch)
	for _, t := range teams {
		cmdTag, err := results.Exec()
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %d: %v\n", t.TeamID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}
	if err := results.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "batch close: %v\n", err)
	}

	// 4) Print summary
	fmt.Printf(
		"Teams seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)
}
