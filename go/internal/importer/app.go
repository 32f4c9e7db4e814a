package importer

import (
	"bytes"
	"context"
	"fmt"
	"hash/fnv"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/events"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/teams"
)

// NoDataMessage is returned when the standings page holds no team rows.
const NoDataMessage = "Could not find tournament data. The tournament may be closed or the ID is wrong."

// teamIDSpace bounds the external team ids derived from team names.
const teamIDSpace = 1_000_000

// SiteClient fetches tournament standings pages
type SiteClient interface {
	FetchStandings(ctx context.Context, tournamentID int64) ([]byte, error)
}

// TeamStore stores imported teams
type TeamStore interface {
	UpsertImported(ctx context.Context, p teams.ImportedTeamParams) error
}

// App imports tournament standings from the public site
type App struct {
	site      SiteClient
	store     TeamStore
	publisher events.Publisher
	season    string
}

// NewApp creates a new importer App
func NewApp(site SiteClient, store TeamStore, publisher events.Publisher, season string) *App {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if season == "" {
		season = models.DefaultSeason
	}
	return &App{
		site:      site,
		store:     store,
		publisher: publisher,
		season:    season,
	}
}

// ExternalTeamID derives a stable team id from a team name.
func ExternalTeamID(name string) int64 {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int64(h.Sum32() % teamIDSpace)
}

// ImportedRating seeds the rating of an imported team from its points.
func ImportedRating(points int) int {
	return models.DefaultRating + points*10
}

// Import downloads the standings of a tournament and upserts every row.
// Rows that fail to store are logged and left out of the count.
func (a *App) Import(ctx context.Context, tournamentID int64) (*models.ImportResult, error) {
	if tournamentID <= 0 {
		tournamentID = models.DefaultTournamentID
	}

	page, err := a.site.FetchStandings(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}

	rows, err := ParseStandings(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse standings: %w", err)
	}

	if len(rows) == 0 {
		log.Warn().Int64("tournament_id", tournamentID).Msg("no standings rows found")
		return &models.ImportResult{
			Success:       true,
			ImportedCount: 0,
			Message:       NoDataMessage,
		}, nil
	}

	imported := 0
	for _, row := range rows {
		params := teams.ImportedTeamParams{
			TeamID:        ExternalTeamID(row.TeamName),
			TeamName:      row.TeamName,
			MatchesPlayed: row.Games,
			Wins:          row.Wins,
			Draws:         row.Draws,
			Losses:        row.Losses,
			GoalsFor:      row.GoalsFor,
			GoalsAgainst:  row.GoalsAgainst,
			Rating:        ImportedRating(row.Points),
			Position:      row.Position,
			TournamentID:  tournamentID,
			Season:        a.season,
		}
		if err := a.store.UpsertImported(ctx, params); err != nil {
			log.Error().Err(err).Str("team_name", row.TeamName).Msg("failed to import team")
			continue
		}
		imported++
	}

	result := &models.ImportResult{
		Success:       true,
		ImportedCount: imported,
		TotalTeams:    len(rows),
		TournamentID:  tournamentID,
		Message:       fmt.Sprintf("Imported teams: %d", imported),
		Teams:         rows,
	}

	log.Info().
		Int64("tournament_id", tournamentID).
		Int("imported", imported).
		Int("total", len(rows)).
		Msg("tournament imported")

	if err := a.publisher.Publish(ctx, events.New(events.TypeImportCompleted, tournamentID, result)); err != nil {
		log.Warn().Err(err).Msg("failed to publish import event")
	}

	return result, nil
}
