package main

import (
	"database/sql"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/clients/wmfl_site_client"
	"github.com/wmfl-league/leagueadmin/go/internal/events"
	"github.com/wmfl-league/leagueadmin/go/internal/importer"
	"github.com/wmfl-league/leagueadmin/go/internal/syncer"
	"github.com/wmfl-league/leagueadmin/go/internal/teams"
)

type Services struct {
	Teams  *teams.Service
	Import *importer.Service
	Sync   *syncer.Service

	SyncApp *syncer.App
}

func setupPublisher(config *Config) events.Publisher {
	if config.Events.NATSURL == "" {
		log.Info().Msg("no NATS URL configured, events disabled")
		return events.NopPublisher{}
	}

	natsCfg := events.DefaultNATSConfig(config.Events.NATSURL)
	natsCfg.SubjectPrefix = config.Events.SubjectPrefix
	publisher, err := events.NewNATSPublisher(natsCfg)
	if err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, events disabled")
		return events.NopPublisher{}
	}
	return publisher
}

func setupServices(database *sql.DB, config *Config, publisher events.Publisher) *Services {
	// Database layer → Repository layer → App layer → Service layer

	// Teams
	teamsRepo := teams.NewRepository(teams.New(database))
	teamsApp := teams.NewApp(teamsRepo)
	teamsService := teams.NewService(teamsApp)

	// Import
	siteClient := wmfl_site_client.NewSiteClient(config.Import.SiteURL)
	importApp := importer.NewApp(siteClient, teamsApp, publisher, config.Import.Season)
	importService := importer.NewService(importApp)

	// Sync
	syncRepo := syncer.NewRepository(database)
	syncApp := syncer.NewApp(syncRepo, publisher)
	syncService := syncer.NewService(syncApp)

	return &Services{
		Teams:   teamsService,
		Import:  importService,
		Sync:    syncService,
		SyncApp: syncApp,
	}
}
