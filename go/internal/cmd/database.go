package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/dbconfig"
)

func setupDatabase(ctx context.Context, config *Config) (*sql.DB, error) {
	dbCfg := dbconfig.NewConfigFromEnv()

	database, err := sql.Open("postgres", dbCfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if config.Database.Migrate {
		if err := dbconfig.Migrate(ctx, database); err != nil {
			database.Close()
			return nil, err
		}
		log.Info().Msg("database schema up to date")
	}

	log.Info().Str("database", dbCfg.Describe()).Msg("connected to database")
	return database, nil
}
