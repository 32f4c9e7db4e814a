package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/clients/wmfl_site_client"
	"github.com/wmfl-league/leagueadmin/go/internal/events"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Migrate bool `yaml:"migrate"`
	} `yaml:"database"`
	Import struct {
		SiteURL string `yaml:"site_url"`
		Season  string `yaml:"season"`
	} `yaml:"import"`
	Sync struct {
		AutoSyncInterval time.Duration `yaml:"auto_sync_interval"`
	} `yaml:"sync"`
	Events struct {
		NATSURL       string `yaml:"nats_url"`
		SubjectPrefix string `yaml:"subject_prefix"`
	} `yaml:"events"`
}

func defaultConfig() *Config {
	var c Config
	c.Server.Port = 8080
	c.Database.Migrate = true
	c.Import.SiteURL = wmfl_site_client.DefaultBaseURL
	c.Import.Season = models.DefaultSeason
	c.Events.SubjectPrefix = events.DefaultSubjectPrefix
	return &c
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

// loadConfig reads the YAML file at path over the defaults and applies
// environment overrides. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("config file not found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	config.Server.Port = getEnvAsInt("PORT", config.Server.Port)
	config.Import.SiteURL = getEnv("WMFL_SITE_URL", config.Import.SiteURL)
	config.Sync.AutoSyncInterval = getEnvAsDuration("AUTO_SYNC_INTERVAL", config.Sync.AutoSyncInterval)
	config.Events.NATSURL = getEnv("NATS_URL", config.Events.NATSURL)

	return config, nil
}
