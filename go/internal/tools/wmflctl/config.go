package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/wmfl-league/leagueadmin/go/clients/wmfl_client"
	"gopkg.in/yaml.v3"
)

// Config selects the backend the CLI talks to. An empty BaseURL with no
// endpoints targets the hosted backend.
type Config struct {
	BaseURL   string                `yaml:"base_url"`
	Endpoints wmfl_client.Endpoints `yaml:"endpoints"`
}

func loadConfig(path string) (*Config, error) {
	var config Config

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		var file struct {
			Client Config `yaml:"client"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		config = file.Client
	}

	if v := os.Getenv("WMFL_API_URL"); v != "" {
		config.BaseURL = v
	}
	// A base URL alone means the bundled server.
	if config.BaseURL != "" && config.Endpoints == (wmfl_client.Endpoints{}) {
		config.Endpoints = wmfl_client.ServerEndpoints()
	}
	return &config, nil
}
