package wmfl_site_client

import (
	"context"
	"fmt"
	"time"

	"github.com/wmfl-league/leagueadmin/go/clients"
)

const (
	// DefaultBaseURL is the public tournament site.
	DefaultBaseURL = "https://wmfl.ru"
	// UserAgent is sent with every request; the site rejects bare clients.
	UserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultTimeout = 15 * time.Second
)

// Client downloads public tournament pages.
type Client struct {
	*clients.BaseClient
}

func NewSiteClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := &Client{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader("User-Agent", UserAgent)
	client.SetHeader("Accept", "text/html")
	client.SetTimeout(defaultTimeout)

	return client
}

// StandingsPath returns the standings page of a tournament.
func StandingsPath(tournamentID int64) string {
	return fmt.Sprintf("/tournament/%d/standings", tournamentID)
}

// FetchStandings returns the raw standings page HTML.
func (c *Client) FetchStandings(ctx context.Context, tournamentID int64) ([]byte, error) {
	body, err := c.Get(ctx, StandingsPath(tournamentID))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch WMFL page: %w", err)
	}
	return body, nil
}
