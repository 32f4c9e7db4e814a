package wmfl_client

import (
	"github.com/wmfl-league/leagueadmin/go/clients"
)

// Client talks to the WMFL teams, import and sync endpoints. It keeps no
// state besides its configuration.
type Client struct {
	*clients.BaseClient
	endpoints Endpoints
}

// NewWMFLClient creates a client. baseURL may be empty when all endpoints
// are absolute URLs.
func NewWMFLClient(baseURL string, endpoints Endpoints) *Client {
	client := &Client{
		BaseClient: clients.NewBaseClient(baseURL),
		endpoints:  endpoints.withDefaults(),
	}

	client.SetHeader("Accept", "application/json")

	return client
}

// Endpoints returns the resolved endpoint configuration.
func (c *Client) Endpoints() Endpoints {
	return c.endpoints
}
