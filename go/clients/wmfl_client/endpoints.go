package wmfl_client

const (
	// Default function URLs of the hosted WMFL backend.
	DefaultTeamsURL  = "https://functions.poehali.dev/96772adf-c6d7-4f02-ad46-dabfba5927f6"
	DefaultImportURL = "https://functions.poehali.dev/2d831230-a55e-458d-8be8-b879bb2d1090"
	DefaultSyncURL   = "https://functions.poehali.dev/9ac10abe-a2aa-49ea-9f85-c0d89d2bb5a7"

	// Paths served by the bundled API server.
	TeamsPath  = "/wmfl-teams"
	ImportPath = "/wmfl-import"
	SyncPath   = "/wmfl-sync"

	TeamIDParam = "team_id"
)

// Endpoints holds the three backend URLs. Each may be absolute or relative
// to the client's base URL.
type Endpoints struct {
	Teams  string `yaml:"teams"`
	Import string `yaml:"import"`
	Sync   string `yaml:"sync"`
}

// DefaultEndpoints returns the hosted backend URLs.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Teams:  DefaultTeamsURL,
		Import: DefaultImportURL,
		Sync:   DefaultSyncURL,
	}
}

// ServerEndpoints returns the paths of the bundled API server, to be used
// with a base URL such as http://localhost:8080.
func ServerEndpoints() Endpoints {
	return Endpoints{
		Teams:  TeamsPath,
		Import: ImportPath,
		Sync:   SyncPath,
	}
}

// withDefaults fills empty endpoints from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Teams == "" {
		e.Teams = d.Teams
	}
	if e.Import == "" {
		e.Import = d.Import
	}
	if e.Sync == "" {
		e.Sync = d.Sync
	}
	return e
}
