package console

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

var (
	// ErrInFlight is returned when an action is triggered while the same
	// action is still pending.
	ErrInFlight = errors.New("action already in flight")
	// ErrInvalidTournament is returned for an import without a tournament id.
	ErrInvalidTournament = errors.New("tournament id must be positive")
	// ErrNothingImported is returned when the import call succeeded but
	// reported no imported teams.
	ErrNothingImported = errors.New("nothing imported")
	// ErrSyncRejected is returned when the server answered the sync call
	// with success=false.
	ErrSyncRejected = errors.New("synchronization not performed")
)

// Gateway is what the console needs from the remote team service.
type Gateway interface {
	ListTeams(ctx context.Context) ([]models.WMFLTeam, error)
	CreateTeam(ctx context.Context, input models.TeamInput) error
	UpdateTeam(ctx context.Context, teamID int64, input models.TeamInput) error
	DeleteTeam(ctx context.Context, teamID int64) error
	ImportTournament(ctx context.Context, tournamentID int64) (*models.ImportResult, error)
	ListSyncLogs(ctx context.Context) ([]models.SyncLog, error)
	Synchronize(ctx context.Context) (*models.SyncResponse, error)
}

// Option configures a Console.
type Option func(*Console)

// WithClock sets the clock used to timestamp notices.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Console) {
		c.clock = clock
	}
}

// WithSyncComplete registers a callback run after a successful synchronization.
func WithSyncComplete(fn func(ctx context.Context)) Option {
	return func(c *Console) {
		c.onSyncComplete = fn
	}
}

// Console owns the admin screen state and turns operator actions into
// gateway calls. It holds no authoritative data: the team list is a cache
// replaced wholesale by every refetch.
type Console struct {
	gateway        Gateway
	clock          clockwork.Clock
	onSyncComplete func(ctx context.Context)

	mu    sync.Mutex
	state State
}

// New creates a Console backed by gateway.
func New(gateway Gateway, opts ...Option) *Console {
	c := &Console{
		gateway: gateway,
		clock:   clockwork.NewRealClock(),
		state:   newState(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Console) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

// Teams returns a copy of the cached team list.
func (c *Console) Teams() []models.WMFLTeam {
	return c.State().Teams
}

// Notices returns the current notices, oldest first.
func (c *Console) Notices() []Notice {
	return c.State().Notices
}

// Standings ranks the cached teams for display.
func (c *Console) Standings() []standings.Row {
	return standings.BuildTable(models.WMFLRecords(c.Teams()))
}

// DismissNotice removes a notice.
func (c *Console) DismissNotice(id uuid.UUID) {
	c.dispatch(noticeDismissed{id: id})
}

func (c *Console) dispatch(msgs ...msg) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range msgs {
		m.apply(&c.state)
	}
}

// begin marks action as in flight, failing if it already is.
func (c *Console) begin(action Action) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.InFlight[action] {
		return ErrInFlight
	}
	actionStarted{action: action}.apply(&c.state)
	return nil
}

func (c *Console) end(action Action) {
	c.dispatch(actionFinished{action: action})
}

func (c *Console) notify(level Level, message string) {
	c.dispatch(noticeRaised{notice: Notice{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: c.clock.Now(),
	}})
}

func (c *Console) fail(action Action, message string, err error) {
	log.Error().Err(err).Str("action", string(action)).Msg(message)
	c.notify(LevelError, message)
}
