package league

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

//go:embed assets/league.json
var defaultDataset []byte

// DefaultPhoto is assigned to newly registered players.
const DefaultPhoto = "https://cdn.poehali.dev/projects/778dac1f-adb0-4dcf-8a18-be5777eb102d/files/97c5a67b-f9fa-4f50-bd48-a98809099cf8.jpg"

// Dataset is the serialised form of a league.
type Dataset struct {
	Teams         []models.Team         `json:"teams"`
	Players       []models.Player       `json:"players"`
	Transfers     []models.Transfer     `json:"transfers"`
	Matches       []models.Match        `json:"matches"`
	News          []models.News         `json:"news"`
	Notifications []models.Notification `json:"notifications"`
}

// Catalog is an in-memory league dataset. References between records are
// resolved explicitly and fail with ErrNotFound.
type Catalog struct {
	clock clockwork.Clock

	mu   sync.RWMutex
	data Dataset
	seq  map[string]int
}

// NewCatalog builds a catalog from data.
func NewCatalog(data Dataset, clock clockwork.Clock) *Catalog {
	c := &Catalog{
		clock: clock,
		data:  data,
		seq:   make(map[string]int),
	}
	c.seq["player"] = maxNumericID(len(data.Players), func(i int) string { return string(data.Players[i].ID) })
	c.seq["transfer"] = maxNumericID(len(data.Transfers), func(i int) string { return string(data.Transfers[i].ID) })
	c.seq["notification"] = maxNumericID(len(data.Notifications), func(i int) string { return string(data.Notifications[i].ID) })
	return c
}

// LoadDefault returns a catalog holding the bundled demo league.
func LoadDefault(clock clockwork.Clock) (*Catalog, error) {
	var data Dataset
	if err := json.Unmarshal(defaultDataset, &data); err != nil {
		return nil, fmt.Errorf("failed to parse bundled league: %w", err)
	}
	return NewCatalog(data, clock), nil
}

func maxNumericID(n int, id func(i int) string) int {
	highest := 0
	for i := 0; i < n; i++ {
		if v, err := strconv.Atoi(id(i)); err == nil && v > highest {
			highest = v
		}
	}
	return highest
}

// nextID must be called with mu held.
func (c *Catalog) nextID(kind string) string {
	c.seq[kind]++
	return strconv.Itoa(c.seq[kind])
}

// Team returns the club with the given id.
func (c *Catalog) Team(id models.TeamID) (models.Team, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.team(id)
}

func (c *Catalog) team(id models.TeamID) (models.Team, error) {
	for _, t := range c.data.Teams {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Team{}, fmt.Errorf("team %q: %w", id, ErrNotFound)
}

// Player returns the player with the given id.
func (c *Catalog) Player(id models.PlayerID) (models.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.player(id)
}

func (c *Catalog) player(id models.PlayerID) (models.Player, error) {
	for _, p := range c.data.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Player{}, fmt.Errorf("player %q: %w", id, ErrNotFound)
}

// Teams returns all clubs in dataset order.
func (c *Catalog) Teams() []models.Team {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Team(nil), c.data.Teams...)
}

// Standings returns the ranked league table.
func (c *Catalog) Standings() []standings.Row {
	teams := c.Teams()
	records := make([]standings.TeamRecord, len(teams))
	for i, t := range teams {
		records[i] = t.Record()
	}
	return standings.BuildTable(records)
}

// PlayersByTeam returns the squad of a club.
func (c *Catalog) PlayersByTeam(id models.TeamID) ([]models.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, err := c.team(id); err != nil {
		return nil, err
	}
	var squad []models.Player
	for _, p := range c.data.Players {
		if p.TeamID == id {
			squad = append(squad, p)
		}
	}
	return squad, nil
}

// Transfers returns the transfer list, newest first.
func (c *Catalog) Transfers() []models.Transfer {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Transfer(nil), c.data.Transfers...)
}

// MatchesByStatus returns fixtures with the given status. An empty status
// returns every fixture.
func (c *Catalog) MatchesByStatus(status models.MatchStatus) []models.Match {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []models.Match
	for _, m := range c.data.Matches {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// NewsByCategory returns articles of a category, latest date first. An
// empty category returns every article.
func (c *Catalog) NewsByCategory(category models.NewsCategory) []models.News {
	c.mu.RLock()
	var out []models.News
	for _, n := range c.data.News {
		if category == "" || n.Category == category {
			out = append(out, n)
		}
	}
	c.mu.RUnlock()

	// dates are ISO formatted, string order is chronological
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// RegisterPlayerRequest is the player registration form.
type RegisterPlayerRequest struct {
	Name        string        `json:"name"`
	Position    string        `json:"position"`
	Number      int           `json:"number"`
	Age         int           `json:"age"`
	Nationality string        `json:"nationality"`
	TeamID      models.TeamID `json:"teamId"`
}

// RegisterPlayer adds a player with empty statistics to an existing club
// and raises a registration notification.
func (c *Catalog) RegisterPlayer(req RegisterPlayerRequest) (models.Player, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.Player{}, fmt.Errorf("name is required: %w", ErrValidation)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	team, err := c.team(req.TeamID)
	if err != nil {
		return models.Player{}, fmt.Errorf("failed to register player: %w", err)
	}

	player := models.Player{
		ID:          models.PlayerID(c.nextID("player")),
		Name:        req.Name,
		Position:    req.Position,
		Number:      req.Number,
		Age:         req.Age,
		Nationality: req.Nationality,
		Photo:       DefaultPhoto,
		TeamID:      team.ID,
	}
	c.data.Players = append(c.data.Players, player)

	c.pushNotification(models.NotificationRegistration, "Player registration",
		fmt.Sprintf("%s registered with %s", player.Name, team.Name))

	log.Info().
		Str("player_id", string(player.ID)).
		Str("team_id", string(team.ID)).
		Msg("player registered")

	return player, nil
}

// TransferRequest is the transfer form.
type TransferRequest struct {
	PlayerID models.PlayerID `json:"playerId"`
	ToTeamID models.TeamID   `json:"toTeamId"`
	Fee      string          `json:"fee"`
}

// RequestTransfer records a pending transfer of a player from the current
// club to another one and raises a transfer notification.
func (c *Catalog) RequestTransfer(req TransferRequest) (models.Transfer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	player, err := c.player(req.PlayerID)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("failed to request transfer: %w", err)
	}
	from, err := c.team(player.TeamID)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("failed to resolve current club: %w", err)
	}
	to, err := c.team(req.ToTeamID)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("failed to resolve destination club: %w", err)
	}
	if from.ID == to.ID {
		return models.Transfer{}, fmt.Errorf("player already plays for %s: %w", to.Name, ErrValidation)
	}

	transfer := models.Transfer{
		ID:           models.TransferID(c.nextID("transfer")),
		PlayerID:     player.ID,
		PlayerName:   player.Name,
		PlayerPhoto:  player.Photo,
		FromTeamID:   from.ID,
		FromTeamName: from.Name,
		FromTeamLogo: from.Logo,
		ToTeamID:     to.ID,
		ToTeamName:   to.Name,
		ToTeamLogo:   to.Logo,
		Date:         c.clock.Now().UTC().Format("2006-01-02"),
		Fee:          req.Fee,
		Status:       models.TransferPending,
	}
	c.data.Transfers = append([]models.Transfer{transfer}, c.data.Transfers...)

	c.pushNotification(models.NotificationTransfer, "New transfer",
		fmt.Sprintf("%s moves from %s to %s", player.Name, from.Name, to.Name))

	return transfer, nil
}

// pushNotification must be called with mu held.
func (c *Catalog) pushNotification(kind models.NotificationType, title, message string) {
	n := models.Notification{
		ID:        models.NotificationID(c.nextID("notification")),
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: c.clock.Now(),
	}
	c.data.Notifications = append([]models.Notification{n}, c.data.Notifications...)
}

// Notifications returns the feed, newest first.
func (c *Catalog) Notifications() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Notification(nil), c.data.Notifications...)
}

// UnreadCount returns the number of unread notifications.
func (c *Catalog) UnreadCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	unread := 0
	for _, n := range c.data.Notifications {
		if !n.Read {
			unread++
		}
	}
	return unread
}

// MarkNotificationRead flags one notification as read.
func (c *Catalog) MarkNotificationRead(id models.NotificationID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.data.Notifications {
		if c.data.Notifications[i].ID == id {
			c.data.Notifications[i].Read = true
			return nil
		}
	}
	return fmt.Errorf("notification %q: %w", id, ErrNotFound)
}

// ClearNotifications empties the feed.
func (c *Catalog) ClearNotifications() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data.Notifications = nil
}
