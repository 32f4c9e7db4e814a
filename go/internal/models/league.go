package models

import (
	"time"

	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

// Typed identifiers for the league dataset.
type (
	TeamID         string
	TransferID     string
	MatchID        string
	NewsID         string
	NotificationID string
)

// Team is a league club.
type Team struct {
	ID           TeamID `json:"id"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Founded      int    `json:"founded"`
	Stadium      string `json:"stadium"`
	Coach        string `json:"coach"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	Points       int    `json:"points"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

// Record converts the club into the ranker's input shape.
func (t Team) Record() standings.TeamRecord {
	return standings.TeamRecord{
		ID:           string(t.ID),
		Name:         t.Name,
		Wins:         t.Wins,
		Draws:        t.Draws,
		Losses:       t.Losses,
		GoalsFor:     t.GoalsFor,
		GoalsAgainst: t.GoalsAgainst,
		Points:       t.Points,
	}
}

type TransferStatus string

const (
	TransferPending   TransferStatus = "pending"
	TransferCompleted TransferStatus = "completed"
	TransferCancelled TransferStatus = "cancelled"
)

// Transfer moves a player between two clubs. Names and logos are copied at
// creation time.
type Transfer struct {
	ID           TransferID     `json:"id"`
	PlayerID     PlayerID       `json:"playerId"`
	PlayerName   string         `json:"playerName"`
	PlayerPhoto  string         `json:"playerPhoto"`
	FromTeamID   TeamID         `json:"fromTeamId"`
	FromTeamName string         `json:"fromTeamName"`
	FromTeamLogo string         `json:"fromTeamLogo"`
	ToTeamID     TeamID         `json:"toTeamId"`
	ToTeamName   string         `json:"toTeamName"`
	ToTeamLogo   string         `json:"toTeamLogo"`
	Date         string         `json:"date"`
	Fee          string         `json:"fee"`
	Status       TransferStatus `json:"status"`
}

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchFinished  MatchStatus = "finished"
)

// Match is a static fixture snapshot. Scores are nil until played.
type Match struct {
	ID         MatchID     `json:"id"`
	HomeTeamID TeamID      `json:"homeTeamId"`
	AwayTeamID TeamID      `json:"awayTeamId"`
	Date       string      `json:"date"`
	Time       string      `json:"time"`
	Stadium    string      `json:"stadium"`
	HomeScore  *int        `json:"homeScore,omitempty"`
	AwayScore  *int        `json:"awayScore,omitempty"`
	Status     MatchStatus `json:"status"`
}

type NewsCategory string

const (
	NewsTransfer NewsCategory = "transfer"
	NewsMatch    NewsCategory = "match"
	NewsTeam     NewsCategory = "team"
	NewsPlayer   NewsCategory = "player"
)

// News is a published article.
type News struct {
	ID       NewsID       `json:"id"`
	Title    string       `json:"title"`
	Content  string       `json:"content"`
	Image    string       `json:"image"`
	Date     string       `json:"date"`
	Category NewsCategory `json:"category"`
}

type NotificationType string

const (
	NotificationTransfer     NotificationType = "transfer"
	NotificationRegistration NotificationType = "registration"
	NotificationMatch        NotificationType = "match"
	NotificationNews         NotificationType = "news"
)

// Notification is an entry of the admin notification feed.
type Notification struct {
	ID        NotificationID   `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Read      bool             `json:"read"`
}
