package league

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
	"github.com/wmfl-league/leagueadmin/go/internal/standings"
)

var fixedNow = time.Date(2025, 3, 20, 15, 30, 0, 0, time.UTC)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := LoadDefault(clockwork.NewFakeClockAt(fixedNow))
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	return c
}

func TestLoadDefault(t *testing.T) {
	c := newTestCatalog(t)

	if got := len(c.Teams()); got != 4 {
		t.Errorf("teams = %d, want 4", got)
	}
	if got := c.UnreadCount(); got != 2 {
		t.Errorf("unread = %d, want 2", got)
	}
}

func TestLookups(t *testing.T) {
	c := newTestCatalog(t)

	team, err := c.Team("3")
	if err != nil {
		t.Fatalf("Team: %v", err)
	}
	if team.Points != 60 {
		t.Errorf("team 3 points = %d, want 60", team.Points)
	}

	if _, err := c.Team("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Team(99) err = %v, want ErrNotFound", err)
	}
	if _, err := c.Player("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Player(99) err = %v, want ErrNotFound", err)
	}
	if _, err := c.PlayersByTeam("99"); !errors.Is(err, ErrNotFound) {
		t.Errorf("PlayersByTeam(99) err = %v, want ErrNotFound", err)
	}

	squad, err := c.PlayersByTeam("1")
	if err != nil {
		t.Fatalf("PlayersByTeam: %v", err)
	}
	if len(squad) != 1 || squad[0].TeamID != "1" {
		t.Errorf("squad = %+v", squad)
	}
}

func TestStandings(t *testing.T) {
	rows := newTestCatalog(t).Standings()

	var names []string
	var zones []standings.Zone
	for _, r := range rows {
		names = append(names, r.Team.Name)
		zones = append(zones, r.Zone)
	}
	wantNames := []string{"Зенит", "Спартак", "ЦСКА", "Динамо"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	wantZones := []standings.Zone{
		standings.ZoneQualification,
		standings.ZoneQualification,
		standings.ZoneQualification,
		standings.ZoneRelegation,
	}
	if diff := cmp.Diff(wantZones, zones); diff != "" {
		t.Errorf("zones mismatch (-want +got):\n%s", diff)
	}
}

func TestFilters(t *testing.T) {
	c := newTestCatalog(t)

	if got := c.MatchesByStatus(models.MatchFinished); len(got) != 1 || got[0].HomeScore == nil {
		t.Errorf("finished matches = %+v", got)
	}
	if got := c.MatchesByStatus(""); len(got) != 2 {
		t.Errorf("all matches = %d, want 2", len(got))
	}

	all := c.NewsByCategory("")
	var dates []string
	for _, n := range all {
		dates = append(dates, n.Date)
	}
	if diff := cmp.Diff([]string{"2025-03-10", "2025-02-20", "2025-01-15"}, dates); diff != "" {
		t.Errorf("news order mismatch (-want +got):\n%s", diff)
	}
	if got := c.NewsByCategory(models.NewsTransfer); len(got) != 1 {
		t.Errorf("transfer news = %d, want 1", len(got))
	}
}

func TestRegisterPlayer(t *testing.T) {
	c := newTestCatalog(t)

	p, err := c.RegisterPlayer(RegisterPlayerRequest{
		Name:        "Иван Петров",
		Position:    "Защитник",
		Number:      5,
		Age:         22,
		Nationality: "Россия",
		TeamID:      "2",
	})
	if err != nil {
		t.Fatalf("RegisterPlayer: %v", err)
	}
	if p.ID != "5" {
		t.Errorf("id = %q, want 5", p.ID)
	}
	if p.Goals != 0 || p.Photo != DefaultPhoto {
		t.Errorf("player = %+v", p)
	}

	feed := c.Notifications()
	if feed[0].Type != models.NotificationRegistration {
		t.Errorf("first notification type = %q", feed[0].Type)
	}
	if feed[0].Message != "Иван Петров registered with ЦСКА" {
		t.Errorf("message = %q", feed[0].Message)
	}
	if !feed[0].Timestamp.Equal(fixedNow) {
		t.Errorf("timestamp = %v", feed[0].Timestamp)
	}
	if got := c.UnreadCount(); got != 3 {
		t.Errorf("unread = %d, want 3", got)
	}
}

func TestRegisterPlayerInvalid(t *testing.T) {
	c := newTestCatalog(t)

	if _, err := c.RegisterPlayer(RegisterPlayerRequest{Name: "  ", TeamID: "1"}); !errors.Is(err, ErrValidation) {
		t.Errorf("blank name err = %v, want ErrValidation", err)
	}
	if _, err := c.RegisterPlayer(RegisterPlayerRequest{Name: "X", TeamID: "42"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown team err = %v, want ErrNotFound", err)
	}
	if got := len(c.Notifications()); got != 2 {
		t.Errorf("notifications = %d, want 2", got)
	}
}

func TestRequestTransfer(t *testing.T) {
	c := newTestCatalog(t)

	tr, err := c.RequestTransfer(TransferRequest{PlayerID: "2", ToTeamID: "4", Fee: "€3M"})
	if err != nil {
		t.Fatalf("RequestTransfer: %v", err)
	}
	want := models.Transfer{
		ID:           "3",
		PlayerID:     "2",
		PlayerName:   "Федор Чалов",
		FromTeamID:   "2",
		FromTeamName: "ЦСКА",
		ToTeamID:     "4",
		ToTeamName:   "Динамо",
		Date:         "2025-03-20",
		Fee:          "€3M",
		Status:       models.TransferPending,
	}
	ignore := func(t models.Transfer) models.Transfer {
		t.PlayerPhoto, t.FromTeamLogo, t.ToTeamLogo = "", "", ""
		return t
	}
	if diff := cmp.Diff(want, ignore(tr)); diff != "" {
		t.Errorf("transfer mismatch (-want +got):\n%s", diff)
	}

	if got := c.Transfers()[0].ID; got != "3" {
		t.Errorf("newest transfer = %q, want 3", got)
	}
	if got := c.Notifications()[0].Message; got != "Федор Чалов moves from ЦСКА to Динамо" {
		t.Errorf("message = %q", got)
	}
}

func TestRequestTransferInvalid(t *testing.T) {
	tests := []struct {
		name string
		req  TransferRequest
		want error
	}{
		{"unknown player", TransferRequest{PlayerID: "77", ToTeamID: "1"}, ErrNotFound},
		{"unknown club", TransferRequest{PlayerID: "1", ToTeamID: "77"}, ErrNotFound},
		{"same club", TransferRequest{PlayerID: "1", ToTeamID: "1"}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCatalog(t)
			if _, err := c.RequestTransfer(tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if got := len(c.Transfers()); got != 2 {
				t.Errorf("transfers = %d, want 2", got)
			}
		})
	}
}

func TestNotifications(t *testing.T) {
	c := newTestCatalog(t)

	if err := c.MarkNotificationRead("1"); err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if got := c.UnreadCount(); got != 1 {
		t.Errorf("unread = %d, want 1", got)
	}
	if err := c.MarkNotificationRead("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	c.ClearNotifications()
	if got := c.UnreadCount(); got != 0 {
		t.Errorf("unread after clear = %d", got)
	}

	// ids keep increasing after a clear
	if _, err := c.RegisterPlayer(RegisterPlayerRequest{Name: "Новичок", TeamID: "1"}); err != nil {
		t.Fatalf("RegisterPlayer: %v", err)
	}
	if got := c.Notifications()[0].ID; got != "3" {
		t.Errorf("notification id = %q, want 3", got)
	}
}
