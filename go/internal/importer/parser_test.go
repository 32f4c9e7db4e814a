package importer

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

func intp(v int) *int { return &v }

func TestParseStandings(t *testing.T) {
	f, err := os.Open("testdata/standings.html")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := ParseStandings(f)
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}

	want := []models.ImportedTeam{
		{Position: intp(1), TeamName: "Зенит", Games: 30, Wins: 18, Draws: 6, Losses: 6, GoalsFor: 55, GoalsAgainst: 28, Points: 60},
		// the empty cell is skipped, so the counters stay aligned
		{Position: intp(2), TeamName: "Спартак Москва", Games: 30, Wins: 15, Draws: 8, Losses: 7, GoalsFor: 48, GoalsAgainst: 32, Points: 53},
		// non-numeric position, no statistics
		{TeamName: "Ротор & Ко"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestParseStandingsNoRows(t *testing.T) {
	got, err := ParseStandings(strings.NewReader("<html><body><p>Турнир закрыт</p></body></html>"))
	if err != nil {
		t.Fatalf("ParseStandings: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("rows = %+v", got)
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in     string
		gf, ga int
		ok     bool
	}{
		{"55:28", 55, 28, true},
		{"0:0", 0, 0, true},
		{"5:", 0, 0, false},
		{"a:1", 0, 0, false},
		{"1:2:3", 0, 0, false},
	}
	for _, tt := range tests {
		gf, ga, ok := parseScore(tt.in)
		if gf != tt.gf || ga != tt.ga || ok != tt.ok {
			t.Errorf("parseScore(%q) = %d, %d, %v", tt.in, gf, ga, ok)
		}
	}
}
