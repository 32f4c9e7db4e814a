package standings

import (
	"sort"
	"strconv"
)

// TeamRecord is one row of a league table as supplied by a data source.
// Points are stored independently of the win/draw/loss counters and are
// used as-is; they are never recomputed from 3*Wins+Draws here.
type TeamRecord struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Points       int    `json:"points"`
}

// GoalDifference returns goals scored minus goals conceded.
func (t TeamRecord) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// MatchesPlayed returns the number of matches implied by the result counters.
func (t TeamRecord) MatchesPlayed() int {
	return t.Wins + t.Draws + t.Losses
}

// Less reports whether a ranks strictly above b: points first, then goal
// difference, then goals scored. Records equal on all three are not ordered.
func Less(a, b TeamRecord) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if gdA, gdB := a.GoalDifference(), b.GoalDifference(); gdA != gdB {
		return gdA > gdB
	}
	return a.GoalsFor > b.GoalsFor
}

// Rank returns a new slice holding the teams in table order. The input slice
// is left untouched. Exact ties keep their input order.
func Rank(teams []TeamRecord) []TeamRecord {
	ranked := make([]TeamRecord, len(teams))
	copy(ranked, teams)

	sort.SliceStable(ranked, func(i, j int) bool {
		return Less(ranked[i], ranked[j])
	})

	return ranked
}

// Row is a ranked team with its presentation columns.
type Row struct {
	Position       int        `json:"position"`
	Team           TeamRecord `json:"team"`
	Zone           Zone       `json:"zone"`
	GoalDifference int        `json:"goal_difference"`
	MatchesPlayed  int        `json:"matches_played"`
}

// BuildTable ranks the teams and annotates every row with its 1-based
// position, zone and derived columns.
func BuildTable(teams []TeamRecord) []Row {
	ranked := Rank(teams)
	rows := make([]Row, len(ranked))
	for i, team := range ranked {
		rows[i] = Row{
			Position:       i + 1,
			Team:           team,
			Zone:           ClassifyZone(i, len(ranked)),
			GoalDifference: team.GoalDifference(),
			MatchesPlayed:  team.MatchesPlayed(),
		}
	}
	return rows
}

// FormatGoalDifference renders a goal difference the way the table shows it:
// positive values carry a leading plus sign.
func FormatGoalDifference(gd int) string {
	if gd > 0 {
		return "+" + strconv.Itoa(gd)
	}
	return strconv.Itoa(gd)
}
