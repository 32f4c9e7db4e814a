package teams

import (
	"context"
	"database/sql"
	"errors"
	"sort"

	"github.com/lib/pq"
)

// fakeQuerier is an in-memory stand-in for the Postgres table. Points and
// goal difference are derived on write like the generated columns.
type fakeQuerier struct {
	rows    []TeamRow
	nextID  int64
	upserts []ImportedTeamParams
	err     error
}

func newFakeQuerier(rows ...TeamRow) *fakeQuerier {
	f := &fakeQuerier{nextID: 1}
	for _, r := range rows {
		f.add(r)
	}
	return f
}

func (f *fakeQuerier) add(r TeamRow) TeamRow {
	r.ID = f.nextID
	f.nextID++
	derive(&r)
	f.rows = append(f.rows, r)
	return r
}

func derive(r *TeamRow) {
	r.Points = r.Wins*3 + r.Draws
	r.GoalDifference = r.GoalsFor - r.GoalsAgainst
}

func key(r TeamRow) int64 {
	if r.TeamID.Valid {
		return r.TeamID.Int64
	}
	return r.ID
}

func (f *fakeQuerier) find(teamID int64) int {
	for i, r := range f.rows {
		if key(r) == teamID {
			return i
		}
	}
	return -1
}

func (f *fakeQuerier) ListActiveTeams(ctx context.Context) ([]TeamRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []TeamRow
	for _, r := range f.rows {
		if r.IsActive {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		return a.GoalsFor > b.GoalsFor
	})
	return out, nil
}

func (f *fakeQuerier) GetActiveTeam(ctx context.Context, teamID int64) (TeamRow, error) {
	if i := f.find(teamID); i >= 0 && f.rows[i].IsActive {
		return f.rows[i], nil
	}
	return TeamRow{}, sql.ErrNoRows
}

func (f *fakeQuerier) InsertTeam(ctx context.Context, arg InsertTeamParams) (TeamRow, error) {
	// the insert trigger stores the row id as team_id when none is given
	if !arg.TeamID.Valid {
		arg.TeamID = sql.NullInt64{Int64: f.nextID, Valid: true}
	}
	if f.find(arg.TeamID.Int64) >= 0 {
		return TeamRow{}, &pq.Error{Code: "23505", Detail: "Key (team_id) already exists."}
	}
	return f.add(TeamRow{
		TeamID:        arg.TeamID,
		TeamName:      arg.TeamName,
		City:          arg.City,
		Stadium:       arg.Stadium,
		MatchesPlayed: int32(arg.MatchesPlayed),
		Wins:          int32(arg.Wins),
		Draws:         int32(arg.Draws),
		Losses:        int32(arg.Losses),
		GoalsFor:      int32(arg.GoalsFor),
		GoalsAgainst:  int32(arg.GoalsAgainst),
		Rating:        int32(arg.Rating),
		Position:      arg.Position,
		Form:          arg.Form,
		TournamentID:  arg.TournamentID,
		Season:        sql.NullString{String: arg.Season, Valid: true},
		IsActive:      arg.IsActive,
	}), nil
}

func (f *fakeQuerier) UpdateTeam(ctx context.Context, teamID int64, sets []assignment) (TeamRow, error) {
	i := f.find(teamID)
	if i < 0 {
		return TeamRow{}, sql.ErrNoRows
	}
	r := &f.rows[i]
	for _, s := range sets {
		switch s.Column {
		case "team_name":
			r.TeamName = s.Value.(string)
		case "city":
			r.City = sql.NullString{String: s.Value.(string), Valid: true}
		case "wins":
			r.Wins = int32(s.Value.(int))
		case "draws":
			r.Draws = int32(s.Value.(int))
		case "losses":
			r.Losses = int32(s.Value.(int))
		case "goals_for":
			r.GoalsFor = int32(s.Value.(int))
		case "goals_against":
			r.GoalsAgainst = int32(s.Value.(int))
		case "rating":
			r.Rating = int32(s.Value.(int))
		case "is_active":
			r.IsActive = s.Value.(bool)
		}
	}
	derive(r)
	return *r, nil
}

func (f *fakeQuerier) SoftDeleteTeam(ctx context.Context, teamID int64) (DeletedTeam, error) {
	i := f.find(teamID)
	if i < 0 {
		return DeletedTeam{}, sql.ErrNoRows
	}
	f.rows[i].IsActive = false
	return DeletedTeam{TeamID: key(f.rows[i]), TeamName: f.rows[i].TeamName}, nil
}

func (f *fakeQuerier) UpsertImportedTeam(ctx context.Context, arg ImportedTeamParams, position sql.NullInt32) error {
	f.upserts = append(f.upserts, arg)
	return nil
}

func seedRows() []TeamRow {
	return []TeamRow{
		{TeamID: sql.NullInt64{Int64: 101, Valid: true}, TeamName: "Спартак", Wins: 15, Draws: 8, Losses: 7, GoalsFor: 48, GoalsAgainst: 32, Rating: 1500, TournamentID: 1056456, IsActive: true},
		{TeamID: sql.NullInt64{Int64: 102, Valid: true}, TeamName: "ЦСКА", Wins: 14, Draws: 9, Losses: 7, GoalsFor: 45, GoalsAgainst: 30, Rating: 1500, TournamentID: 1056456, IsActive: true},
		{TeamID: sql.NullInt64{Int64: 103, Valid: true}, TeamName: "Зенит", Wins: 18, Draws: 6, Losses: 6, GoalsFor: 55, GoalsAgainst: 28, Rating: 1500, TournamentID: 1056456, IsActive: true},
		{TeamID: sql.NullInt64{Int64: 104, Valid: true}, TeamName: "Архив", Wins: 1, IsActive: false, TournamentID: 1056456},
	}
}

var errBoom = errors.New("boom")
