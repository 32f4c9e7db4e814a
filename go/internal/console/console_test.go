package console

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonboulle/clockwork"
	"github.com/wmfl-league/leagueadmin/go/clients"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

type fakeGateway struct {
	mu sync.Mutex

	teams     []models.WMFLTeam
	listErr   error
	listGate  chan []models.WMFLTeam
	listCalls int

	createErr error
	updateErr error
	deleteErr error
	created   []models.TeamInput
	updated   map[int64]models.TeamInput
	deleted   []int64

	importResult *models.ImportResult
	importErr    error

	logs     []models.SyncLog
	logsErr  error
	syncResp *models.SyncResponse
	syncErr  error
	syncGate chan struct{}
}

func (f *fakeGateway) ListTeams(ctx context.Context) ([]models.WMFLTeam, error) {
	f.mu.Lock()
	f.listCalls++
	gate, teams, err := f.listGate, f.teams, f.listErr
	f.mu.Unlock()

	if gate != nil {
		select {
		case teams = <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return teams, err
}

func (f *fakeGateway) CreateTeam(ctx context.Context, input models.TeamInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, input)
	return f.createErr
}

func (f *fakeGateway) UpdateTeam(ctx context.Context, teamID int64, input models.TeamInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updated == nil {
		f.updated = make(map[int64]models.TeamInput)
	}
	f.updated[teamID] = input
	return f.updateErr
}

func (f *fakeGateway) DeleteTeam(ctx context.Context, teamID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, teamID)
	return f.deleteErr
}

func (f *fakeGateway) ImportTournament(ctx context.Context, tournamentID int64) (*models.ImportResult, error) {
	return f.importResult, f.importErr
}

func (f *fakeGateway) ListSyncLogs(ctx context.Context) ([]models.SyncLog, error) {
	return f.logs, f.logsErr
}

func (f *fakeGateway) Synchronize(ctx context.Context) (*models.SyncResponse, error) {
	if f.syncGate != nil {
		<-f.syncGate
	}
	return f.syncResp, f.syncErr
}

func team(id int64, name string, points int) models.WMFLTeam {
	return models.WMFLTeam{ID: id, TeamID: &id, TeamName: name, Points: points, IsActive: true}
}

func lastNotice(t *testing.T, c *Console) Notice {
	t.Helper()
	notices := c.Notices()
	if len(notices) == 0 {
		t.Fatal("expected a notice")
	}
	return notices[len(notices)-1]
}

func TestLoadReplacesCache(t *testing.T) {
	gw := &fakeGateway{teams: []models.WMFLTeam{team(1, "Torpedo", 10)}}
	c := New(gw)

	if !c.State().Loading {
		t.Error("console should start in loading state")
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	state := c.State()
	if state.Loading || len(state.Teams) != 1 || state.Teams[0].TeamName != "Torpedo" {
		t.Errorf("unexpected state %+v", state)
	}
	if len(state.Notices) != 0 {
		t.Errorf("successful load must not raise a notice: %+v", state.Notices)
	}
}

func TestLoadFailureKeepsPreviousCache(t *testing.T) {
	gw := &fakeGateway{teams: []models.WMFLTeam{team(1, "Torpedo", 10)}}
	c := New(gw)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	gw.listErr = errors.New("network unreachable")
	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if got := c.Teams(); len(got) != 1 || got[0].TeamName != "Torpedo" {
		t.Errorf("cache lost after failed load: %+v", got)
	}
	if n := lastNotice(t, c); n.Level != LevelError || n.Message != msgLoadFailed {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestSubmitFormCreates(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	gw := &fakeGateway{teams: []models.WMFLTeam{team(1, "Rotor", 3)}}
	c := New(gw, WithClock(clock))

	c.OpenCreateForm()
	form := models.NewTeamForm()
	form.TeamName = "Rotor"
	form.Wins = 1

	if err := c.SubmitForm(context.Background(), form); err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}

	if len(gw.created) != 1 || *gw.created[0].TeamName != "Rotor" || gw.created[0].TeamID != nil {
		t.Errorf("unexpected create %+v", gw.created)
	}
	state := c.State()
	if state.Form.Open {
		t.Error("form should close on success")
	}
	if gw.listCalls != 1 || len(state.Teams) != 1 {
		t.Errorf("expected one refetch, got %d calls and %d teams", gw.listCalls, len(state.Teams))
	}
	n := lastNotice(t, c)
	if n.Level != LevelSuccess || n.Message != msgTeamAdded || !n.CreatedAt.Equal(clock.Now()) {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestSubmitFormUpdatesEditedTeam(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw)

	existing := team(77, "Alania", 20)
	c.OpenEditForm(existing)
	if got := c.State().Form.Values.TeamName; got != "Alania" {
		t.Fatalf("form not pre-filled: %q", got)
	}

	form := models.TeamFormFrom(existing)
	form.City = "Vladikavkaz"
	if err := c.SubmitForm(context.Background(), form); err != nil {
		t.Fatalf("SubmitForm: %v", err)
	}

	input, ok := gw.updated[77]
	if !ok || *input.City != "Vladikavkaz" {
		t.Errorf("unexpected updates %+v", gw.updated)
	}
	if n := lastNotice(t, c); n.Message != msgTeamUpdated {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestSubmitFormFailureKeepsFormOpen(t *testing.T) {
	gw := &fakeGateway{createErr: &clients.APIError{StatusCode: http.StatusBadRequest}}
	c := New(gw)

	c.OpenCreateForm()
	form := models.NewTeamForm()
	form.TeamName = "Fakel"
	if err := c.SubmitForm(context.Background(), form); err == nil {
		t.Fatal("expected error")
	}

	state := c.State()
	if !state.Form.Open || state.Form.Values.TeamName != "Fakel" {
		t.Errorf("form should stay open with the entered values: %+v", state.Form)
	}
	if gw.listCalls != 0 {
		t.Errorf("failed save must not refetch")
	}
	if n := lastNotice(t, c); n.Level != LevelError || n.Message != msgSaveFailed {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestDelete(t *testing.T) {
	gw := &fakeGateway{}
	c := New(gw)

	if err := c.Delete(context.Background(), 9); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if diff := cmp.Diff([]int64{9}, gw.deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}
	if gw.listCalls != 1 {
		t.Errorf("delete must refetch, got %d list calls", gw.listCalls)
	}

	gw.deleteErr = errors.New("boom")
	if err := c.Delete(context.Background(), 9); err == nil {
		t.Fatal("expected error")
	}
	if n := lastNotice(t, c); n.Level != LevelError || n.Message != msgDeleteFailed {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestImportSuccess(t *testing.T) {
	gw := &fakeGateway{importResult: &models.ImportResult{Success: true, ImportedCount: 12}}
	c := New(gw)
	c.OpenImportDialog()

	if err := c.Import(context.Background(), 1056456); err != nil {
		t.Fatalf("Import: %v", err)
	}

	state := c.State()
	if state.Import.Open {
		t.Error("dialog should close after a successful import")
	}
	if gw.listCalls != 1 {
		t.Errorf("import must refetch")
	}
	if n := lastNotice(t, c); n.Level != LevelSuccess || n.Message != "Imported teams: 12" {
		t.Errorf("unexpected notice %+v", n)
	}
}

// success=true with nothing imported is a warning, not a success.
func TestImportZeroCountIsWarning(t *testing.T) {
	gw := &fakeGateway{importResult: &models.ImportResult{Success: true, ImportedCount: 0}}
	c := New(gw)
	c.OpenImportDialog()

	err := c.Import(context.Background(), 1056456)
	if !errors.Is(err, ErrNothingImported) {
		t.Fatalf("want ErrNothingImported, got %v", err)
	}

	state := c.State()
	if !state.Import.Open {
		t.Error("dialog should stay open")
	}
	if gw.listCalls != 0 {
		t.Error("warning path must not refetch")
	}
	if n := lastNotice(t, c); n.Level != LevelWarning || n.Message != msgNothingImport {
		t.Errorf("unexpected notice %+v", n)
	}

	gw.importResult = &models.ImportResult{Success: true, Message: "tournament closed"}
	_ = c.Import(context.Background(), 1056456)
	if n := lastNotice(t, c); n.Level != LevelWarning || n.Message != "tournament closed" {
		t.Errorf("server message should be used: %+v", n)
	}
}

func TestImportFailure(t *testing.T) {
	gw := &fakeGateway{importErr: errors.New("timeout")}
	c := New(gw)
	c.OpenImportDialog()

	if err := c.Import(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}
	if !c.State().Import.Open {
		t.Error("dialog should stay open on failure")
	}
	if n := lastNotice(t, c); n.Level != LevelError || n.Message != msgImportFailed {
		t.Errorf("unexpected notice %+v", n)
	}

	if err := c.Import(context.Background(), 0); !errors.Is(err, ErrInvalidTournament) {
		t.Errorf("want ErrInvalidTournament, got %v", err)
	}
}

func TestSynchronize(t *testing.T) {
	called := 0
	gw := &fakeGateway{
		syncResp: &models.SyncResponse{Success: true, Message: "Synced tournaments: 2"},
		logs:     []models.SyncLog{{ID: 1, Status: models.SyncStatusSuccess}},
	}
	c := New(gw, WithSyncComplete(func(context.Context) { called++ }))

	if err := c.Synchronize(context.Background()); err != nil {
		t.Fatalf("Synchronize: %v", err)
	}
	if called != 1 {
		t.Errorf("sync-complete callback called %d times", called)
	}
	if got := c.State().SyncLogs; len(got) != 1 {
		t.Errorf("logs not refetched: %+v", got)
	}
	if n := lastNotice(t, c); n.Level != LevelSuccess || n.Message != "Synced tournaments: 2" {
		t.Errorf("unexpected notice %+v", n)
	}
}

func TestSynchronizeFailures(t *testing.T) {
	tests := []struct {
		name    string
		resp    *models.SyncResponse
		err     error
		level   Level
		message string
	}{
		{
			name:    "server message",
			err:     &clients.APIError{StatusCode: 500, Message: "database down"},
			level:   LevelError,
			message: "Error 500: database down",
		},
		{
			name:    "no server message",
			err:     &clients.APIError{StatusCode: 502},
			level:   LevelError,
			message: "Error 502: unknown error",
		},
		{
			name:    "transport",
			err:     errors.New("dial tcp: refused"),
			level:   LevelError,
			message: "Synchronization failed: dial tcp: refused",
		},
		{
			name:    "rejected",
			resp:    &models.SyncResponse{Success: false},
			level:   LevelWarning,
			message: msgSyncNotRun,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			gw := &fakeGateway{syncResp: tt.resp, syncErr: tt.err}
			c := New(gw, WithSyncComplete(func(context.Context) { called = true }))

			if err := c.Synchronize(context.Background()); err == nil {
				t.Fatal("expected error")
			}
			if called {
				t.Error("callback must only run on success")
			}
			if n := lastNotice(t, c); n.Level != tt.level || n.Message != tt.message {
				t.Errorf("unexpected notice %+v", n)
			}
		})
	}
}

func TestSameActionIsNotDoubleSubmitted(t *testing.T) {
	gate := make(chan struct{})
	gw := &fakeGateway{syncResp: &models.SyncResponse{Success: true}, syncGate: gate}
	c := New(gw)

	done := make(chan error)
	go func() { done <- c.Synchronize(context.Background()) }()

	deadline := time.Now().Add(2 * time.Second)
	for !c.State().InFlight[ActionSync] {
		if time.Now().After(deadline) {
			t.Fatal("sync never started")
		}
		time.Sleep(time.Millisecond)
	}

	if err := c.Synchronize(context.Background()); !errors.Is(err, ErrInFlight) {
		t.Errorf("second trigger: want ErrInFlight, got %v", err)
	}
	// a different action is not blocked
	if err := c.Delete(context.Background(), 1); err != nil {
		t.Errorf("delete while syncing: %v", err)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("Synchronize: %v", err)
	}
	if c.State().InFlight[ActionSync] {
		t.Error("in-flight flag not cleared")
	}
}

// Delete and create in flight together: the cache ends up as exactly the
// list of the refetch that resolved last.
func TestInterleavedRefetchLastWriteWins(t *testing.T) {
	gate := make(chan []models.WMFLTeam)
	gw := &fakeGateway{listGate: gate}
	c := New(gw)

	deleteDone := make(chan error, 1)
	createDone := make(chan error, 1)
	go func() { deleteDone <- c.Delete(context.Background(), 1) }()
	go func() { createDone <- c.SubmitForm(context.Background(), models.NewTeamForm()) }()

	first := []models.WMFLTeam{team(2, "Ural", 30)}
	second := []models.WMFLTeam{team(2, "Ural", 30), team(3, "Akron", 25)}

	gate <- first
	var secondDone chan error
	select {
	case err := <-deleteDone:
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		secondDone = createDone
	case err := <-createDone:
		if err != nil {
			t.Fatalf("SubmitForm: %v", err)
		}
		secondDone = deleteDone
	case <-time.After(2 * time.Second):
		t.Fatal("no operation completed")
	}

	gate <- second
	if err := <-secondDone; err != nil {
		t.Fatalf("second operation: %v", err)
	}

	if diff := cmp.Diff(second, c.Teams()); diff != "" {
		t.Errorf("cache should equal the last resolved refetch (-want +got):\n%s", diff)
	}
}

func TestStandingsRanksCache(t *testing.T) {
	gw := &fakeGateway{teams: []models.WMFLTeam{team(1, "Low", 3), team(2, "High", 9)}}
	c := New(gw)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	rows := c.Standings()
	if len(rows) != 2 || rows[0].Team.Name != "High" || rows[0].Position != 1 {
		t.Errorf("unexpected standings %+v", rows)
	}
	// ranking must not reorder the cache itself
	if c.Teams()[0].TeamName != "Low" {
		t.Error("cache order changed by Standings")
	}
}

func TestNoticesAreBoundedAndDismissable(t *testing.T) {
	c := New(&fakeGateway{})
	for i := 0; i < maxNotices+5; i++ {
		c.notify(LevelSuccess, "n")
	}
	notices := c.Notices()
	if len(notices) != maxNotices {
		t.Fatalf("want %d notices, got %d", maxNotices, len(notices))
	}

	c.DismissNotice(notices[0].ID)
	if got := len(c.Notices()); got != maxNotices-1 {
		t.Errorf("dismiss failed, %d notices left", got)
	}
}

func TestStateSnapshotIsIsolated(t *testing.T) {
	gw := &fakeGateway{teams: []models.WMFLTeam{team(1, "Torpedo", 10)}}
	c := New(gw)
	_ = c.Load(context.Background())

	snap := c.State()
	snap.Teams[0].TeamName = "mutated"
	snap.InFlight[ActionSync] = true

	state := c.State()
	if state.Teams[0].TeamName != "Torpedo" || state.InFlight[ActionSync] {
		t.Error("snapshot shares memory with console state")
	}
}
