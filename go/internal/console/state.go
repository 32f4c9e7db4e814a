package console

import (
	"github.com/google/uuid"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// Action names a user-triggerable operation. Each action has its own
// in-flight flag.
type Action string

const (
	ActionLoad     Action = "load"
	ActionSave     Action = "save"
	ActionDelete   Action = "delete"
	ActionImport   Action = "import"
	ActionLoadLogs Action = "load_logs"
	ActionSync     Action = "sync"
)

// FormState is the create/edit team dialog.
type FormState struct {
	Open    bool
	Editing *models.WMFLTeam
	Values  models.TeamForm
}

// ImportState is the tournament import dialog.
type ImportState struct {
	Open         bool
	TournamentID int64
}

// State is everything the admin screen shows. It is only changed by
// applying messages.
type State struct {
	Teams    []models.WMFLTeam
	SyncLogs []models.SyncLog
	Loading  bool
	Form     FormState
	Import   ImportState
	InFlight map[Action]bool
	Notices  []Notice
}

func newState() State {
	return State{
		Teams:    []models.WMFLTeam{},
		SyncLogs: []models.SyncLog{},
		Loading:  true,
		Form:     FormState{Values: models.NewTeamForm()},
		Import:   ImportState{TournamentID: models.DefaultTournamentID},
		InFlight: make(map[Action]bool),
	}
}

// clone returns a copy that shares nothing mutable with s.
func (s State) clone() State {
	out := s
	out.Teams = append([]models.WMFLTeam(nil), s.Teams...)
	out.SyncLogs = append([]models.SyncLog(nil), s.SyncLogs...)
	out.Notices = append([]Notice(nil), s.Notices...)
	out.InFlight = make(map[Action]bool, len(s.InFlight))
	for k, v := range s.InFlight {
		out.InFlight[k] = v
	}
	if s.Form.Editing != nil {
		editing := *s.Form.Editing
		out.Form.Editing = &editing
	}
	return out
}

// msg is a state transition.
type msg interface {
	apply(s *State)
}

type actionStarted struct{ action Action }

func (m actionStarted) apply(s *State) {
	s.InFlight[m.action] = true
	if m.action == ActionLoad {
		s.Loading = true
	}
}

type actionFinished struct{ action Action }

func (m actionFinished) apply(s *State) {
	delete(s.InFlight, m.action)
	if m.action == ActionLoad {
		s.Loading = false
	}
}

// teamsLoaded replaces the cache wholesale.
type teamsLoaded struct{ teams []models.WMFLTeam }

func (m teamsLoaded) apply(s *State) {
	s.Teams = append([]models.WMFLTeam{}, m.teams...)
}

type logsLoaded struct{ logs []models.SyncLog }

func (m logsLoaded) apply(s *State) {
	s.SyncLogs = append([]models.SyncLog{}, m.logs...)
}

type formOpened struct {
	editing *models.WMFLTeam
	values  models.TeamForm
}

func (m formOpened) apply(s *State) {
	s.Form = FormState{Open: true, Editing: m.editing, Values: m.values}
}

type formClosed struct{}

func (formClosed) apply(s *State) {
	s.Form = FormState{Values: models.NewTeamForm()}
}

type importOpened struct{}

func (importOpened) apply(s *State) {
	s.Import.Open = true
}

type importClosed struct{}

func (importClosed) apply(s *State) {
	s.Import.Open = false
}

type tournamentChosen struct{ tournamentID int64 }

func (m tournamentChosen) apply(s *State) {
	s.Import.TournamentID = m.tournamentID
}

type noticeRaised struct{ notice Notice }

func (m noticeRaised) apply(s *State) {
	s.Notices = append(s.Notices, m.notice)
	if over := len(s.Notices) - maxNotices; over > 0 {
		s.Notices = append([]Notice(nil), s.Notices[over:]...)
	}
}

type noticeDismissed struct{ id uuid.UUID }

func (m noticeDismissed) apply(s *State) {
	kept := s.Notices[:0:0]
	for _, n := range s.Notices {
		if n.ID != m.id {
			kept = append(kept, n)
		}
	}
	s.Notices = kept
}
