package teams

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/httputil"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// TeamIDParam is the query parameter selecting a single team.
const TeamIDParam = "team_id"

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	ListActive(ctx context.Context) ([]models.WMFLTeam, error)
	Get(ctx context.Context, teamID int64) (*models.WMFLTeam, error)
	Create(ctx context.Context, in models.TeamInput) (*models.WMFLTeam, error)
	Update(ctx context.Context, teamID int64, in models.TeamInput) (*models.WMFLTeam, error)
	Delete(ctx context.Context, teamID int64) (*DeletedTeam, error)
}

// Service serves the team collection endpoint
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

var _ http.Handler = (*Service)(nil)

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.get(w, r)
	case http.MethodPost:
		s.create(w, r)
	case http.MethodPut:
		s.update(w, r)
	case http.MethodDelete:
		s.delete(w, r)
	default:
		httputil.MethodNotAllowed(w)
	}
}

func (s *Service) get(w http.ResponseWriter, r *http.Request) {
	teamID, ok, err := httputil.QueryInt64(r, TeamIDParam)
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "team_id must be an integer")
		return
	}

	if ok {
		team, err := s.app.Get(r.Context(), teamID)
		if err != nil {
			writeError(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, team)
		return
	}

	teams, err := s.app.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, teams)
}

func (s *Service) create(w http.ResponseWriter, r *http.Request) {
	var in models.TeamInput
	if err := httputil.ParseJSON(r, &in); err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	team, err := s.app.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.JSON(w, http.StatusCreated, team)
}

func (s *Service) update(w http.ResponseWriter, r *http.Request) {
	var in models.TeamInput
	if err := httputil.ParseJSON(r, &in); err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if in.TeamID == nil {
		httputil.JSONError(w, http.StatusBadRequest, "team_id is required")
		return
	}

	team, err := s.app.Update(r.Context(), *in.TeamID, in)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, team)
}

func (s *Service) delete(w http.ResponseWriter, r *http.Request) {
	teamID, ok, err := httputil.QueryInt64(r, TeamIDParam)
	if err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "team_id must be an integer")
		return
	}
	if !ok {
		httputil.JSONError(w, http.StatusBadRequest, "team_id is required")
		return
	}

	deleted, err := s.app.Delete(r.Context(), teamID)
	if err != nil {
		writeError(w, err)
		return
	}
	httputil.JSON(w, http.StatusOK, map[string]any{
		"message": "Team deleted",
		"team":    deleted,
	})
}

// writeError maps app errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httputil.JSONError(w, http.StatusNotFound, "Team not found")
	case errors.Is(err, ErrNoFields):
		httputil.JSONError(w, http.StatusBadRequest, "No fields to update")
	case errors.Is(err, ErrValidation):
		httputil.JSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrConflict):
		httputil.JSONError(w, http.StatusConflict, err.Error())
	default:
		log.Error().Err(err).Msg("teams request failed")
		httputil.JSONError(w, http.StatusInternalServerError, err.Error())
	}
}
