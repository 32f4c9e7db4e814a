package syncer

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/httputil"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// FailureMessage accompanies every failed synchronization.
const FailureMessage = "Synchronization error"

// SyncApp defines what the service layer needs from the synchronizer
type SyncApp interface {
	Syncer
	ListLogs(ctx context.Context) ([]models.SyncLog, error)
}

// Service serves the synchronize endpoint
type Service struct {
	app SyncApp
}

func NewService(app SyncApp) *Service {
	return &Service{app: app}
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		logs, err := s.app.ListLogs(r.Context())
		if err != nil {
			fail(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, models.SyncLogsResponse{Logs: logs})

	case http.MethodPost:
		var req models.SyncRequest
		if err := httputil.ParseJSON(r, &req); err != nil {
			httputil.JSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		// a zero id means every tournament
		if req.TournamentID != nil && *req.TournamentID == 0 {
			req.TournamentID = nil
		}
		resp, err := s.app.Sync(r.Context(), req.TournamentID)
		if err != nil {
			fail(w, err)
			return
		}
		httputil.JSON(w, http.StatusOK, resp)

	default:
		httputil.MethodNotAllowed(w)
	}
}

func fail(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("sync request failed")
	httputil.JSON(w, http.StatusInternalServerError, map[string]string{
		"error":   err.Error(),
		"message": FailureMessage,
	})
}
