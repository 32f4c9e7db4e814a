package importer

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/httputil"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// FailureMessage accompanies every failed import.
const FailureMessage = "Failed to import data from WMFL"

// ImportApp defines what the service layer needs from the importer
type ImportApp interface {
	Import(ctx context.Context, tournamentID int64) (*models.ImportResult, error)
}

// Service serves the import endpoint
type Service struct {
	app ImportApp
}

func NewService(app ImportApp) *Service {
	return &Service{app: app}
}

func (s *Service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	req := models.ImportRequest{TournamentID: models.DefaultTournamentID}
	if err := httputil.ParseJSON(r, &req); err != nil {
		httputil.JSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.app.Import(r.Context(), req.TournamentID)
	if err != nil {
		log.Error().Err(err).Int64("tournament_id", req.TournamentID).Msg("import failed")
		httputil.JSON(w, http.StatusInternalServerError, map[string]string{
			"error":   err.Error(),
			"message": FailureMessage,
		})
		return
	}
	httputil.JSON(w, http.StatusOK, result)
}
