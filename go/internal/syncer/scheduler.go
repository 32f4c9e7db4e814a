package syncer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/wmfl-league/leagueadmin/go/internal/models"
)

// Syncer is the part of App the scheduler drives.
type Syncer interface {
	Sync(ctx context.Context, tournamentID *int64) (*models.SyncResponse, error)
}

// Scheduler synchronizes every tournament on a fixed interval.
type Scheduler struct {
	syncer   Syncer
	clock    clockwork.Clock
	interval time.Duration
}

func NewScheduler(syncer Syncer, clock clockwork.Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Scheduler{
		syncer:   syncer,
		clock:    clock,
		interval: interval,
	}
}

// Run blocks until ctx is done. A non-positive interval disables auto-sync.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		log.Info().Msg("auto-sync disabled")
		return
	}

	ticker := s.clock.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Msg("auto-sync started")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("auto-sync stopped")
			return
		case <-ticker.Chan():
			resp, err := s.syncer.Sync(ctx, nil)
			if err != nil {
				log.Error().Err(err).Msg("auto-sync failed")
				continue
			}
			log.Info().Str("message", resp.Message).Msg("auto-sync completed")
		}
	}
}
