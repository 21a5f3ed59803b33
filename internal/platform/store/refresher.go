package store

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Refresher runs RefreshAll on a cron schedule. The dashboard's contract is
// pull-based, so the refresher is an opt-in extra: with an empty schedule it
// never starts and the observable behavior is unchanged.
type Refresher struct {
	store  *Store
	logger zerolog.Logger
	cron   *cron.Cron
}

// NewRefresher validates the schedule and prepares the cron runner. An empty
// schedule yields a no-op refresher.
func NewRefresher(s *Store, schedule string, logger zerolog.Logger) (*Refresher, error) {
	r := &Refresher{store: s, logger: logger}
	if schedule == "" {
		return r, nil
	}

	r.cron = cron.New()
	_, err := r.cron.AddFunc(schedule, func() {
		if err := s.RefreshAll(context.Background()); err != nil {
			logger.Warn().Err(err).Msg("scheduled refresh completed with degraded collections")
		}
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Start begins scheduled refreshes, if a schedule was configured.
func (r *Refresher) Start() {
	if r.cron == nil {
		return
	}
	r.logger.Info().Msg("starting background collection refresh")
	r.cron.Start()
}

// Stop halts the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
}
