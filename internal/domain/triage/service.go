// Package triage handles the clinician's resolve action on escalated
// consultations. The care platform is the authority on whether a transition
// is accepted; the client sends the request without re-validating the
// current status.
package triage

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/followcare/dashboard/internal/platform/careapi"
)

type StatusSetter interface {
	SetConsultationStatus(ctx context.Context, id, status string) error
}

type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Service struct {
	api    StatusSetter
	store  Refresher
	logger zerolog.Logger
}

func NewService(api StatusSetter, store Refresher, logger zerolog.Logger) *Service {
	return &Service{api: api, store: store, logger: logger}
}

// Resolve marks a consultation completed. A rejected or failed transition is
// logged and absorbed; the cached view simply stays unchanged until the next
// refresh. A successful transition triggers a refresh strictly afterwards.
func (s *Service) Resolve(ctx context.Context, consultationID string) {
	if err := s.api.SetConsultationStatus(ctx, consultationID, careapi.StatusCompleted); err != nil {
		s.logger.Error().Err(err).Str("consultation_id", consultationID).Msg("status transition failed")
		return
	}

	s.logger.Info().Str("consultation_id", consultationID).Msg("consultation resolved")

	if err := s.store.RefreshAll(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("post-resolve refresh degraded")
	}
}
