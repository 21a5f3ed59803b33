// Package upload coordinates the consultation upload transaction: a draft of
// patient, follow-up date and report file that must be complete before a
// single multipart submission is sent, with at most one submission in flight.
package upload

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/followcare/dashboard/internal/platform/careapi"
)

var (
	// ErrIncompleteDraft is the client-side entry guard: no request is sent
	// unless patient, date and file are all selected.
	ErrIncompleteDraft = errors.New("patient, follow-up date and report file are all required")
	// ErrInvalidDate rejects a follow-up date that is not a calendar date.
	ErrInvalidDate = errors.New("follow-up date must be a valid date (YYYY-MM-DD)")
	// ErrSubmitInFlight rejects a second submission while one is processing.
	ErrSubmitInFlight = errors.New("an upload is already being processed")
)

const dateLayout = "2006-01-02"

type Submitter interface {
	UploadConsultation(ctx context.Context, u careapi.Upload) error
}

type Refresher interface {
	RefreshAll(ctx context.Context) error
}

type Service struct {
	api      Submitter
	store    Refresher
	doctorID string
	logger   zerolog.Logger

	submitting atomic.Bool
}

// NewService builds the upload coordinator. doctorID is the injected doctor
// identity attached to every submission.
func NewService(api Submitter, store Refresher, doctorID string, logger zerolog.Logger) *Service {
	return &Service{api: api, store: store, doctorID: doctorID, logger: logger}
}

// Submitting reports whether a submission is currently in flight.
func (s *Service) Submitting() bool {
	return s.submitting.Load()
}

// Submit validates the draft, sends it as one multipart upload, and refreshes
// the collection store strictly after a successful response. Validation
// failures never reach the network. On any failure no partial state is kept.
func (s *Service) Submit(ctx context.Context, d Draft) error {
	if !d.complete() {
		return ErrIncompleteDraft
	}

	day, err := time.ParseInLocation(dateLayout, d.FollowUpDate, time.Local)
	if err != nil {
		return ErrInvalidDate
	}

	if !s.submitting.CompareAndSwap(false, true) {
		return ErrSubmitInFlight
	}
	defer s.submitting.Store(false)

	err = s.api.UploadConsultation(ctx, careapi.Upload{
		PatientID:    d.PatientID,
		DoctorID:     s.doctorID,
		FollowUpDate: day, // local midnight; the client serializes it in UTC
		Filename:     d.Filename,
		File:         d.File,
	})
	if err != nil {
		return fmt.Errorf("submit consultation: %w", err)
	}

	s.logger.Info().Str("patient_id", d.PatientID).Msg("consultation uploaded")

	if err := s.store.RefreshAll(ctx); err != nil {
		// The upload itself succeeded; a degraded refresh only means some
		// collections render stale until the next pull.
		s.logger.Warn().Err(err).Msg("post-upload refresh degraded")
	}
	return nil
}
