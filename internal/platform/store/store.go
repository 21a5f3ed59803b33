// Package store holds the in-memory mirrors of the three care platform
// collections. The mirrors are refreshed wholesale on demand; the dashboard
// never reflects a mutation locally before a refresh confirms it server-side.
package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/followcare/dashboard/internal/platform/careapi"
)

// Lister is the slice of the care API client the store consumes.
type Lister interface {
	ListPatients(ctx context.Context) ([]careapi.Patient, error)
	ListConsultations(ctx context.Context) ([]careapi.Consultation, error)
	ListCallLogs(ctx context.Context) ([]careapi.CallLog, error)
}

// Snapshot is a point-in-time copy of all three collections.
type Snapshot struct {
	Patients      []careapi.Patient
	Consultations []careapi.Consultation
	CallLogs      []careapi.CallLog
}

type Store struct {
	api    Lister
	logger zerolog.Logger

	mu            sync.RWMutex
	patients      []careapi.Patient
	consultations []careapi.Consultation
	callLogs      []careapi.CallLog
}

func New(api Lister, logger zerolog.Logger) *Store {
	return &Store{api: api, logger: logger}
}

// RefreshAll fetches the three collections concurrently and applies each
// result independently. A failed fetch leaves that collection's previous
// value untouched; the other collections still update. The first fetch error
// is returned so callers can report degraded data, but a partial failure is
// not fatal.
func (s *Store) RefreshAll(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make([]error, 3)

	wg.Add(3)
	go func() {
		defer wg.Done()
		patients, err := s.api.ListPatients(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("patient roster refresh failed, keeping cached value")
			errs[0] = err
			return
		}
		s.mu.Lock()
		s.patients = patients
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		consultations, err := s.api.ListConsultations(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("consultation refresh failed, keeping cached value")
			errs[1] = err
			return
		}
		s.mu.Lock()
		s.consultations = consultations
		s.mu.Unlock()
	}()
	go func() {
		defer wg.Done()
		callLogs, err := s.api.ListCallLogs(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("call log refresh failed, keeping cached value")
			errs[2] = err
			return
		}
		s.mu.Lock()
		s.callLogs = callLogs
		s.mu.Unlock()
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns copies of all three collections under a single read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Patients:      copySlice(s.patients),
		Consultations: copySlice(s.consultations),
		CallLogs:      copySlice(s.callLogs),
	}
}

// Patients returns a copy of the cached patient roster.
func (s *Store) Patients() []careapi.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.patients)
}

// Consultations returns a copy of the cached consultation records.
func (s *Store) Consultations() []careapi.Consultation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.consultations)
}

// CallLogs returns a copy of the cached call logs.
func (s *Store) CallLogs() []careapi.CallLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySlice(s.callLogs)
}

func copySlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
