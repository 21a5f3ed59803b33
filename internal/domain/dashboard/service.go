package dashboard

import (
	"github.com/followcare/dashboard/internal/platform/careapi"
	"github.com/followcare/dashboard/internal/platform/store"
)

// Collections is the slice of the collection store the composer reads.
type Collections interface {
	Snapshot() store.Snapshot
}

type Service struct {
	store        Collections
	summaryLimit int
}

func NewService(c Collections, summaryLimit int) *Service {
	if summaryLimit <= 0 {
		summaryLimit = DefaultSummaryLimit
	}
	return &Service{store: c, summaryLimit: summaryLimit}
}

// Patients returns the roster options in server response order.
func (s *Service) Patients() []PatientOption {
	snap := s.store.Snapshot()
	out := make([]PatientOption, 0, len(snap.Patients))
	for _, p := range snap.Patients {
		out = append(out, PatientOption{ID: p.ID, Name: p.Name})
	}
	return out
}

// Consultations composes cards from the cached consultations and roster,
// preserving server response order.
func (s *Service) Consultations() []ConsultationCard {
	snap := s.store.Snapshot()
	out := make([]ConsultationCard, 0, len(snap.Consultations))
	for _, c := range snap.Consultations {
		out = append(out, s.consultationCard(snap.Patients, c))
	}
	return out
}

// CallLogs composes cards from the cached call logs in server response order.
func (s *Service) CallLogs() []CallLogCard {
	snap := s.store.Snapshot()
	out := make([]CallLogCard, 0, len(snap.CallLogs))
	for _, l := range snap.CallLogs {
		out = append(out, s.callLogCard(l))
	}
	return out
}

func (s *Service) consultationCard(patients []careapi.Patient, c careapi.Consultation) ConsultationCard {
	return ConsultationCard{
		ID:           c.ID,
		PatientID:    c.PatientID,
		PatientName:  ResolvePatientName(patients, c.PatientID),
		FollowUpDate: c.FollowUpDate,
		DueDate:      c.FollowUpDate.Format("2006-01-02"),
		Summary:      TruncateSummary(c.SummaryText, s.summaryLimit),
		Status:       StatusBadge(c.Status),
		CanResolve:   c.Status == careapi.StatusEscalated,
	}
}

func (s *Service) callLogCard(l careapi.CallLog) CallLogCard {
	card := CallLogCard{
		ID:              l.ID,
		ConsultationRef: TruncateID(l.ConsultationID),
		CreatedAt:       l.CreatedAt,
		UrgencyClass:    UrgencyClass(l.UrgencyLevel),
		DurationSeconds: l.CallDuration,
		CallStatus:      l.CallStatus,
	}
	if l.UrgencyLevel != nil {
		card.Urgency = *l.UrgencyLevel
	}
	if l.AISummary != nil {
		card.Summary = TruncateSummary(*l.AISummary, s.summaryLimit)
	}
	if l.Transcript != nil {
		card.Transcript = TruncateSummary(*l.Transcript, s.summaryLimit)
	}
	return card
}
