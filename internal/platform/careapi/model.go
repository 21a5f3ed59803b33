package careapi

import "time"

// Consultation status values as reported by the care platform.
const (
	StatusPending   = "pending"
	StatusEscalated = "escalated"
	StatusCompleted = "completed"
)

// Patient is a read-only roster entry owned by the care platform.
type Patient struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Consultation is a patient encounter record with a scheduled follow-up.
// It is created by the platform in response to an upload and mutated only
// through explicit status-transition requests.
type Consultation struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	FollowUpDate time.Time `json:"follow_up_date"`
	SummaryText  string    `json:"summary_text"`
	Status       string    `json:"status"`
}

// CallLog records one automated voice-agent interaction. The urgency level
// and summaries are free text produced by the platform's AI pipeline and may
// be absent.
type CallLog struct {
	ID             string    `json:"id"`
	ConsultationID string    `json:"consultation_id"`
	CreatedAt      time.Time `json:"created_at"`
	UrgencyLevel   *string   `json:"urgency_level"`
	AISummary      *string   `json:"ai_summary"`
	Transcript     *string   `json:"transcript"`
	CallDuration   *float64  `json:"call_duration"`
	CallStatus     string    `json:"call_status"`
}
