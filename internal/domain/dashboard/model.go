package dashboard

import "time"

// PatientOption is a roster entry for the upload form's patient selector.
type PatientOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConsultationCard is the presentation form of one consultation record.
type ConsultationCard struct {
	ID           string    `json:"id"`
	PatientID    string    `json:"patient_id"`
	PatientName  string    `json:"patient_name"`
	FollowUpDate time.Time `json:"follow_up_date"`
	DueDate      string    `json:"due_date"`
	Summary      string    `json:"summary"`
	Status       Badge     `json:"status"`
	// CanResolve is true only for escalated consultations; the resolve
	// action is offered for those and no others.
	CanResolve bool `json:"can_resolve"`
}

// CallLogCard is the presentation form of one voice-agent call log. The
// consultation reference is always shown truncated, whether or not it
// resolves to a cached consultation.
type CallLogCard struct {
	ID              string    `json:"id"`
	ConsultationRef string    `json:"consultation_ref"`
	CreatedAt       time.Time `json:"created_at"`
	Urgency         string    `json:"urgency"`
	UrgencyClass    string    `json:"urgency_class"`
	Summary         string    `json:"summary"`
	Transcript      string    `json:"transcript"`
	DurationSeconds *float64  `json:"duration_seconds"`
	CallStatus      string    `json:"call_status"`
}
