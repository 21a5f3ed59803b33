// Package dashboard derives presentation-ready view models from the cached
// collections and serves the dashboard's read endpoints. The derivation
// functions are pure: no side effects, no network access.
package dashboard

import (
	"strings"

	"github.com/followcare/dashboard/internal/platform/careapi"
)

// Visual categories used by badge and urgency derivation.
const (
	CategoryPending   = "pending"
	CategoryEscalated = "escalated"
	CategoryCompleted = "completed"
	CategoryUnknown   = "unknown"

	SeverityHigh    = "high"
	SeverityMedium  = "medium"
	SeverityLow     = "low"
	SeverityNeutral = "neutral"
)

const (
	idTruncateLen    = 8
	truncationMarker = "..."

	// DefaultSummaryLimit is the truncation limit used when none is
	// configured.
	DefaultSummaryLimit = 200
)

// Badge is the display form of a consultation status.
type Badge struct {
	Label    string `json:"label"`
	Category string `json:"category"`
}

// ResolvePatientName is total: it returns the roster name for a known patient
// and a truncated form of the raw identifier otherwise. Lookup failure is
// non-fatal by design.
func ResolvePatientName(patients []careapi.Patient, patientID string) string {
	for _, p := range patients {
		if p.ID == patientID && p.Name != "" {
			return p.Name
		}
	}
	return TruncateID(patientID)
}

// TruncateID shortens an opaque identifier for display.
func TruncateID(id string) string {
	if id == "" {
		return "unknown"
	}
	if len(id) > idTruncateLen {
		return id[:idTruncateLen]
	}
	return id
}

// StatusBadge maps a consultation status to its display badge. Values outside
// the known vocabulary get the unknown category with the raw value as label.
func StatusBadge(status string) Badge {
	switch status {
	case careapi.StatusPending:
		return Badge{Label: "PENDING", Category: CategoryPending}
	case careapi.StatusEscalated:
		return Badge{Label: "ESCALATED", Category: CategoryEscalated}
	case careapi.StatusCompleted:
		return Badge{Label: "COMPLETED", Category: CategoryCompleted}
	}
	if status == "" {
		return Badge{Label: "UNKNOWN", Category: CategoryUnknown}
	}
	return Badge{Label: strings.ToUpper(status), Category: CategoryUnknown}
}

// UrgencyClass classifies the free-text urgency of a call log. This is a
// case-insensitive substring heuristic, not an enum: any text containing
// "high" is high severity, any other text containing "med" is medium, all
// remaining text is low, and an absent or empty level is neutral.
func UrgencyClass(level *string) string {
	if level == nil || *level == "" {
		return SeverityNeutral
	}
	lowered := strings.ToLower(*level)
	switch {
	case strings.Contains(lowered, "high"):
		return SeverityHigh
	case strings.Contains(lowered, "med"):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// TruncateSummary returns text unchanged when it fits in limit, otherwise the
// first limit characters plus the ellipsis marker. A non-positive limit falls
// back to DefaultSummaryLimit.
func TruncateSummary(text string, limit int) string {
	if limit <= 0 {
		limit = DefaultSummaryLimit
	}
	if len(text) <= limit {
		return text
	}
	return text[:limit] + truncationMarker
}
