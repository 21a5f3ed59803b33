package upload

import "io"

// Draft is the transient client-side state of an in-progress submission. It
// exists only between form interaction and submission; nothing is retained on
// failure and the user resubmits from scratch.
type Draft struct {
	PatientID string
	// FollowUpDate is the selected local date in 2006-01-02 form. It is
	// serialized to the UTC instant of local midnight on submit.
	FollowUpDate string
	Filename     string
	File         io.Reader
}

// complete reports whether all three required selections are present.
func (d Draft) complete() bool {
	return d.PatientID != "" && d.FollowUpDate != "" && d.File != nil
}
