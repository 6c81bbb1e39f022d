package models

import "fmt"

// ApplicationStatus is the processing state of an admissions application.
// It is a closed set: exactly PENDING, APPROVED and CANCEL exist, each with
// a machine code and a display label shown to candidates.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusCancel   ApplicationStatus = "CANCEL"
)

// statusLabels maps machine codes to display labels.
var statusLabels = map[ApplicationStatus]string{
	StatusPending:  "Chờ duyệt",
	StatusApproved: "Đã duyệt",
	StatusCancel:   "Từ chối",
}

// Code returns the machine-readable status code.
func (s ApplicationStatus) Code() string {
	return string(s)
}

// Label returns the human-readable display label for the status.
// Unknown values fall back to the raw code so stale data still renders.
func (s ApplicationStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// IsValid reports whether s is one of the three defined statuses.
func (s ApplicationStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// ParseApplicationStatus resolves a stored or submitted value to a status.
// It accepts the machine code first and falls back to matching the display
// label, since older records stored the label directly.
func ParseApplicationStatus(value string) (ApplicationStatus, error) {
	s := ApplicationStatus(value)
	if s.IsValid() {
		return s, nil
	}
	for code, label := range statusLabels {
		if label == value {
			return code, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", value)
}
