package cases

import "strings"

// OverallStatus is the lifecycle stage of a case.
type OverallStatus string

const (
	StatusNew              OverallStatus = "new"
	StatusDocumentsPending OverallStatus = "documents_pending"
	StatusInReview         OverallStatus = "in_review"
	StatusSubmitted        OverallStatus = "submitted"
	StatusApproved         OverallStatus = "approved"
	StatusDenied           OverallStatus = "denied"
)

// ValidStatuses returns the statuses in lifecycle order.
func ValidStatuses() []OverallStatus {
	return []OverallStatus{
		StatusNew,
		StatusDocumentsPending,
		StatusInReview,
		StatusSubmitted,
		StatusApproved,
		StatusDenied,
	}
}

func (s OverallStatus) IsValid() bool {
	for _, v := range ValidStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// IsClosed reports whether the case reached a final decision.
func (s OverallStatus) IsClosed() bool {
	return s == StatusApproved || s == StatusDenied
}

// IsPending reports whether the case waits on documents or a decision.
func (s OverallStatus) IsPending() bool {
	switch s {
	case StatusDocumentsPending, StatusInReview, StatusSubmitted:
		return true
	}
	return false
}

// ValidStatusList renders the statuses for error messages, e.g. "new, documents_pending, ...".
func ValidStatusList() string {
	return strings.Join(statusNames(), ", ")
}

func statusNames() []string {
	names := make([]string, 0, len(ValidStatuses()))
	for _, s := range ValidStatuses() {
		names = append(names, string(s))
	}
	return names
}
