package domain

import "time"

// IssueStatus represents the triage state of a reported issue.
type IssueStatus string

const (
	IssueReported   IssueStatus = "reported"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
	IssueRejected   IssueStatus = "rejected"
)

// ValidIssueStatus reports whether s is a known triage state.
func ValidIssueStatus(s string) bool {
	switch IssueStatus(s) {
	case IssueReported, IssueInProgress, IssueResolved, IssueRejected:
		return true
	}
	return false
}

// Issue is a citizen-reported problem. ReporterUserID is nullable: issues
// survive deletion of their reporter with the reference nulled out.
type Issue struct {
	ID             int64       `json:"id"`
	ReporterUserID *int64      `json:"reporter_user_id,omitempty"`
	Type           string      `json:"type,omitempty"`
	Priority       string      `json:"priority,omitempty"`
	Title          string      `json:"title"`
	Description    string      `json:"description,omitempty"`
	Address        string      `json:"address,omitempty"`
	City           string      `json:"city,omitempty"`
	Landmark       string      `json:"landmark,omitempty"`
	Status         IssueStatus `json:"status"`
	ReportedDate   time.Time   `json:"reported_date"`
	Contact        string      `json:"contact,omitempty"`
	Upvotes        int         `json:"upvotes"`
	GPSLocation    string      `json:"gps_location,omitempty"`
	CategoryID     *int64      `json:"category_id,omitempty"`
}
