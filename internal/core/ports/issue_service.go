package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// ReportIssueInput is the DTO passed from the transport layer when a
// citizen reports an issue.
type ReportIssueInput struct {
	ReporterUserID *int64
	Type           string
	Priority       string
	Title          string
	Description    string
	Address        string
	City           string
	Landmark       string
	Contact        string
	GPSLocation    string
	CategoryID     *int64
	// Status is optional; empty means "reported". A non-empty value must
	// be a valid triage state.
	Status string
}

// IssueService covers the public (unauthenticated) issue surface.
type IssueService interface {
	Report(ctx context.Context, input ReportIssueInput) (*domain.Issue, error)
	ListRecent(ctx context.Context) ([]*domain.Issue, error)
}
