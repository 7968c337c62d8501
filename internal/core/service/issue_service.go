package service

import (
	"context"
	"time"

	"github.com/civicdesk/civicdesk-api/internal/api/metrics"
	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

const publicListLimit = 200

// IssueService implements the public issue surface: citizens report issues
// and browse the most recent ones without authentication.
type IssueService struct {
	repo ports.IssueRepository
}

func NewIssueService(repo ports.IssueRepository) *IssueService {
	return &IssueService{repo: repo}
}

func (s *IssueService) Report(ctx context.Context, input ports.ReportIssueInput) (*domain.Issue, error) {
	if input.Title == "" {
		return nil, domain.ErrValidation
	}

	status := domain.IssueReported
	if input.Status != "" {
		if !domain.ValidIssueStatus(input.Status) {
			return nil, domain.ErrValidation
		}
		status = domain.IssueStatus(input.Status)
	}

	issue := &domain.Issue{
		ReporterUserID: input.ReporterUserID,
		Type:           input.Type,
		Priority:       input.Priority,
		Title:          input.Title,
		Description:    input.Description,
		Address:        input.Address,
		City:           input.City,
		Landmark:       input.Landmark,
		Status:         status,
		ReportedDate:   time.Now().UTC(),
		Contact:        input.Contact,
		GPSLocation:    input.GPSLocation,
		CategoryID:     input.CategoryID,
	}

	created, err := s.repo.Create(ctx, issue)
	if err != nil {
		return nil, err
	}

	metrics.IssuesReportedTotal.Inc()
	return created, nil
}

func (s *IssueService) ListRecent(ctx context.Context) ([]*domain.Issue, error) {
	return s.repo.ListRecent(ctx, publicListLimit)
}
