package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// IssueFilter carries the admin list query parameters.
type IssueFilter struct {
	Status     string // optional: exact status match
	CategoryID int64  // optional: 0 = no filter
	Search     string // optional: partial match on title, description or city
	Limit      int    // max rows, capped by the repository
}

// IssuePatch carries the admin-mutable issue fields; nil = unchanged.
type IssuePatch struct {
	Title       *string
	Description *string
	Status      *string
	CategoryID  *int64
	Priority    *string
}

// IssueRepository defines persistence operations for issues.
type IssueRepository interface {
	Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error)
	// ListRecent returns up to limit issues, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.Issue, error)
	List(ctx context.Context, filter IssueFilter) ([]*domain.Issue, error)
	// Update applies the non-nil fields of patch. Returns
	// domain.ErrIssueNotFound when no row matches.
	Update(ctx context.Context, id int64, patch IssuePatch) error
	// Delete removes an issue. Returns domain.ErrIssueNotFound when no
	// row matches.
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.IssueStatus) (int64, error)
}
