package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// DashboardStats is the aggregate view behind GET /api/admin/stats.
type DashboardStats struct {
	TotalUsers     int64                  `json:"totalUsers"`
	TotalIssues    int64                  `json:"totalIssues"`
	ResolvedIssues int64                  `json:"resolvedIssues"`
	PendingIssues  int64                  `json:"pendingIssues"`
	Categories     []*domain.Category     `json:"categories"`
	RecentActivity []*domain.AuditLogView `json:"recentActivity"`
}

// CreateCategoryInput carries the fields for a new category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// AdminService covers every admin-gated operation. Each mutation takes the
// acting identity's id and produces exactly one audit entry on success.
type AdminService interface {
	Stats(ctx context.Context) (*DashboardStats, error)

	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, actorID, id int64, patch UserPatch) error
	DeleteUser(ctx context.Context, actorID, id int64) error

	ListIssues(ctx context.Context, filter IssueFilter) ([]*domain.Issue, error)
	UpdateIssue(ctx context.Context, actorID, id int64, patch IssuePatch) error
	DeleteIssue(ctx context.Context, actorID, id int64) error

	ListCategories(ctx context.Context) ([]*domain.Category, error)
	CreateCategory(ctx context.Context, actorID int64, input CreateCategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, actorID, id int64, patch CategoryPatch) error
	DeleteCategory(ctx context.Context, actorID, id int64) error

	GetSettings(ctx context.Context) (map[string]string, error)
	UpdateSettings(ctx context.Context, actorID int64, values map[string]any) error

	ListAuditLogs(ctx context.Context) ([]*domain.AuditLogView, error)
}
