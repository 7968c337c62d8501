package service

import (
	"context"
	"encoding/json"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

const (
	recentActivityLimit = 20
	auditLogLimit       = 200
)

// AdminService implements the admin-gated surface. Every mutation and its
// audit entry run inside one transaction: both commit or both roll back,
// and the entry exists before the caller sees the success response.
type AdminService struct {
	users      ports.UserRepository
	issues     ports.IssueRepository
	categories ports.CategoryRepository
	settings   ports.SettingsRepository
	audit      ports.AuditRepository
	recorder   ports.AuditRecorder
	tx         ports.TxRunner
}

func NewAdminService(
	users ports.UserRepository,
	issues ports.IssueRepository,
	categories ports.CategoryRepository,
	settings ports.SettingsRepository,
	audit ports.AuditRepository,
	recorder ports.AuditRecorder,
	tx ports.TxRunner,
) *AdminService {
	return &AdminService{
		users:      users,
		issues:     issues,
		categories: categories,
		settings:   settings,
		audit:      audit,
		recorder:   recorder,
		tx:         tx,
	}
}

func (s *AdminService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	totalUsers, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalIssues, err := s.issues.Count(ctx)
	if err != nil {
		return nil, err
	}
	resolved, err := s.issues.CountByStatus(ctx, domain.IssueResolved)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.audit.ListRecent(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalUsers:     totalUsers,
		TotalIssues:    totalIssues,
		ResolvedIssues: resolved,
		PendingIssues:  totalIssues - resolved,
		Categories:     categories,
		RecentActivity: recent,
	}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) UpdateUser(ctx context.Context, actorID, id int64, patch ports.UserPatch) error {
	if patch.Role != nil && !domain.ValidRole(*patch.Role) {
		return domain.ErrValidation
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.UpdateProfile(ctx, id, patch); err != nil {
			return err
		}
		details := map[string]any{}
		if patch.Name != nil {
			details["name"] = *patch.Name
		}
		if patch.Role != nil {
			details["role"] = *patch.Role
		}
		if patch.Active != nil {
			details["active"] = *patch.Active
		}
		return s.recorder.Record(ctx, actorID, domain.ActionUpdateUser, "user", &id, details)
	})
}

func (s *AdminService) DeleteUser(ctx context.Context, actorID, id int64) error {
	// An identity referenced by audit history must stay resolvable.
	n, err := s.audit.CountByActor(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return domain.ErrUserHasAuditHistory
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Delete(ctx, id); err != nil {
			return err
		}
		return s.recorder.Record(ctx, actorID, domain.ActionDeleteUser, "user", &id, nil)
	})
}

func (s *AdminService) ListIssues(ctx context.Context, filter ports.IssueFilter) ([]*domain.Issue, error) {
	return s.issues.List(ctx, filter)
}

func (s *AdminService) UpdateIssue(ctx context.Context, actorID, id int64, patch ports.IssuePatch) error {
	if patch.Status != nil && !domain.ValidIssueStatus(*patch.Status) {
		return domain.ErrValidation
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.issues.Update(ctx, id, patch); err != nil {
			return err
		}
		details := map[string]any{}
		if patch.Title != nil {
			details["title"] = *patch.Title
		}
		if patch.Status != nil {
			details["status"] = *patch.Status
		}
		if patch.CategoryID != nil {
			details["category_id"] = *patch.CategoryID
		}
		if patch.Priority != nil {
			details["priority"] = *patch.Priority
		}
		return s.recorder.Record(ctx, actorID, domain.ActionUpdateIssue, "issue", &id, details)
	})
}

func (s *AdminService) DeleteIssue(ctx context.Context, actorID, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.issues.Delete(ctx, id); err != nil {
			return err
		}
		return s.recorder.Record(ctx, actorID, domain.ActionDeleteIssue, "issue", &id, nil)
	})
}

func (s *AdminService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *AdminService) CreateCategory(ctx context.Context, actorID int64, input ports.CreateCategoryInput) (*domain.Category, error) {
	if input.Name == "" {
		return nil, domain.ErrValidation
	}

	var created *domain.Category
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.categories.Create(ctx, &domain.Category{
			Name:        input.Name,
			Description: input.Description,
			Active:      true,
		})
		if err != nil {
			return err
		}
		return s.recorder.Record(ctx, actorID, domain.ActionCreateCategory, "category", &created.ID, map[string]any{"name": created.Name})
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, actorID, id int64, patch ports.CategoryPatch) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.categories.Update(ctx, id, patch); err != nil {
			return err
		}
		details := map[string]any{}
		if patch.Name != nil {
			details["name"] = *patch.Name
		}
		if patch.Description != nil {
			details["description"] = *patch.Description
		}
		if patch.Active != nil {
			details["active"] = *patch.Active
		}
		return s.recorder.Record(ctx, actorID, domain.ActionUpdateCategory, "category", &id, details)
	})
}

func (s *AdminService) DeleteCategory(ctx context.Context, actorID, id int64) error {
	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.categories.Delete(ctx, id); err != nil {
			return err
		}
		return s.recorder.Record(ctx, actorID, domain.ActionDeleteCategory, "category", &id, nil)
	})
}

func (s *AdminService) GetSettings(ctx context.Context) (map[string]string, error) {
	return s.settings.GetAll(ctx)
}

func (s *AdminService) UpdateSettings(ctx context.Context, actorID int64, values map[string]any) error {
	if len(values) == 0 {
		return domain.ErrValidation
	}

	return s.tx.RunInTx(ctx, func(ctx context.Context) error {
		for key, value := range values {
			stored, err := settingValue(value)
			if err != nil {
				return err
			}
			if err := s.settings.Upsert(ctx, key, stored); err != nil {
				return err
			}
		}
		// One entry for the whole batch; settings are a collection-level
		// target, so no entity id.
		return s.recorder.Record(ctx, actorID, domain.ActionUpdateSettings, "settings", nil, values)
	})
}

func (s *AdminService) ListAuditLogs(ctx context.Context) ([]*domain.AuditLogView, error) {
	return s.audit.ListRecent(ctx, auditLogLimit)
}

// settingValue flattens a JSON value into its stored string form. Strings
// are stored verbatim, everything else as its JSON encoding.
func settingValue(v any) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
