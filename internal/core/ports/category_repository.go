package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// CategoryPatch carries the mutable category fields; nil = unchanged.
type CategoryPatch struct {
	Name        *string
	Description *string
	Active      *bool
}

// CategoryRepository defines persistence operations for issue categories.
type CategoryRepository interface {
	// Create inserts a category. Returns domain.ErrCategoryExists on a
	// duplicate name.
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, id int64, patch CategoryPatch) error
	Delete(ctx context.Context, id int64) error
}
