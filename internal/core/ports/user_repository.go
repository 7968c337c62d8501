package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// UserPatch carries the mutable profile fields of an identity. Nil means
// "leave unchanged". Email and password hash are deliberately absent: they
// cannot be changed through this path.
type UserPatch struct {
	Name   *string
	Role   *string
	Active *bool
}

// UserRepository is the persistence boundary for identities.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	// Create inserts a new identity and returns it with its assigned id.
	// Returns domain.ErrEmailTaken on a duplicate email.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	// UpdateProfile applies the non-nil fields of patch. Returns
	// domain.ErrUserNotFound when no row matches.
	UpdateProfile(ctx context.Context, id int64, patch UserPatch) error
	// Delete removes an identity. Returns domain.ErrUserNotFound when no
	// row matches and domain.ErrUserHasAuditHistory when audit entries
	// still reference it.
	Delete(ctx context.Context, id int64) error
}
