package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

type AuthService interface {
	// Register creates a user-role identity. Name defaults to the email
	// local part when empty.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token plus
	// the identity. Any failure is domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
