package domain

import "errors"

var (
	// ErrInvalidCredentials covers unknown email, wrong password and
	// inactive accounts alike. Login failures are deliberately
	// indistinguishable to prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound     = errors.New("user not found")
	ErrIssueNotFound    = errors.New("issue not found")
	ErrCategoryNotFound = errors.New("category not found")

	ErrEmailTaken     = errors.New("email already registered")
	ErrCategoryExists = errors.New("category already exists")

	// ErrUserHasAuditHistory is returned when deleting an identity that
	// prior audit entries reference as their actor. Audit rows must keep a
	// resolvable actor, so the delete is refused.
	ErrUserHasAuditHistory = errors.New("user is referenced by audit history")

	ErrValidation = errors.New("validation failed")
)
