package ports

import (
	"context"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// AuditRepository is the append-only persistence boundary for audit
// entries. There is intentionally no update or delete operation.
type AuditRepository interface {
	Append(ctx context.Context, entry *domain.AuditEntry) error
	// ListRecent returns up to limit entries newest first, each joined
	// with the acting identity's email.
	ListRecent(ctx context.Context, limit int) ([]*domain.AuditLogView, error)
	// CountByActor reports how many entries reference the given actor.
	CountByActor(ctx context.Context, actorID int64) (int64, error)
}

// AuditRecorder serializes mutation details and appends one audit entry.
// Record is awaited by callers before their response is sent so that a
// mutation's success is never observable before its audit entry exists.
type AuditRecorder interface {
	Record(ctx context.Context, actorID int64, action domain.AuditAction, entityType string, entityID *int64, details any) error
}
