package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
)

// AuditRepository implements ports.AuditRepository on PostgreSQL. The
// public contract is append and read only; nothing here ever mutates or
// removes an existing entry.
type AuditRepository struct {
	db *DB
}

func NewAuditRepository(db *DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	err := r.db.q(ctx).QueryRowContext(ctx,
		`INSERT INTO audit_logs (actor_id, action, entity_type, entity_id, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		entry.ActorID, entry.Action, entry.EntityType, entry.EntityID, entry.Details, entry.CreatedAt,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListRecent(ctx context.Context, limit int) ([]*domain.AuditLogView, error) {
	rows, err := r.db.q(ctx).QueryContext(ctx,
		`SELECT a.id, a.actor_id, a.action, COALESCE(a.entity_type, ''), a.entity_id,
			a.details, a.created_at, u.email
		 FROM audit_logs a
		 JOIN users u ON u.id = a.actor_id
		 ORDER BY a.created_at DESC, a.id DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.AuditLogView
	for rows.Next() {
		var (
			v        domain.AuditLogView
			entityID sql.NullInt64
			details  sql.NullString
		)
		err := rows.Scan(&v.ID, &v.ActorID, &v.Action, &v.EntityType, &entityID,
			&details, &v.CreatedAt, &v.ActorEmail)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		if entityID.Valid {
			v.EntityID = &entityID.Int64
		}
		if details.Valid {
			v.Details = &details.String
		}
		entries = append(entries, &v)
	}
	return entries, rows.Err()
}

func (r *AuditRepository) CountByActor(ctx context.Context, actorID int64) (int64, error) {
	var n int64
	err := r.db.q(ctx).QueryRowContext(ctx,
		`SELECT COUNT(*) FROM audit_logs WHERE actor_id = $1`, actorID).Scan(&n)
	return n, err
}
