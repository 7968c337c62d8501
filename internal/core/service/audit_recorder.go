package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/civicdesk/civicdesk-api/internal/api/metrics"
	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

// AuditRecorder serializes mutation details and appends audit entries.
type AuditRecorder struct {
	repo ports.AuditRepository
	log  zerolog.Logger
}

func NewAuditRecorder(repo ports.AuditRepository, log zerolog.Logger) *AuditRecorder {
	return &AuditRecorder{repo: repo, log: log}
}

// Record appends one audit entry for an admin mutation. A details value
// that cannot be serialized never fails the triggering mutation: the entry
// is still written with null details and the marshal failure is logged.
func (r *AuditRecorder) Record(ctx context.Context, actorID int64, action domain.AuditAction, entityType string, entityID *int64, details any) error {
	entry := &domain.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		CreatedAt:  time.Now().UTC(),
	}

	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			r.log.Error().Err(err).
				Str("action", string(action)).
				Int64("actor_id", actorID).
				Msg("audit details not serializable, recording without details")
		} else {
			s := string(data)
			entry.Details = &s
		}
	}

	if err := r.repo.Append(ctx, entry); err != nil {
		return err
	}

	metrics.AuditEntriesTotal.WithLabelValues(string(action)).Inc()
	return nil
}
