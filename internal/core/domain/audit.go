package domain

import "time"

// AuditAction is the closed vocabulary of recorded administrative verbs.
type AuditAction string

const (
	ActionUpdateUser     AuditAction = "UPDATE_USER"
	ActionDeleteUser     AuditAction = "DELETE_USER"
	ActionUpdateIssue    AuditAction = "UPDATE_ISSUE"
	ActionDeleteIssue    AuditAction = "DELETE_ISSUE"
	ActionCreateCategory AuditAction = "CREATE_CATEGORY"
	ActionUpdateCategory AuditAction = "UPDATE_CATEGORY"
	ActionDeleteCategory AuditAction = "DELETE_CATEGORY"
	ActionUpdateSettings AuditAction = "UPDATE_SETTINGS"
)

// AuditEntry is one immutable record of an administrative mutation. The
// store exposes append and read only; no update or delete path exists.
type AuditEntry struct {
	ID         int64       `json:"id"`
	ActorID    int64       `json:"actor_id"`
	Action     AuditAction `json:"action"`
	EntityType string      `json:"entity_type,omitempty"`
	EntityID   *int64      `json:"entity_id,omitempty"`
	// Details holds a JSON snapshot of the fields that changed, nil when
	// nothing was captured or serialization failed.
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogView is an AuditEntry joined with the acting identity's email,
// the shape returned by the audit-log read endpoint.
type AuditLogView struct {
	AuditEntry
	ActorEmail string `json:"actor_email"`
}
