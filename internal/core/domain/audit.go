package domain

import "time"

// AuditAction identifies the admin mutation recorded by an audit entry.
type AuditAction string

const (
	AuditUserCreated AuditAction = "user_created"
	AuditUserUpdated AuditAction = "user_updated"
	AuditUserDeleted AuditAction = "user_deleted"
)

// AuditEntry records a single admin mutation for the audit trail.
type AuditEntry struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	Action    AuditAction `json:"action" bson:"action"`
	ActorID   string      `json:"actor_id" bson:"actor_id"`
	TargetID  string      `json:"target_id" bson:"target_id"`
	Detail    string      `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
