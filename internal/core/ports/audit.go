package ports

import (
	"context"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder accepts audit entries for asynchronous persistence.
// Recording must never block or fail an admin operation.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
