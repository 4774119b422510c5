package mongo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lorehub/lore-hub-api/internal/core/domain"
)

const auditCollection = "audit_log"

// AuditRepository appends admin mutation records to the audit_log collection.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

func (r *AuditRepository) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
