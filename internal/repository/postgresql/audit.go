package postgresql

import (
	"context"

	"github.com/mealdash/provider-service/internal/db"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/storage"
)

type ResponseAuditRepo struct {
	db db.DB
}

func NewResponseAuditRepo(db db.DB) storage.AuditRepository {
	return &ResponseAuditRepo{db: db}
}

func (r *ResponseAuditRepo) Create(ctx context.Context, entry *repository.ResponseAuditEntry) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO response_audit (
            response_id, old_status, new_status, source,
            responded_before_cutoff, cutoff_time_used, actor, changed_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, entry.ResponseID, entry.OldStatus, entry.NewStatus, entry.Source,
		entry.RespondedBeforeCutoff, entry.CutoffTimeUsed, entry.Actor, entry.ChangedAt)
	return err
}

func (r *ResponseAuditRepo) GetByResponseID(ctx context.Context, responseID string) ([]*repository.ResponseAuditEntry, error) {
	var entries []*repository.ResponseAuditEntry
	err := r.db.Select(ctx, &entries, `
        SELECT * FROM response_audit
        WHERE response_id = $1
        ORDER BY changed_at ASC
    `, responseID)
	return entries, err
}
