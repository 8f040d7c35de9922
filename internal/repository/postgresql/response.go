package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/mealdash/provider-service/internal/db"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/storage"
)

// pendingPredicate is shared by the pending listing, the pending count
// and the auto-confirm selection so they can never disagree.
const pendingPredicate = "provider_id = $1 AND menu_date = $2 AND meal_type = $3 AND status = 'pending'"

type ResponseRepo struct {
	db db.DB
}

func NewResponseRepo(db db.DB) storage.ResponseRepository {
	return &ResponseRepo{db: db}
}

func (r *ResponseRepo) Create(ctx context.Context, resp *repository.Response) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO meal_responses (
            id, provider_id, customer_id, menu_date, meal_type, status, source,
            is_auto_detected, responded_before_cutoff, cutoff_time_used,
            response_received_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        ON CONFLICT (provider_id, customer_id, menu_date, meal_type) DO NOTHING
    `, resp.ID, resp.ProviderID, resp.CustomerID, resp.MenuDate, resp.MealType, resp.Status, resp.Source,
		resp.IsAutoDetected, resp.RespondedBeforeCutoff, resp.CutoffTimeUsed,
		resp.ResponseReceivedAt, resp.CreatedAt, resp.UpdatedAt)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ResponseRepo) GetByKey(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType string) (*repository.Response, error) {
	var resp repository.Response
	err := r.db.Get(ctx, &resp, `
        SELECT * FROM meal_responses
        WHERE provider_id = $1 AND customer_id = $2 AND menu_date = $3 AND meal_type = $4
    `, providerID, customerID, menuDate, mealType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &resp, nil
}

func (r *ResponseRepo) GetDaily(ctx context.Context, providerID string, menuDate time.Time, mealType string) ([]*repository.Response, error) {
	var responses []*repository.Response
	err := r.db.Select(ctx, &responses, `
        SELECT * FROM meal_responses
        WHERE provider_id = $1 AND menu_date = $2 AND meal_type = $3
        ORDER BY customer_id ASC
    `, providerID, menuDate, mealType)
	return responses, err
}

func (r *ResponseRepo) GetPending(ctx context.Context, providerID string, menuDate time.Time, mealType string) ([]*repository.Response, error) {
	var responses []*repository.Response
	err := r.db.Select(ctx, &responses,
		"SELECT * FROM meal_responses WHERE "+pendingPredicate,
		providerID, menuDate, mealType)
	return responses, err
}

func (r *ResponseRepo) CountPending(ctx context.Context, providerID string, menuDate time.Time, mealType string) (int, error) {
	var count int
	err := r.db.ExecQueryRow(ctx,
		"SELECT COUNT(*) FROM meal_responses WHERE "+pendingPredicate,
		providerID, menuDate, mealType).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending responses: %w", err)
	}
	return count, nil
}

func (r *ResponseRepo) Update(ctx context.Context, resp *repository.Response) error {
	_, err := r.db.Exec(ctx, `
        UPDATE meal_responses
        SET
            status = $1,
            source = $2,
            is_auto_detected = $3,
            responded_before_cutoff = $4,
            cutoff_time_used = $5,
            response_received_at = $6,
            updated_at = $7
        WHERE id = $8
    `, resp.Status, resp.Source, resp.IsAutoDetected, resp.RespondedBeforeCutoff,
		resp.CutoffTimeUsed, resp.ResponseReceivedAt, resp.UpdatedAt, resp.ID)
	return err
}

// ConfirmIfPending is the engine's conditional write: the row only
// transitions if its status is still pending at write time, so a
// manual edit that raced in first always wins.
func (r *ResponseRepo) ConfirmIfPending(ctx context.Context, id, cutoffTime string, now time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
        UPDATE meal_responses
        SET
            status = 'yes',
            source = 'auto',
            is_auto_detected = TRUE,
            responded_before_cutoff = FALSE,
            cutoff_time_used = $1,
            response_received_at = $2,
            updated_at = $2
        WHERE id = $3 AND status = 'pending'
    `, cutoffTime, now, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
