package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type Response struct {
	ID                    string     `db:"id"`
	ProviderID            string     `db:"provider_id"`
	CustomerID            string     `db:"customer_id"`
	MenuDate              time.Time  `db:"menu_date"`
	MealType              string     `db:"meal_type"`
	Status                string     `db:"status"`
	Source                string     `db:"source"`
	IsAutoDetected        bool       `db:"is_auto_detected"`
	RespondedBeforeCutoff bool       `db:"responded_before_cutoff"`
	CutoffTimeUsed        *string    `db:"cutoff_time_used"`
	ResponseReceivedAt    *time.Time `db:"response_received_at"`
	CreatedAt             time.Time  `db:"created_at"`
	UpdatedAt             time.Time  `db:"updated_at"`
}

type MealPreference struct {
	ID         int64     `db:"id"`
	ProviderID string    `db:"provider_id"`
	MealType   string    `db:"meal_type"`
	Enabled    bool      `db:"enabled"`
	Price      int       `db:"price"`
	CutoffTime string    `db:"cutoff_time"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type ResponseAuditEntry struct {
	ID                    int64     `db:"id"`
	ResponseID            string    `db:"response_id"`
	OldStatus             string    `db:"old_status"`
	NewStatus             string    `db:"new_status"`
	Source                string    `db:"source"`
	RespondedBeforeCutoff bool      `db:"responded_before_cutoff"`
	CutoffTimeUsed        *string   `db:"cutoff_time_used"`
	Actor                 string    `db:"actor"`
	ChangedAt             time.Time `db:"changed_at"`
}
