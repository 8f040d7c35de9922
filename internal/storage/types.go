package storage

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

type MealType string

const (
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

func (m MealType) Valid() bool {
	return m == MealLunch || m == MealDinner
}

type Status string

const (
	StatusPending Status = "pending"
	StatusYes     Status = "yes"
	StatusNo      Status = "no"
)

func (s Status) Valid() bool {
	return s == StatusPending || s == StatusYes || s == StatusNo
}

type Source string

const (
	SourceManual   Source = "manual"
	SourceAuto     Source = "auto"
	SourceCustomer Source = "customer"
)

func (s Source) Valid() bool {
	return s == SourceManual || s == SourceAuto || s == SourceCustomer
}

type Response struct {
	ID                    string     `json:"id"`
	ProviderID            string     `json:"providerId"`
	CustomerID            string     `json:"customerId"`
	MenuDate              string     `json:"menuDate"`
	MealType              MealType   `json:"mealType"`
	Status                Status     `json:"status"`
	Source                Source     `json:"source"`
	IsAutoDetected        bool       `json:"isAutoDetected"`
	RespondedBeforeCutoff bool       `json:"respondedBeforeCutoff"`
	CutoffTimeUsed        string     `json:"cutoffTimeUsed,omitempty"`
	ResponseReceivedAt    *time.Time `json:"responseReceivedAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type MealPreference struct {
	MealType   MealType `json:"mealType"`
	Enabled    bool     `json:"enabled"`
	Price      int      `json:"price"`
	CutoffTime string   `json:"cutoffTime"`
}

type AuditEntry struct {
	ResponseID            string    `json:"responseId"`
	OldStatus             Status    `json:"oldStatus"`
	NewStatus             Status    `json:"newStatus"`
	Source                Source    `json:"source"`
	RespondedBeforeCutoff bool      `json:"respondedBeforeCutoff"`
	CutoffTimeUsed        string    `json:"cutoffTimeUsed,omitempty"`
	Actor                 string    `json:"actor,omitempty"`
	ChangedAt             time.Time `json:"changedAt"`
}

// PastDateError rejects any attempt to modify a response whose menu
// date is strictly before the current calendar day.
type PastDateError struct {
	MenuDate string
}

func (e *PastDateError) Error() string {
	return "Cannot modify responses for past dates"
}

// CutoffPassedError rejects a manual status change after the
// provider's cutoff for today has elapsed.
type CutoffPassedError struct {
	CutoffTime string
	Reason     string
}

func (e *CutoffPassedError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("Cutoff time %s has passed", e.CutoffTime)
}

// CutoffNotReachedError refuses auto-confirmation while today's cutoff
// has not yet elapsed.
type CutoffNotReachedError struct {
	CutoffTime string
}

func (e *CutoffNotReachedError) Error() string {
	return fmt.Sprintf("cutoff time %s not reached, no action taken", e.CutoffTime)
}

// FutureDateError refuses auto-confirmation of not-yet-due meals.
type FutureDateError struct {
	MenuDate string
}

func (e *FutureDateError) Error() string {
	return "cannot auto-confirm responses for future dates"
}

// ValidationError covers malformed input: unknown meal types,
// statuses a caller may not set, bad identifiers.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
