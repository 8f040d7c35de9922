//go:generate mockgen -source ./responses.go -destination=./mocks/storage.go -package=mock_storage
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealdash/provider-service/internal/metrics"
	"github.com/mealdash/provider-service/internal/repository"
	"github.com/mealdash/provider-service/internal/timing"
)

type ResponseRepository interface {
	Create(ctx context.Context, resp *repository.Response) (bool, error)
	GetByKey(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType string) (*repository.Response, error)
	GetDaily(ctx context.Context, providerID string, menuDate time.Time, mealType string) ([]*repository.Response, error)
	GetPending(ctx context.Context, providerID string, menuDate time.Time, mealType string) ([]*repository.Response, error)
	CountPending(ctx context.Context, providerID string, menuDate time.Time, mealType string) (int, error)
	Update(ctx context.Context, resp *repository.Response) error
	ConfirmIfPending(ctx context.Context, id, cutoffTime string, now time.Time) (bool, error)
}

type PreferenceRepository interface {
	GetByProvider(ctx context.Context, providerID string) ([]*repository.MealPreference, error)
}

type AuditRepository interface {
	Create(ctx context.Context, entry *repository.ResponseAuditEntry) error
	GetByResponseID(ctx context.Context, responseID string) ([]*repository.ResponseAuditEntry, error)
}

// ResponseStorage owns the response lifecycle: manual status changes,
// cutoff-based auto-confirmation and the read projections the provider
// screens are built on.
type ResponseStorage struct {
	responses ResponseRepository
	prefs     PreferenceRepository
	audit     AuditRepository
	logger    *zap.Logger

	timeNow func() time.Time
}

func NewResponseStorage(
	responses ResponseRepository,
	prefs PreferenceRepository,
	audit AuditRepository,
	logger *zap.Logger,
) *ResponseStorage {
	return &ResponseStorage{
		responses: responses,
		prefs:     prefs,
		audit:     audit,
		logger:    logger,
		timeNow:   time.Now,
	}
}

// TimingSnapshot is the per-provider timing projection for today.
type TimingSnapshot struct {
	Lunch  *timing.Info `json:"lunch,omitempty"`
	Dinner *timing.Info `json:"dinner,omitempty"`
}

// MealService groups the provider's configured meal preferences.
type MealService struct {
	Lunch  *MealPreference `json:"lunch,omitempty"`
	Dinner *MealPreference `json:"dinner,omitempty"`
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SetStatus applies one explicit status change to the response
// identified by (providerID, customerID, menuDate, mealType).
//
// Guards run in order: past-date immutability first, then cutoff
// enforcement for today's date. Timing is re-resolved against the live
// preference on every call; a stale snapshot held by the caller is
// never trusted.
func (s *ResponseStorage) SetStatus(
	ctx context.Context,
	providerID, customerID string,
	menuDate time.Time,
	mealType MealType,
	newStatus Status,
	source Source,
	actor string,
) (*Response, error) {
	if !mealType.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}
	if newStatus != StatusYes && newStatus != StatusNo {
		return nil, &ValidationError{Message: fmt.Sprintf("status %q is not a valid manual target", newStatus)}
	}
	if source != SourceManual && source != SourceCustomer {
		return nil, &ValidationError{Message: fmt.Sprintf("source %q is not a valid manual source", source)}
	}

	now := s.timeNow()
	today := dayOf(now)
	day := dayOf(menuDate)

	if day.Before(today) {
		return nil, &PastDateError{MenuDate: menuDate.Format(DateLayout)}
	}

	pref, err := s.preferenceFor(ctx, providerID, mealType)
	if err != nil {
		return nil, err
	}

	if day.Equal(today) {
		info, err := timing.Resolve(pref.CutoffTime, pref.Enabled, string(mealType), now)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve timing: %w", err)
		}
		if !info.CanRespond {
			metrics.CutoffRejectionsTotal.Inc()
			return nil, &CutoffPassedError{CutoffTime: info.CutoffTime, Reason: info.Reason}
		}
	}

	rec, err := s.responses.GetByKey(ctx, providerID, customerID, menuDate, string(mealType))
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("response not found")
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	oldStatus := rec.Status
	receivedAt := now

	rec.Status = string(newStatus)
	rec.Source = string(source)
	rec.IsAutoDetected = false
	rec.ResponseReceivedAt = &receivedAt
	rec.UpdatedAt = now

	// cutoffTimeUsed and respondedBeforeCutoff document the original
	// transition out of pending; a later manual re-edit leaves them be.
	if oldStatus == string(StatusPending) {
		cutoff := pref.CutoffTime
		rec.CutoffTimeUsed = &cutoff
		rec.RespondedBeforeCutoff = true
	}

	if err := s.responses.Update(ctx, rec); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("set_status").Inc()
		return nil, fmt.Errorf("failed to update response: %w", err)
	}

	if err := s.audit.Create(ctx, &repository.ResponseAuditEntry{
		ResponseID:            rec.ID,
		OldStatus:             oldStatus,
		NewStatus:             rec.Status,
		Source:                rec.Source,
		RespondedBeforeCutoff: rec.RespondedBeforeCutoff,
		CutoffTimeUsed:        rec.CutoffTimeUsed,
		Actor:                 actor,
		ChangedAt:             now,
	}); err != nil {
		return nil, fmt.Errorf("failed to add response audit entry: %w", err)
	}

	metrics.ResponsesUpdatedTotal.Inc()

	resp := toStorageResponse(rec)
	return &resp, nil
}

// AutoConfirmPending transitions every still-pending response for
// (providerID, menuDate, mealType) to "yes" once the cutoff has
// elapsed. Each record is re-checked at write time; a manual edit that
// landed first wins and is excluded from the returned count.
//
// Invoking it again right away selects nothing and returns zero.
func (s *ResponseStorage) AutoConfirmPending(
	ctx context.Context,
	providerID string,
	menuDate time.Time,
	mealType MealType,
) (int, error) {
	if !mealType.Valid() {
		return 0, &ValidationError{Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}

	now := s.timeNow()
	today := dayOf(now)
	day := dayOf(menuDate)

	if day.After(today) {
		return 0, &FutureDateError{MenuDate: menuDate.Format(DateLayout)}
	}

	pref, err := s.preferenceFor(ctx, providerID, mealType)
	if err != nil {
		return 0, err
	}

	// Past dates are by definition already past their cutoff.
	if day.Equal(today) {
		info, err := timing.Resolve(pref.CutoffTime, pref.Enabled, string(mealType), now)
		if err != nil {
			return 0, fmt.Errorf("failed to resolve timing: %w", err)
		}
		if info.CanRespond {
			return 0, &CutoffNotReachedError{CutoffTime: pref.CutoffTime}
		}
	}

	pending, err := s.responses.GetPending(ctx, providerID, menuDate, string(mealType))
	if err != nil {
		return 0, fmt.Errorf("failed to get pending responses: %w", err)
	}

	cutoff := pref.CutoffTime
	processed := 0
	for _, rec := range pending {
		confirmed, err := s.responses.ConfirmIfPending(ctx, rec.ID, cutoff, now)
		if err != nil {
			// Per-record commit semantics: one record failing never
			// rolls back the others.
			metrics.OperationErrorsTotal.WithLabelValues("auto_confirm").Inc()
			s.logger.Warn("auto-confirm write failed",
				zap.String("response_id", rec.ID),
				zap.Error(err))
			continue
		}
		if !confirmed {
			// A manual edit landed between selection and write.
			continue
		}

		processed++
		if err := s.audit.Create(ctx, &repository.ResponseAuditEntry{
			ResponseID:            rec.ID,
			OldStatus:             string(StatusPending),
			NewStatus:             string(StatusYes),
			Source:                string(SourceAuto),
			RespondedBeforeCutoff: false,
			CutoffTimeUsed:        &cutoff,
			Actor:                 "auto-confirm",
			ChangedAt:             now,
		}); err != nil {
			s.logger.Warn("auto-confirm audit write failed",
				zap.String("response_id", rec.ID),
				zap.Error(err))
		}
	}

	metrics.AutoConfirmedTotal.Add(float64(processed))
	return processed, nil
}

// OpenResponseWindow creates pending responses for the given customers
// on (menuDate, mealType). Existing records are left untouched.
func (s *ResponseStorage) OpenResponseWindow(
	ctx context.Context,
	providerID string,
	customerIDs []string,
	menuDate time.Time,
	mealType MealType,
) (int, error) {
	if !mealType.Valid() {
		return 0, &ValidationError{Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}
	if len(customerIDs) == 0 {
		return 0, &ValidationError{Message: "no customer ids given"}
	}

	now := s.timeNow()
	if dayOf(menuDate).Before(dayOf(now)) {
		return 0, &PastDateError{MenuDate: menuDate.Format(DateLayout)}
	}

	created := 0
	for _, customerID := range customerIDs {
		inserted, err := s.responses.Create(ctx, &repository.Response{
			ID:         uuid.NewString(),
			ProviderID: providerID,
			CustomerID: customerID,
			MenuDate:   dayOf(menuDate),
			MealType:   string(mealType),
			Status:     string(StatusPending),
			Source:     string(SourceManual),
			CreatedAt:  now,
			UpdatedAt:  now,
		})
		if err != nil {
			return created, fmt.Errorf("failed to create response for customer %s: %w", customerID, err)
		}
		if inserted {
			created++
		}
	}
	return created, nil
}

// GetResponse looks up a single response by its natural key.
func (s *ResponseStorage) GetResponse(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType MealType) (*Response, error) {
	rec, err := s.responses.GetByKey(ctx, providerID, customerID, menuDate, string(mealType))
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("response not found")
		}
		return nil, fmt.Errorf("failed to get response: %w", err)
	}
	resp := toStorageResponse(rec)
	return &resp, nil
}

// GetDailyResponses is a read projection, no side effects.
func (s *ResponseStorage) GetDailyResponses(ctx context.Context, providerID string, menuDate time.Time, mealType MealType) ([]Response, error) {
	if !mealType.Valid() {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}

	recs, err := s.responses.GetDaily(ctx, providerID, menuDate, string(mealType))
	if err != nil {
		return nil, fmt.Errorf("failed to get daily responses: %w", err)
	}

	out := make([]Response, len(recs))
	for i, rec := range recs {
		out[i] = toStorageResponse(rec)
	}
	return out, nil
}

// GetPendingCount shares its selection predicate with AutoConfirmPending
// so provider-facing counts never disagree with what a confirmation run
// would process.
func (s *ResponseStorage) GetPendingCount(ctx context.Context, providerID string, menuDate time.Time, mealType MealType) (int, error) {
	if !mealType.Valid() {
		return 0, &ValidationError{Message: fmt.Sprintf("unknown meal type %q", mealType)}
	}

	count, err := s.responses.CountPending(ctx, providerID, menuDate, string(mealType))
	if err != nil {
		return 0, fmt.Errorf("failed to count pending responses: %w", err)
	}
	return count, nil
}

// GetTimingInfo resolves today's timing snapshot for every configured
// meal type of the provider.
func (s *ResponseStorage) GetTimingInfo(ctx context.Context, providerID string) (*TimingSnapshot, error) {
	prefs, err := s.prefs.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	now := s.timeNow()
	snapshot := &TimingSnapshot{}
	for _, pref := range prefs {
		info, err := timing.Resolve(pref.CutoffTime, pref.Enabled, pref.MealType, now)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve timing for %s: %w", pref.MealType, err)
		}
		switch MealType(pref.MealType) {
		case MealLunch:
			snapshot.Lunch = &info
		case MealDinner:
			snapshot.Dinner = &info
		}
	}
	return snapshot, nil
}

// GetPreferences returns the provider's meal service configuration.
func (s *ResponseStorage) GetPreferences(ctx context.Context, providerID string) (*MealService, error) {
	prefs, err := s.prefs.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	svc := &MealService{}
	for _, pref := range prefs {
		p := &MealPreference{
			MealType:   MealType(pref.MealType),
			Enabled:    pref.Enabled,
			Price:      pref.Price,
			CutoffTime: pref.CutoffTime,
		}
		switch p.MealType {
		case MealLunch:
			svc.Lunch = p
		case MealDinner:
			svc.Dinner = p
		}
	}
	return svc, nil
}

// GetResponseAudit returns the transition trail for one response.
func (s *ResponseStorage) GetResponseAudit(ctx context.Context, responseID string) ([]AuditEntry, error) {
	recs, err := s.audit.GetByResponseID(ctx, responseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get response audit: %w", err)
	}

	out := make([]AuditEntry, len(recs))
	for i, rec := range recs {
		out[i] = AuditEntry{
			ResponseID:            rec.ResponseID,
			OldStatus:             Status(rec.OldStatus),
			NewStatus:             Status(rec.NewStatus),
			Source:                Source(rec.Source),
			RespondedBeforeCutoff: rec.RespondedBeforeCutoff,
			Actor:                 rec.Actor,
			ChangedAt:             rec.ChangedAt,
		}
		if rec.CutoffTimeUsed != nil {
			out[i].CutoffTimeUsed = *rec.CutoffTimeUsed
		}
	}
	return out, nil
}

func (s *ResponseStorage) preferenceFor(ctx context.Context, providerID string, mealType MealType) (*repository.MealPreference, error) {
	prefs, err := s.prefs.GetByProvider(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	for _, pref := range prefs {
		if pref.MealType == string(mealType) {
			return pref, nil
		}
	}
	return nil, &ValidationError{Message: fmt.Sprintf("no %s preference configured for provider", mealType)}
}

func toStorageResponse(rec *repository.Response) Response {
	resp := Response{
		ID:                    rec.ID,
		ProviderID:            rec.ProviderID,
		CustomerID:            rec.CustomerID,
		MenuDate:              rec.MenuDate.Format(DateLayout),
		MealType:              MealType(rec.MealType),
		Status:                Status(rec.Status),
		Source:                Source(rec.Source),
		IsAutoDetected:        rec.IsAutoDetected,
		RespondedBeforeCutoff: rec.RespondedBeforeCutoff,
		ResponseReceivedAt:    rec.ResponseReceivedAt,
		CreatedAt:             rec.CreatedAt,
		UpdatedAt:             rec.UpdatedAt,
	}
	if rec.CutoffTimeUsed != nil {
		resp.CutoffTimeUsed = *rec.CutoffTimeUsed
	}
	return resp
}
