// Package client is a Go client for the provider response API. It
// reproduces the decision logic the provider screens apply defensively
// on-device: the past-date guard and the pre-flight cutoff check run
// locally before any mutating network call, and timing is re-fetched
// fresh for every mutation rather than reused from an earlier
// snapshot.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/mealdash/provider-service/internal/suggest"
	"github.com/mealdash/provider-service/internal/timing"
)

const dateLayout = "2006-01-02"

type Credentials struct {
	Username string
	Password string
}

type Client struct {
	baseURL string
	creds   Credentials
	readHC  *http.Client
	writeHC *http.Client
	tracker *suggest.Tracker

	timeNow func() time.Time
}

func New(baseURL string, creds Credentials) *Client {
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		readHC:  &http.Client{Timeout: 5 * time.Second},
		// Mutating calls use a uniform 10-second timeout.
		writeHC: &http.Client{Timeout: 10 * time.Second},
		tracker: suggest.NewTracker(),
		timeNow: time.Now,
	}
}

type Response struct {
	ID                    string     `json:"id"`
	ProviderID            string     `json:"providerId"`
	CustomerID            string     `json:"customerId"`
	MenuDate              string     `json:"menuDate"`
	MealType              string     `json:"mealType"`
	Status                string     `json:"status"`
	Source                string     `json:"source"`
	IsAutoDetected        bool       `json:"isAutoDetected"`
	RespondedBeforeCutoff bool       `json:"respondedBeforeCutoff"`
	CutoffTimeUsed        string     `json:"cutoffTimeUsed,omitempty"`
	ResponseReceivedAt    *time.Time `json:"responseReceivedAt,omitempty"`
}

type TimingSnapshot struct {
	Lunch  *timing.Info `json:"lunch,omitempty"`
	Dinner *timing.Info `json:"dinner,omitempty"`
}

type MealPreference struct {
	MealType   string `json:"mealType"`
	Enabled    bool   `json:"enabled"`
	Price      int    `json:"price"`
	CutoffTime string `json:"cutoffTime"`
}

type MealService struct {
	Lunch  *MealPreference `json:"lunch,omitempty"`
	Dinner *MealPreference `json:"dinner,omitempty"`
}

// PastDateError is raised locally, before any network call.
type PastDateError struct {
	MenuDate string
}

func (e *PastDateError) Error() string {
	return "Cannot modify responses for past dates"
}

// CutoffPassedError carries the cutoff time verbatim; when the server
// rejected the call its cutoff is authoritative over the local clock.
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

type CutoffNotReachedError struct {
	CutoffTime string
}

func (e *CutoffNotReachedError) Error() string {
	return fmt.Sprintf("cutoff time %s not reached, no action taken", e.CutoffTime)
}

type apiError struct {
	Message    string `json:"message"`
	CutoffTime string `json:"cutoffTime,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *apiError       `json:"error,omitempty"`
}

func (c *Client) GetPreferences(ctx context.Context) (*MealService, error) {
	var data struct {
		MealService MealService `json:"mealService"`
	}
	if err := c.get(ctx, "/Provider/preferences", nil, &data); err != nil {
		return nil, err
	}
	return &data.MealService, nil
}

func (c *Client) GetDailyResponses(ctx context.Context, providerID string, menuDate time.Time, mealType string) ([]Response, error) {
	var data struct {
		Responses []Response `json:"responses"`
	}
	q := url.Values{}
	q.Set("providerId", providerID)
	q.Set("date", menuDate.Format(dateLayout))
	q.Set("mealType", mealType)
	if err := c.get(ctx, "/responses/daily", q, &data); err != nil {
		return nil, err
	}
	return data.Responses, nil
}

func (c *Client) GetTimingInfo(ctx context.Context, providerID string) (*TimingSnapshot, error) {
	var data struct {
		Timing TimingSnapshot `json:"timing"`
	}
	q := url.Values{}
	q.Set("providerId", providerID)
	if err := c.get(ctx, "/responses/timing", q, &data); err != nil {
		return nil, err
	}
	return &data.Timing, nil
}

func (c *Client) GetPendingCount(ctx context.Context, providerID string, menuDate time.Time, mealType string) (int, error) {
	var data struct {
		PendingCount int `json:"pendingCount"`
	}
	q := url.Values{}
	q.Set("providerId", providerID)
	q.Set("date", menuDate.Format(dateLayout))
	q.Set("mealType", mealType)
	if err := c.get(ctx, "/responses/pending", q, &data); err != nil {
		return 0, err
	}
	return data.PendingCount, nil
}

// SetResponse applies a manual yes/no for one customer. The past-date
// guard runs locally; for today's date a fresh timing snapshot is
// fetched and checked before the mutation is sent.
func (c *Client) SetResponse(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType, status, source string) (*Response, error) {
	now := c.timeNow()
	if beforeToday(menuDate, now) {
		return nil, &PastDateError{MenuDate: menuDate.Format(dateLayout)}
	}

	if sameDay(menuDate, now) {
		snapshot, err := c.GetTimingInfo(ctx, providerID)
		if err != nil {
			return nil, err
		}
		if info := snapshot.mealInfo(mealType); info != nil && !info.CanRespond {
			return nil, &CutoffPassedError{CutoffTime: info.CutoffTime, Reason: info.Reason}
		}
	}

	body := map[string]string{
		"providerId": providerID,
		"customerId": customerID,
		"menuDate":   menuDate.Format(dateLayout),
		"mealType":   mealType,
		"status":     status,
		"source":     source,
	}

	var data struct {
		Response Response `json:"response"`
	}
	if err := c.post(ctx, "/response", body, &data); err != nil {
		return nil, err
	}
	return &data.Response, nil
}

// AutoConfirmPending asks the server to confirm every still-pending
// response for the given day and meal.
func (c *Client) AutoConfirmPending(ctx context.Context, providerID string, menuDate time.Time, mealType string) (int, error) {
	body := map[string]string{
		"providerId": providerID,
		"date":       menuDate.Format(dateLayout),
		"mealType":   mealType,
	}

	var data struct {
		ProcessedCount int `json:"processedCount"`
	}
	if err := c.post(ctx, "/responses/auto-confirm-pending", body, &data); err != nil {
		return 0, err
	}
	return data.ProcessedCount, nil
}

// SuggestAutoConfirm implements the suggest-once trigger policy: it
// reports whether the UI should surface an auto-confirm prompt for
// today's mealType, at most once per session per (provider, date,
// meal). It never mutates anything.
func (c *Client) SuggestAutoConfirm(ctx context.Context, providerID, mealType string) (bool, int, error) {
	snapshot, err := c.GetTimingInfo(ctx, providerID)
	if err != nil {
		return false, 0, err
	}
	info := snapshot.mealInfo(mealType)
	if info == nil || info.CanRespond {
		return false, 0, nil
	}

	today := c.timeNow()
	if !c.tracker.ShouldSuggest(providerID, today.Format(dateLayout), mealType) {
		return false, 0, nil
	}

	count, err := c.GetPendingCount(ctx, providerID, today, mealType)
	if err != nil {
		return false, 0, err
	}
	return count > 0, count, nil
}

func (s *TimingSnapshot) mealInfo(mealType string) *timing.Info {
	switch mealType {
	case "lunch":
		return s.Lunch
	case "dinner":
		return s.Dinner
	}
	return nil
}

func beforeToday(menuDate, now time.Time) bool {
	md := time.Date(menuDate.Year(), menuDate.Month(), menuDate.Day(), 0, 0, 0, 0, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return md.Before(today)
}

func sameDay(menuDate, now time.Time) bool {
	return menuDate.Year() == now.Year() && menuDate.Month() == now.Month() && menuDate.Day() == now.Day()
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)

	return c.do(c.readHC, req, out)
}

func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.creds.Username, c.creds.Password)

	return c.do(c.writeHC, req, out)
}

func (c *Client) do(hc *http.Client, req *http.Request, out interface{}) error {
	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("unexpected response (status=%d): %s", resp.StatusCode, string(raw))
	}

	if !env.Success {
		return envelopeError(resp.StatusCode, env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

// envelopeError rebuilds typed errors from the server's error payload
// so callers handle local and remote rejections uniformly.
func envelopeError(status int, apiErr *apiError) error {
	if apiErr == nil {
		return fmt.Errorf("request rejected (status=%d)", status)
	}

	if apiErr.CutoffTime != "" {
		if apiErr.Message == (&CutoffNotReachedError{CutoffTime: apiErr.CutoffTime}).Error() {
			return &CutoffNotReachedError{CutoffTime: apiErr.CutoffTime}
		}
		return &CutoffPassedError{CutoffTime: apiErr.CutoffTime, Reason: apiErr.Message}
	}
	if apiErr.Message == (&PastDateError{}).Error() {
		return &PastDateError{}
	}
	return fmt.Errorf("%s (status=%d)", apiErr.Message, status)
}
