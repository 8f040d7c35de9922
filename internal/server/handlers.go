package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mealdash/provider-service/internal/storage"
)

// providerIdentity resolves the provider a request acts for: an
// explicit providerId wins, otherwise the authenticated username is
// the provider.
func providerIdentity(r *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if username, _, ok := r.BasicAuth(); ok {
		return username
	}
	return ""
}

func parseMenuDate(raw string) (time.Time, error) {
	return time.Parse(storage.DateLayout, raw)
}

// respondDomainError maps the engine's error taxonomy onto HTTP
// statuses. Cutoff rejections always carry the cutoff time so the
// operator sees it verbatim.
func (s *Server) respondDomainError(w http.ResponseWriter, err error) {
	var pastDate *storage.PastDateError
	var cutoffPassed *storage.CutoffPassedError
	var cutoffNotReached *storage.CutoffNotReachedError
	var futureDate *storage.FutureDateError
	var validation *storage.ValidationError

	switch {
	case errors.As(err, &pastDate):
		respondError(w, http.StatusBadRequest, pastDate.Error())
	case errors.As(err, &cutoffPassed):
		respondCutoffError(w, http.StatusConflict, cutoffPassed.Error(), cutoffPassed.CutoffTime)
	case errors.As(err, &cutoffNotReached):
		respondCutoffError(w, http.StatusConflict, cutoffNotReached.Error(), cutoffNotReached.CutoffTime)
	case errors.As(err, &futureDate):
		respondError(w, http.StatusBadRequest, futureDate.Error())
	case errors.As(err, &validation):
		respondError(w, http.StatusBadRequest, validation.Error())
	case strings.Contains(err.Error(), "not found"):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
	}
}

func (s *Server) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	providerID := providerIdentity(r, r.URL.Query().Get("providerId"))
	if providerID == "" {
		respondError(w, http.StatusBadRequest, "Missing provider ID")
		return
	}

	svc, err := s.storage.GetPreferences(r.Context(), providerID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"mealService": svc})
}

func (s *Server) handleDailyResponses(w http.ResponseWriter, r *http.Request) {
	providerID := providerIdentity(r, r.URL.Query().Get("providerId"))
	if providerID == "" {
		respondError(w, http.StatusBadRequest, "Missing provider ID")
		return
	}

	menuDate, err := parseMenuDate(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	responses, err := s.storage.GetDailyResponses(r.Context(), providerID, menuDate, storage.MealType(r.URL.Query().Get("mealType")))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

func (s *Server) handleTimingInfo(w http.ResponseWriter, r *http.Request) {
	providerID := providerIdentity(r, r.URL.Query().Get("providerId"))
	if providerID == "" {
		respondError(w, http.StatusBadRequest, "Missing provider ID")
		return
	}

	snapshot, err := s.storage.GetTimingInfo(r.Context(), providerID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"timing": snapshot})
}

func (s *Server) handlePendingCount(w http.ResponseWriter, r *http.Request) {
	providerID := providerIdentity(r, r.URL.Query().Get("providerId"))
	if providerID == "" {
		respondError(w, http.StatusBadRequest, "Missing provider ID")
		return
	}

	menuDate, err := parseMenuDate(r.URL.Query().Get("date"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	count, err := s.storage.GetPendingCount(r.Context(), providerID, menuDate, storage.MealType(r.URL.Query().Get("mealType")))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"pendingCount": count})
}

func (s *Server) handleSetResponse(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProviderID string `json:"providerId"`
		CustomerID string `json:"customerId"`
		MenuDate   string `json:"menuDate"`
		MealType   string `json:"mealType"`
		Status     string `json:"status"`
		Source     string `json:"source"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.CustomerID == "" {
		respondError(w, http.StatusBadRequest, "Missing customer ID")
		return
	}

	menuDate, err := parseMenuDate(req.MenuDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	providerID := providerIdentity(r, req.ProviderID)
	source := storage.Source(req.Source)
	if source == "" {
		source = storage.SourceManual
	}

	actor, _, _ := r.BasicAuth()
	resp, err := s.storage.SetStatus(r.Context(), providerID, req.CustomerID, menuDate,
		storage.MealType(req.MealType), storage.Status(req.Status), source, actor)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"response": resp})
}

func (s *Server) handleAutoConfirm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProviderID string `json:"providerId"`
		Date       string `json:"date"`
		MealType   string `json:"mealType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	menuDate, err := parseMenuDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	providerID := providerIdentity(r, req.ProviderID)
	processed, err := s.storage.AutoConfirmPending(r.Context(), providerID, menuDate, storage.MealType(req.MealType))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"processedCount": processed})
}

func (s *Server) handleOpenWindow(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProviderID  string   `json:"providerId"`
		CustomerIDs []string `json:"customerIds"`
		Date        string   `json:"date"`
		MealType    string   `json:"mealType"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	menuDate, err := parseMenuDate(req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	providerID := providerIdentity(r, req.ProviderID)
	created, err := s.storage.OpenResponseWindow(r.Context(), providerID, req.CustomerIDs, menuDate, storage.MealType(req.MealType))
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusCreated, map[string]interface{}{"createdCount": created})
}

func (s *Server) handleResponseAudit(w http.ResponseWriter, r *http.Request) {
	responseID := mux.Vars(r)["id"]
	if responseID == "" {
		respondError(w, http.StatusBadRequest, "Missing response ID")
		return
	}

	entries, err := s.storage.GetResponseAudit(r.Context(), responseID)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}

	respondData(w, http.StatusOK, map[string]interface{}{"audit": entries})
}
