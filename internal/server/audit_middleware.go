package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mealdash/provider-service/internal/storage"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
			Handler:   getHandlerName(r.URL.Path, r.Method),
		}

		if username, _, ok := r.BasicAuth(); ok {
			entry.Actor = username
		}

		var requestBody []byte
		if r.Body != nil {
			requestBody, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if r.Method == http.MethodPost && r.URL.Path == "/response" {
				var statusRequest struct {
					ProviderID string `json:"providerId"`
					CustomerID string `json:"customerId"`
					MenuDate   string `json:"menuDate"`
					MealType   string `json:"mealType"`
					Status     string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					entry.ProviderID = providerIdentity(r, statusRequest.ProviderID)
					entry.CustomerID = statusRequest.CustomerID
					entry.MenuDate = statusRequest.MenuDate
					entry.MealType = statusRequest.MealType
					entry.NewStatus = statusRequest.Status

					if menuDate, err := time.Parse(storage.DateLayout, statusRequest.MenuDate); err == nil {
						if resp, err := s.storage.GetResponse(r.Context(), entry.ProviderID, entry.CustomerID, menuDate, storage.MealType(entry.MealType)); err == nil {
							entry.OldStatus = string(resp.Status)
						}
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}

func getHandlerName(path string, method string) string {
	switch {
	case strings.HasPrefix(path, "/Provider/preferences"):
		return "handleGetPreferences"
	case path == "/response" && method == http.MethodPost:
		return "handleSetResponse"
	case strings.HasPrefix(path, "/responses/auto-confirm-pending"):
		return "handleAutoConfirm"
	case strings.HasPrefix(path, "/responses/open"):
		return "handleOpenWindow"
	case strings.HasPrefix(path, "/responses/daily"):
		return "handleDailyResponses"
	case strings.HasPrefix(path, "/responses/timing"):
		return "handleTimingInfo"
	case strings.HasPrefix(path, "/responses/pending"):
		return "handlePendingCount"
	case strings.HasPrefix(path, "/responses/") && strings.HasSuffix(path, "/audit"):
		return "handleResponseAudit"
	}
	return "unknown"
}
