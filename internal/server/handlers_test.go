package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	mock_server "github.com/mealdash/provider-service/internal/server/mocks"
	"github.com/mealdash/provider-service/internal/storage"
)

func newTestServer(t *testing.T) (*Server, *mock_server.MockStorage) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := mock_server.NewMockStorage(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	return New(mockStorage, mockUserRepo, nil, zap.NewNop()), mockStorage
}

func TestHandleSetResponse(t *testing.T) {
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *mock_server.MockStorage)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "successful manual response",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "yes",
				"source":     "manual",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					SetStatus(gomock.Any(), "provider-1", "customer-1", menuDate,
						storage.MealLunch, storage.StatusYes, storage.SourceManual, gomock.Any()).
					Return(&storage.Response{
						ID:                    "resp-1",
						Status:                storage.StatusYes,
						RespondedBeforeCutoff: true,
						CutoffTimeUsed:        "10:30 AM",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
			},
		},
		{
			name: "source defaults to manual",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "no",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					SetStatus(gomock.Any(), "provider-1", "customer-1", menuDate,
						storage.MealLunch, storage.StatusNo, storage.SourceManual, gomock.Any()).
					Return(&storage.Response{ID: "resp-1", Status: storage.StatusNo}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "past date maps to 400",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "yes",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &storage.PastDateError{MenuDate: "2025-06-10"})
			},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errObj := body["error"].(map[string]interface{})
				assert.Equal(t, "Cannot modify responses for past dates", errObj["message"])
			},
		},
		{
			name: "cutoff passed maps to 409 with cutoff time",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "yes",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &storage.CutoffPassedError{
						CutoffTime: "10:30 AM",
						Reason:     "Cutoff time 10:30 AM has passed",
					})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errObj := body["error"].(map[string]interface{})
				assert.Equal(t, "10:30 AM", errObj["cutoffTime"])
				assert.Equal(t, "Cutoff time 10:30 AM has passed", errObj["message"])
			},
		},
		{
			name: "missing customer id",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "yes",
			},
			setupMocks:     func(m *mock_server.MockStorage) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "bad date format",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "10.06.2025",
				"mealType":   "lunch",
				"status":     "yes",
			},
			setupMocks:     func(m *mock_server.MockStorage) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure maps to 500",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"customerId": "customer-1",
				"menuDate":   "2025-06-10",
				"mealType":   "lunch",
				"status":     "yes",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockStorage := newTestServer(t)
			tc.setupMocks(mockStorage)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/response", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			srv.handleSetResponse(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
				tc.checkBody(t, decoded)
			}
		})
	}
}

func TestHandleAutoConfirm(t *testing.T) {
	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		setupMocks     func(m *mock_server.MockStorage)
		expectedStatus int
		checkBody      func(t *testing.T, body map[string]interface{})
	}{
		{
			name: "processed count returned",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"date":       "2025-06-10",
				"mealType":   "lunch",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					AutoConfirmPending(gomock.Any(), "provider-1", menuDate, storage.MealLunch).
					Return(3, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(3), data["processedCount"])
			},
		},
		{
			name: "idempotent rerun returns zero",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"date":       "2025-06-10",
				"mealType":   "lunch",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					AutoConfirmPending(gomock.Any(), "provider-1", menuDate, storage.MealLunch).
					Return(0, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				data := body["data"].(map[string]interface{})
				assert.Equal(t, float64(0), data["processedCount"])
			},
		},
		{
			name: "cutoff not reached maps to 409",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"date":       "2025-06-10",
				"mealType":   "lunch",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					AutoConfirmPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, &storage.CutoffNotReachedError{CutoffTime: "10:30 AM"})
			},
			expectedStatus: http.StatusConflict,
			checkBody: func(t *testing.T, body map[string]interface{}) {
				errObj := body["error"].(map[string]interface{})
				assert.Equal(t, "10:30 AM", errObj["cutoffTime"])
			},
		},
		{
			name: "future date maps to 400",
			requestBody: map[string]interface{}{
				"providerId": "provider-1",
				"date":       "2025-06-10",
				"mealType":   "lunch",
			},
			setupMocks: func(m *mock_server.MockStorage) {
				m.EXPECT().
					AutoConfirmPending(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(0, &storage.FutureDateError{MenuDate: "2025-06-10"})
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv, mockStorage := newTestServer(t)
			tc.setupMocks(mockStorage)

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/responses/auto-confirm-pending", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			srv.handleAutoConfirm(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				var decoded map[string]interface{}
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
				tc.checkBody(t, decoded)
			}
		})
	}
}

func TestHandlePendingCount(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().
		GetPendingCount(gomock.Any(), "provider-1", menuDate, storage.MealLunch).
		Return(5, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/pending?providerId=provider-1&date=2025-06-10&mealType=lunch", nil)
	rr := httptest.NewRecorder()

	srv.handlePendingCount(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["pendingCount"])
}

func TestHandleTimingInfo(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	mockStorage.EXPECT().
		GetTimingInfo(gomock.Any(), "provider-1").
		Return(&storage.TimingSnapshot{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/timing?providerId=provider-1", nil)
	rr := httptest.NewRecorder()

	srv.handleTimingInfo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestHandleGetPreferences(t *testing.T) {
	t.Run("explicit provider id", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)

		mockStorage.EXPECT().
			GetPreferences(gomock.Any(), "provider-1").
			Return(&storage.MealService{
				Lunch: &storage.MealPreference{MealType: storage.MealLunch, Enabled: true, CutoffTime: "10:30 AM"},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/Provider/preferences?providerId=provider-1", nil)
		rr := httptest.NewRecorder()

		srv.handleGetPreferences(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("falls back to basic auth identity", func(t *testing.T) {
		srv, mockStorage := newTestServer(t)

		mockStorage.EXPECT().
			GetPreferences(gomock.Any(), "provider-2").
			Return(&storage.MealService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/Provider/preferences", nil)
		req.SetBasicAuth("provider-2", "secret")
		rr := httptest.NewRecorder()

		srv.handleGetPreferences(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no identity at all", func(t *testing.T) {
		srv, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/Provider/preferences", nil)
		rr := httptest.NewRecorder()

		srv.handleGetPreferences(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleDailyResponses(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().
		GetDailyResponses(gomock.Any(), "provider-1", menuDate, storage.MealLunch).
		Return([]storage.Response{
			{ID: "resp-1", Status: storage.StatusYes},
			{ID: "resp-2", Status: storage.StatusPending},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/daily?providerId=provider-1&date=2025-06-10&mealType=lunch", nil)
	rr := httptest.NewRecorder()

	srv.handleDailyResponses(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	data := decoded["data"].(map[string]interface{})
	assert.Len(t, data["responses"], 2)
}

func TestHandleOpenWindow(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	menuDate := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	mockStorage.EXPECT().
		OpenResponseWindow(gomock.Any(), "provider-1", []string{"customer-1", "customer-2"}, menuDate, storage.MealDinner).
		Return(2, nil)

	body, err := json.Marshal(map[string]interface{}{
		"providerId":  "provider-1",
		"customerIds": []string{"customer-1", "customer-2"},
		"date":        "2025-06-10",
		"mealType":    "dinner",
	})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/responses/open", bytes.NewReader(body))
	rr := httptest.NewRecorder()

	srv.handleOpenWindow(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestHandleResponseAudit(t *testing.T) {
	srv, mockStorage := newTestServer(t)

	mockStorage.EXPECT().
		GetResponseAudit(gomock.Any(), "resp-1").
		Return([]storage.AuditEntry{
			{ResponseID: "resp-1", OldStatus: storage.StatusPending, NewStatus: storage.StatusYes, Source: storage.SourceAuto},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/responses/resp-1/audit", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "resp-1"})
	rr := httptest.NewRecorder()

	srv.handleResponseAudit(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}
