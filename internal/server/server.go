//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mealdash/provider-service/internal/storage"
)

type Storage interface {
	SetStatus(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType storage.MealType, newStatus storage.Status, source storage.Source, actor string) (*storage.Response, error)
	AutoConfirmPending(ctx context.Context, providerID string, menuDate time.Time, mealType storage.MealType) (int, error)
	OpenResponseWindow(ctx context.Context, providerID string, customerIDs []string, menuDate time.Time, mealType storage.MealType) (int, error)
	GetResponse(ctx context.Context, providerID, customerID string, menuDate time.Time, mealType storage.MealType) (*storage.Response, error)
	GetDailyResponses(ctx context.Context, providerID string, menuDate time.Time, mealType storage.MealType) ([]storage.Response, error)
	GetPendingCount(ctx context.Context, providerID string, menuDate time.Time, mealType storage.MealType) (int, error)
	GetTimingInfo(ctx context.Context, providerID string) (*storage.TimingSnapshot, error)
	GetPreferences(ctx context.Context, providerID string) (*storage.MealService, error)
	GetResponseAudit(ctx context.Context, responseID string) ([]storage.AuditEntry, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, username, password string) error
	ValidateUser(ctx context.Context, username, password string) (bool, error)
}

type Server struct {
	storage      Storage
	userRepo     UserRepo
	server       *http.Server
	logger       *zap.Logger
	AuditManager *AuditManager
}

func New(storage Storage, userRepo UserRepo, auditManager *AuditManager, logger *zap.Logger) *Server {
	return &Server{
		storage:      storage,
		userRepo:     userRepo,
		AuditManager: auditManager,
		logger:       logger,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	go s.handleShutdown()

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) handleShutdown() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	sig := <-signals
	log.Printf("Received signal %v, initiating graceful shutdown...", sig)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		log.Printf("ERROR: Server shutdown failed: %v", err)
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	log.Println("Server shutdown completed successfully")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.NewRoute().Subrouter()
	api.Use(s.basicAuthMiddleware, s.auditLogMiddleware)

	api.HandleFunc("/Provider/preferences", s.handleGetPreferences).Methods(http.MethodGet)
	api.HandleFunc("/responses/daily", s.handleDailyResponses).Methods(http.MethodGet)
	api.HandleFunc("/responses/timing", s.handleTimingInfo).Methods(http.MethodGet)
	api.HandleFunc("/responses/pending", s.handlePendingCount).Methods(http.MethodGet)
	api.HandleFunc("/response", s.handleSetResponse).Methods(http.MethodPost)
	api.HandleFunc("/responses/auto-confirm-pending", s.handleAutoConfirm).Methods(http.MethodPost)
	api.HandleFunc("/responses/open", s.handleOpenWindow).Methods(http.MethodPost)
	api.HandleFunc("/responses/{id}/audit", s.handleResponseAudit).Methods(http.MethodGet)

	return router
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		valid, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil || !valid {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type apiError struct {
	Message    string `json:"message"`
	CutoffTime string `json:"cutoffTime,omitempty"`
}

type apiResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *apiError   `json:"error,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, apiResponse{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, apiResponse{Error: &apiError{Message: message}})
}

func respondCutoffError(w http.ResponseWriter, status int, message, cutoffTime string) {
	respondJSON(w, status, apiResponse{Error: &apiError{Message: message, CutoffTime: cutoffTime}})
}
