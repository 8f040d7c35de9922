package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mealdash/provider-service/internal/cache"
	"github.com/mealdash/provider-service/internal/db"
	"github.com/mealdash/provider-service/internal/kafka"
	"github.com/mealdash/provider-service/internal/logger"
	"github.com/mealdash/provider-service/internal/repository/postgresql"
	"github.com/mealdash/provider-service/internal/server"
	"github.com/mealdash/provider-service/internal/storage"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zapLogger := logger.New()
	defer func() {
		_ = zapLogger.Sync()
	}()

	database, err := db.NewDb(ctx)
	if err != nil {
		fmt.Println("Database init error:", err)
		return
	}
	db.InitAdmin(database)

	responseRepo := postgresql.NewResponseRepo(database)
	preferenceRepo := postgresql.NewPreferenceRepo(database)
	auditRepo := postgresql.NewResponseAuditRepo(database)
	userRepo := postgresql.NewUserRepo(database)
	outboxRepo := postgresql.NewOutboxTaskRepo()

	prefCache := cache.NewPreferenceCache(preferenceRepo)
	stg := storage.NewResponseStorage(responseRepo, prefCache, auditRepo, zapLogger)

	auditManager := server.NewAuditManager(2, 5, 500*time.Millisecond, database, outboxRepo)
	srv := server.New(stg, userRepo, auditManager, zapLogger)

	producer := newProducer()
	publisher := kafka.NewPublisher(database, outboxRepo, producer, kafka.PublisherConfig{
		PollInterval: 2 * time.Second,
		BatchSize:    20,
		MaxAttempts:  5,
	})

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx, port)
	})
	g.Go(func() error {
		publisher.Run(gctx)
		return nil
	})

	log.Printf("Server started on port %s", port)

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	publisher.Shutdown()

	if err := g.Wait(); err != nil {
		log.Printf("Shutdown finished with error: %v", err)
	}
	log.Println("Server gracefully stopped")
}

func newProducer() kafka.Producer {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return kafka.NewConsoleProducer()
	}
	return kafka.NewKafkaProducer(strings.Split(brokers, ","))
}
