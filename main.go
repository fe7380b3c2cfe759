package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-api/internal/config"
	"portfolio-api/internal/db"
	"portfolio-api/internal/gelf"
	"portfolio-api/internal/handler"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/router"
	"portfolio-api/internal/service"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	log.Printf("MONGODB_URI present: %v, database: %s", os.Getenv("MONGODB_URI") != "", cfg.MongoDB)

	// The store connects lazily on first use; a cold start never blocks on
	// the database.
	store := db.New(cfg.MongoURI, cfg.MongoDB)

	subRepo := repository.NewSubmissionRepo(store)
	subSvc := service.NewSubmissionService(subRepo)
	subH := handler.NewSubmissionHandler(subSvc)
	healthH := handler.NewHealthHandler(store)

	r := router.New(subH, healthH)

	// Index creation runs in the background so a slow or unreachable store
	// doesn't delay serving.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := subRepo.EnsureIndexes(ctx); err != nil {
			log.Printf("Warning: submission index creation failed: %v", err)
		} else {
			log.Printf("Background init: submission indexes ready")
		}
	}()

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
		sig := <-sigCh
		log.Printf("Received %s, shutting down", sig)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: server shutdown: %v", err)
		}
		store.Close(shutdownCtx)
	}()

	log.Printf("portfolio-api server starting on %s", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Server failed: %v", err)
	}
}
