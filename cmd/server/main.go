package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blagoySimandov/novafields/internal/api"
	"github.com/blagoySimandov/novafields/internal/cache"
	"github.com/blagoySimandov/novafields/internal/calendar"
	"github.com/blagoySimandov/novafields/internal/config"
	"github.com/blagoySimandov/novafields/internal/db"
	"github.com/blagoySimandov/novafields/internal/logger"
	"github.com/blagoySimandov/novafields/internal/resource"
	"github.com/blagoySimandov/novafields/internal/store"
)

func main() {
	cfg := config.Load()
	logger.Configure(cfg.LogLevel)

	s, err := newStore(cfg)
	if err != nil {
		logger.Log.Error("failed to create store", "error", err, "driver", cfg.StoreDriver)
		os.Exit(1)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.InitializeDatabase(ctx); err != nil {
		logger.Log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	registry, err := resource.NewRegistry(
		resource.Events(calendar.ParseVariant(cfg.DefaultCalendar, "")),
	)
	if err != nil {
		logger.Log.Error("failed to build resource registry", "error", err)
		os.Exit(1)
	}

	handler := api.NewResourceHandler(registry, s, cache.NewInMemoryFilterCache(), cfg.DefaultPageSize)
	router := api.SetupRoutes(handler, cfg.AllowedOrigin)

	srv := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Log.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Log.Error("server shutdown error", "error", err)
		}
	}()

	logger.Log.Info("server starting", "addr", cfg.ServerAddr, "store", cfg.StoreDriver)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Error("server failed to start", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("server stopped")
}

func newStore(cfg *config.Config) (store.Store, error) {
	if cfg.StoreDriver == "gorm" {
		gdb, err := db.NewGormPostgresClient(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store.NewGormStore(gdb), nil
	}
	return store.NewPostgresStore(db.NewBunPostgresClient(cfg.DatabaseURL)), nil
}
