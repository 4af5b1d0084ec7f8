package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/osteria-purchase-ledger/internal/api"
	"github.com/osteria-purchase-ledger/internal/api/service"
	"github.com/osteria-purchase-ledger/internal/config"
	"github.com/osteria-purchase-ledger/internal/export"
	"github.com/osteria-purchase-ledger/internal/logger"
	"github.com/osteria-purchase-ledger/internal/session"
)

func main() {
	appCtx, cancelAppCtx := context.WithCancel(context.Background())
	defer cancelAppCtx()

	cfg, err := config.LoadConfig("purchase_ledger")
	if err != nil {
		// logger is not initialized yet, so we use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg)

	// Workbooks are rendered on a bounded pool so large exports cannot pile up
	exportPool, err := export.NewPool(
		export.NewXLSXRenderer(cfg.Export.SheetName),
		export.PoolConfig{Size: cfg.Export.WorkerPoolSize},
		log,
	)
	if err != nil {
		log.Error("Failed to initialize export pool", "error", err)
		os.Exit(1)
	}

	sessions := session.NewManager(log, session.Options{
		IdleTimeout: cfg.Session.IdleTimeout,
		MaxActive:   cfg.Session.MaxActive,
	})
	sweeper := session.NewSweeper(sessions, cfg.Session.SweepInterval, log)
	go sweeper.Start(appCtx)

	sessionService := service.NewSessionService(sessions)
	ledgerService := service.NewLedgerService(log, sessions, exportPool)

	server := api.NewServer(log, cfg, sessionService, ledgerService)
	log.Info("REST server initialized")

	errChan := make(chan error, 1)

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	var serverErr error
	select {
	case <-quit:
		log.Info("Shutdown signal received")
	case err := <-errChan:
		log.Error("Server error occurred", "error", err)
		serverErr = err
	}

	// Stops the sweeper
	cancelAppCtx()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	log.Info("Starting graceful shutdown...")

	if err = server.Stop(shutdownCtx); err != nil {
		log.Error("Error during server shutdown", "error", err)
	}

	// Server is drained, so no new exports can arrive
	exportPool.Shutdown()

	log.Info("Discarding open sessions", "active_sessions", sessions.Count())

	if serverErr != nil {
		log.Error("HTTP server shutdown with errors", "error", serverErr)
	}
	if err != nil {
		log.Error("Server shutdown completed with errors")
	} else {
		log.Info("Server shutdown completed successfully")
	}
}
