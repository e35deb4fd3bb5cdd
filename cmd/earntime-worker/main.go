package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"earntime/internal/amqp"
	"earntime/internal/clock"
	"earntime/internal/config"
	"earntime/internal/log"
	"earntime/internal/services"
	"earntime/internal/storage"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentWorker})
	log.SetDefault(logger)

	logger.Info("Starting earntime-worker")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err)
		os.Exit(1)
	}

	repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
	if err != nil {
		logger.Error("Failed to initialize SQLite repository",
			log.FieldError, err, log.FieldPath, cfg.SQLiteDBPath)
		os.Exit(1)
	}
	defer repo.Close()

	// AMQP is optional: without it the worker still archives, it just
	// stops announcing ledger events.
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without events", log.FieldError, err)
			amqpClient = nil
		} else {
			defer amqpClient.Close()
			logger.Info("AMQP client initialized")
		}
	} else {
		logger.Info("AMQP disabled - ledger events will not be published")
	}

	var events services.EventPublisher
	if amqpClient != nil {
		events = amqpClient
	}
	archiver := services.NewArchiveService(repo, events, clock.System{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Archive schedule configured",
		"interval", cfg.ArchiveInterval,
		"sqlite_db", cfg.SQLiteDBPath)

	ticker := time.NewTicker(cfg.ArchiveInterval)
	defer ticker.Stop()

	runArchive := func() {
		result, err := archiver.Run(ctx)
		if err != nil {
			logger.Error("Archive run failed", log.FieldError, err)
			return
		}
		logger.Info("Archive run complete",
			log.FieldSessions, result.SessionsArchived,
			log.FieldSpendLogs, result.LogsArchived)
	}

	// Run once on startup, then on the interval.
	runArchive()

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runArchive()
			}
		}
	}()

	// Consume ledger events so reminder delivery downstream has a hook.
	if amqpClient != nil {
		go func() {
			err := amqpClient.ConsumeLedgerEvents(ctx, func(event *amqp.LedgerEvent) error {
				logger.Info("Ledger event received",
					"kind", event.Kind,
					log.FieldRecordID, event.RecordID,
					log.FieldMinutes, event.Minutes)
				return nil
			})
			if err != nil && err != context.Canceled {
				logger.Error("Event consumption stopped", log.FieldError, err)
			}
		}()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Shutdown signal received", "signal", sig.String())
	cancel()

	logger.Info("earntime-worker shutdown complete")
}
