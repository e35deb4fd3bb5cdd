package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"

	"earntime/internal/config"
	"earntime/internal/export"
	"earntime/internal/log"
	"earntime/internal/sheets"
	"earntime/internal/stats"
	"earntime/internal/storage"
)

// One-shot export: builds the daily series for the configured range from
// the non-archived working set, writes the stats file, and optionally
// uploads the series to Google Sheets.
func main() {
	_ = godotenv.Load()

	logger := log.New(log.Config{Component: log.ComponentExport})
	log.SetDefault(logger)

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

	ctx := context.Background()

	sessions, err := repo.ListSessions(ctx, false)
	if err != nil {
		logger.Error("Failed to load sessions", log.FieldError, err)
		os.Exit(1)
	}
	logs, err := repo.ListSpendLogs(ctx, false)
	if err != nil {
		logger.Error("Failed to load spend logs", log.FieldError, err)
		os.Exit(1)
	}

	rng := stats.Range(cfg.ExportRange)
	format := stats.Format(cfg.ExportFormat)
	series := stats.BuildDailySeries(sessions, logs, rng, time.Now())

	path, err := export.WriteFile(cfg.ExportDir, series, rng, format)
	if err != nil {
		logger.Error("Export failed", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Export written",
		log.FieldPath, path,
		log.FieldRange, rng.Label(),
		log.FieldFormat, string(format),
		"rows", len(series))

	if cfg.GoogleSpreadsheetID == "" {
		return
	}

	client, err := sheets.NewFromEnv(ctx)
	if err != nil {
		logger.Error("Failed to initialize Google Sheets client", log.FieldError, err)
		os.Exit(1)
	}
	if err := client.AppendDailyStats(ctx, series); err != nil {
		logger.Error("Sheets upload failed", log.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Stats uploaded to Google Sheets",
		"spreadsheet_id", cfg.GoogleSpreadsheetID)
}
