package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"earntime/internal/clock"
	"earntime/internal/core"

	"golang.org/x/sync/semaphore"
)

// ErrArchiveInProgress is returned when a second archival run is requested
// while one is still in flight. The second run is rejected, not queued.
var ErrArchiveInProgress = errors.New("archive run already in progress")

// ArchiveResult reports how many records an archival run touched.
type ArchiveResult struct {
	SessionsArchived int
	LogsArchived     int
}

// ArchiveService moves records older than the cutoff out of the working
// set. Running it again with the same reference date is a no-op: archived
// records are excluded from selection.
type ArchiveService struct {
	store  Store
	events EventPublisher
	clock  clock.Clock
	sem    *semaphore.Weighted
}

func NewArchiveService(store Store, events EventPublisher, clk clock.Clock) *ArchiveService {
	return &ArchiveService{
		store:  store,
		events: events,
		clock:  clk,
		sem:    semaphore.NewWeighted(1),
	}
}

// SelectForArchive picks the non-archived records strictly older than the
// cutoff for the reference date. Pure selection, no side effects.
func SelectForArchive(sessions []core.EarnedSession, logs []core.SpendLog, reference time.Time) (sessionIDs, logIDs []string) {
	cutoff := core.ArchiveCutoff(reference)
	for _, s := range sessions {
		if !s.IsArchived && s.EndDate.Before(cutoff) {
			sessionIDs = append(sessionIDs, s.ID)
		}
	}
	for _, l := range logs {
		if !l.IsArchived && l.CreatedAt.Before(cutoff) {
			logIDs = append(logIDs, l.ID)
		}
	}
	return sessionIDs, logIDs
}

// Run archives everything older than seven days before now. On storage
// failure no flag is durable and the whole run is reported failed.
func (s *ArchiveService) Run(ctx context.Context) (ArchiveResult, error) {
	return s.RunAt(ctx, s.clock.Now())
}

// RunAt is Run with an explicit reference date.
func (s *ArchiveService) RunAt(ctx context.Context, reference time.Time) (ArchiveResult, error) {
	if !s.sem.TryAcquire(1) {
		return ArchiveResult{}, ErrArchiveInProgress
	}
	defer s.sem.Release(1)

	sessions, err := s.store.ListSessions(ctx, false)
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("list sessions: %w", err)
	}
	logs, err := s.store.ListSpendLogs(ctx, false)
	if err != nil {
		return ArchiveResult{}, fmt.Errorf("list spend logs: %w", err)
	}

	sessionIDs, logIDs := SelectForArchive(sessions, logs, reference)
	result := ArchiveResult{
		SessionsArchived: len(sessionIDs),
		LogsArchived:     len(logIDs),
	}
	if result.SessionsArchived == 0 && result.LogsArchived == 0 {
		slog.DebugContext(ctx, "Nothing to archive", "reference", reference)
		return result, nil
	}

	// Single transaction: all selected records flip together or none do.
	if err := s.store.ArchiveRecords(ctx, sessionIDs, logIDs); err != nil {
		return ArchiveResult{}, fmt.Errorf("archive records: %w", err)
	}

	slog.InfoContext(ctx, "Archive run completed",
		"sessions", result.SessionsArchived,
		"spend_logs", result.LogsArchived,
		"cutoff", core.ArchiveCutoff(reference))

	if s.events != nil {
		if err := s.events.PublishArchiveCompleted(ctx, result.SessionsArchived, result.LogsArchived); err != nil {
			slog.ErrorContext(ctx, "Failed to publish archive event", "error", err)
		}
	}

	return result, nil
}
