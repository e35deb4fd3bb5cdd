// Package services wires the pure core and timers to the persistence and
// event collaborators.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"earntime/internal/core"
	"earntime/internal/timer"

	"github.com/google/uuid"
)

// LedgerService records finished timer output and answers balance queries.
type LedgerService struct {
	store  Store
	events EventPublisher
}

func NewLedgerService(store Store, events EventPublisher) *LedgerService {
	return &LedgerService{
		store:  store,
		events: events,
	}
}

// RecordSession turns a completed earning-timer result into a persisted
// EarnedSession. On storage failure nothing is kept and the error is
// returned wrapped; the caller decides whether to retry.
func (s *LedgerService) RecordSession(ctx context.Context, res timer.SessionResult) (core.EarnedSession, error) {
	session := core.EarnedSession{
		ID:              uuid.NewString(),
		Category:        res.Category,
		CustomLabel:     res.CustomLabel,
		StartDate:       res.StartDate,
		EndDate:         res.EndDate,
		DurationSeconds: res.DurationSeconds,
		EarnedMinutes:   res.EarnedMinutes,
	}
	if err := session.Validate(); err != nil {
		return core.EarnedSession{}, fmt.Errorf("validate session: %w", err)
	}

	if err := s.store.InsertSession(ctx, session); err != nil {
		return core.EarnedSession{}, fmt.Errorf("record session: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishSessionRecorded(ctx, session.ID, session.EarnedMinutes); err != nil {
			// The record is already durable; event delivery is best effort.
			slog.ErrorContext(ctx, "Failed to publish session event",
				"id", session.ID, "error", err)
		}
	}

	return session, nil
}

// AvailableMinutes computes the spendable balance over the non-archived
// working set.
func (s *LedgerService) AvailableMinutes(ctx context.Context) (int, error) {
	sessions, err := s.store.ListSessions(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("list sessions: %w", err)
	}
	logs, err := s.store.ListSpendLogs(ctx, false)
	if err != nil {
		return 0, fmt.Errorf("list spend logs: %w", err)
	}
	return core.AvailableMinutes(sessions, logs), nil
}

// AuthorizeSpend checks a requested spend against the current balance.
// It must be called before starting a spend countdown; the timer itself
// has no view of the ledger. A rejection leaves no trace.
func (s *LedgerService) AuthorizeSpend(ctx context.Context, minutes int) error {
	if minutes <= 0 {
		return core.ErrNoSpendMinutes
	}
	available, err := s.AvailableMinutes(ctx)
	if err != nil {
		return err
	}
	if available < minutes {
		return fmt.Errorf("%w: have %d, want %d", core.ErrInsufficientCredit, available, minutes)
	}
	return nil
}

// RecordSpend persists a committed spend log. The balance is deliberately
// not re-checked here: the clamp lives at display time, and authorization
// happened before the countdown started.
func (s *LedgerService) RecordSpend(ctx context.Context, log core.SpendLog) error {
	if err := log.Validate(); err != nil {
		return fmt.Errorf("validate spend: %w", err)
	}

	if err := s.store.InsertSpendLog(ctx, log); err != nil {
		return fmt.Errorf("record spend: %w", err)
	}

	if s.events != nil {
		if err := s.events.PublishSpendRecorded(ctx, log.ID, log.MinutesUsed); err != nil {
			slog.ErrorContext(ctx, "Failed to publish spend event",
				"id", log.ID, "error", err)
		}
	}

	return nil
}
