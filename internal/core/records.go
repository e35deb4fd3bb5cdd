package core

import (
	"errors"
	"strings"
	"time"
)

const (
	// SourceManual tags spends entered directly, without a countdown.
	SourceManual = "Manual"
	// SourceManualSpend tags spends produced by the spend-timer flow.
	SourceManualSpend = "Manual Spend"
)

var (
	ErrInvalidDates       = errors.New("end date before start date")
	ErrNoEarnedMinutes    = errors.New("earned minutes must be at least 1")
	ErrNoSpendMinutes     = errors.New("minutes used must be positive")
	ErrInsufficientCredit = errors.New("insufficient credit balance")
)

type (
	// EarnedSession is a completed timed activity that credits minutes.
	// Records are created once, optionally soft-hidden via IsArchived,
	// and never mutated otherwise.
	EarnedSession struct {
		ID              string
		Category        TaskCategory
		CustomLabel     string
		StartDate       time.Time
		EndDate         time.Time
		DurationSeconds float64
		EarnedMinutes   int
		Notes           string
		IsArchived      bool
	}

	// SpendLog records minutes debited against the credit balance.
	SpendLog struct {
		ID          string
		CreatedAt   time.Time
		MinutesUsed int
		Source      string
		Notes       string
		IsArchived  bool
	}
)

// DurationMinutes is the displayed activity length, truncated to whole
// minutes. It is intentionally distinct from EarnedMinutes, which rounds
// to nearest and never drops below 1.
func (s EarnedSession) DurationMinutes() int {
	return int(s.DurationSeconds / 60.0)
}

// DisplayName returns the custom label when one is set, otherwise the
// category's default display name.
func (s EarnedSession) DisplayName() string {
	if strings.TrimSpace(s.CustomLabel) != "" {
		return s.CustomLabel
	}
	return s.Category.DisplayName()
}

func (s EarnedSession) Validate() error {
	if s.EndDate.Before(s.StartDate) {
		return ErrInvalidDates
	}
	if s.EarnedMinutes < 1 {
		return ErrNoEarnedMinutes
	}
	return nil
}

func (l SpendLog) Validate() error {
	if l.MinutesUsed <= 0 {
		return ErrNoSpendMinutes
	}
	return nil
}
