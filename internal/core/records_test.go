package core

import (
	"testing"
	"time"
)

func TestParseCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want TaskCategory
	}{
		{"focus", FocusSession},
		{"exercise", Exercise},
		{"chores", Chores},
		{"reading", Reading},
		{"custom", Custom},
		{"", Custom},
		{"meditation", Custom}, // unknown values fall back to Custom
	}
	for i, tc := range cases {
		if got := ParseCategory(tc.raw); got != tc.want {
			t.Fatalf("case %d (%q): got %v, want %v", i, tc.raw, got, tc.want)
		}
	}
}

func TestCategoryDefaults(t *testing.T) {
	cases := []struct {
		cat     TaskCategory
		name    string
		minutes int
	}{
		{FocusSession, "Focus Session", 25},
		{Exercise, "Exercise", 30},
		{Chores, "Chores", 15},
		{Reading, "Reading", 20},
		{Custom, "Custom", 10},
	}
	for _, tc := range cases {
		if got := tc.cat.DisplayName(); got != tc.name {
			t.Fatalf("%v display: got %q, want %q", tc.cat, got, tc.name)
		}
		if got := tc.cat.DefaultDurationMinutes(); got != tc.minutes {
			t.Fatalf("%v duration: got %d, want %d", tc.cat, got, tc.minutes)
		}
	}
}

func TestSessionDurationMinutesTruncates(t *testing.T) {
	s := EarnedSession{DurationSeconds: 119}
	if got := s.DurationMinutes(); got != 1 {
		t.Fatalf("got %d, want 1 (truncated, not rounded)", got)
	}
}

func TestSessionDisplayName(t *testing.T) {
	s := EarnedSession{Category: Reading}
	if got := s.DisplayName(); got != "Reading" {
		t.Fatalf("got %q", got)
	}
	s.CustomLabel = "Latin homework"
	if got := s.DisplayName(); got != "Latin homework" {
		t.Fatalf("got %q", got)
	}
}

func TestSessionValidate(t *testing.T) {
	now := time.Now()
	good := EarnedSession{StartDate: now.Add(-time.Minute), EndDate: now, EarnedMinutes: 1}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []EarnedSession{
		{StartDate: now, EndDate: now.Add(-time.Second), EarnedMinutes: 1},
		{StartDate: now.Add(-time.Minute), EndDate: now, EarnedMinutes: 0},
	}
	for i, s := range bads {
		if err := s.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestSpendLogValidate(t *testing.T) {
	if err := (SpendLog{MinutesUsed: 15}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (SpendLog{MinutesUsed: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero minutes")
	}
}
