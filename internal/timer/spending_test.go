package timer

import (
	"testing"
	"time"

	"earntime/internal/core"
)

func TestSpendingFullFlow(t *testing.T) {
	clk := newFakeClock()
	st := NewSpendingTimer(clk)
	st.MinutesToSpend = 2

	started := clk.now
	st.Start()
	if st.State() != StateCountingDown {
		t.Fatalf("state = %v, want counting_down", st.State())
	}
	if st.RemainingSeconds() != 120 {
		t.Fatalf("remaining = %d, want 120", st.RemainingSeconds())
	}

	clk.Advance(2 * time.Minute)
	for i := 0; i < 121; i++ {
		st.Tick()
	}
	if st.State() != StateCompleted {
		t.Fatalf("state = %v, want completed", st.State())
	}

	log := st.Commit()
	if log == nil {
		t.Fatal("commit returned nothing")
	}
	if log.MinutesUsed != 2 {
		t.Fatalf("minutes = %d, want 2", log.MinutesUsed)
	}
	if log.Source != core.SourceManualSpend {
		t.Fatalf("source = %q", log.Source)
	}
	if !log.CreatedAt.Equal(started) {
		t.Fatalf("createdAt = %v, want start instant %v", log.CreatedAt, started)
	}
	if log.ID == "" {
		t.Fatal("missing id")
	}
	if st.State() != StateIdle {
		t.Fatalf("commit must reset to idle, state = %v", st.State())
	}
}

func TestSpendingStartRequiresPositiveMinutes(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	st.MinutesToSpend = 0
	st.Start()
	if st.State() != StateIdle {
		t.Fatalf("zero-minute spend started: %v", st.State())
	}
}

func TestSpendingStartOnlyFromIdle(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	st.MinutesToSpend = 1
	st.Start()
	st.Tick()

	remaining := st.RemainingSeconds()
	st.Start() // no-op while counting down
	if st.RemainingSeconds() != remaining {
		t.Fatalf("restart reset countdown: %d -> %d", remaining, st.RemainingSeconds())
	}
}

func TestSpendingCancelCostsNothing(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	st.MinutesToSpend = 5
	st.Start()
	st.Tick()
	st.Cancel()

	if st.State() != StateIdle {
		t.Fatalf("state = %v, want idle", st.State())
	}
	// Commit after cancel must be rejected.
	if log := st.Commit(); log != nil {
		t.Fatalf("commit after cancel produced a log: %+v", log)
	}
}

func TestSpendingCommitOnlyFromCompleted(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	if st.Commit() != nil {
		t.Fatal("commit from idle produced a log")
	}
	st.MinutesToSpend = 1
	st.Start()
	if st.Commit() != nil {
		t.Fatal("commit while counting down produced a log")
	}
	if st.State() != StateCountingDown {
		t.Fatalf("failed commit changed state: %v", st.State())
	}
}

func TestSpendingStaleTickIgnored(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	st.MinutesToSpend = 1
	st.Start()
	st.Cancel()
	st.Tick()
	if st.State() != StateIdle {
		t.Fatalf("stale tick moved state: %v", st.State())
	}
}

func TestSpendingTickDoesNotUnderflow(t *testing.T) {
	st := NewSpendingTimer(newFakeClock())
	st.MinutesToSpend = 1
	st.Start()
	for i := 0; i < 200; i++ {
		st.Tick()
	}
	if st.RemainingSeconds() != 0 {
		t.Fatalf("remaining = %d", st.RemainingSeconds())
	}
	if st.State() != StateCompleted {
		t.Fatalf("state = %v", st.State())
	}
}
