// Package timer implements the two countdown state machines: an earning
// timer that converts a completed activity into credited minutes, and a
// spending timer that burns minutes off the balance.
//
// Both machines are driven by external once-per-second Tick calls (see
// Driver for the wall-clock pump) and take their notion of "now" from an
// injected clock, so tests can fast-forward without waiting.
package timer

import (
	"math"
	"strings"
	"sync"
	"time"

	"earntime/internal/clock"
	"earntime/internal/core"
)

const (
	StateIdle         State = "idle"
	StateRunning      State = "running"
	StateCountingDown State = "counting_down"
	StateCompleted    State = "completed"
)

// State names the phase a timer is in.
type State string

// SessionResult is the terminal output of a completed earning timer. The
// caller persists it and then calls Reset; the timer never persists itself.
type SessionResult struct {
	Category        core.TaskCategory
	CustomLabel     string
	StartDate       time.Time
	EndDate         time.Time
	DurationSeconds float64
	EarnedMinutes   int
}

// EarningTimer counts a planned activity down to zero and credits minutes
// for the elapsed time. Natural completion credits the full planned
// duration; FinishEarly credits only the seconds actually counted.
type EarningTimer struct {
	mu sync.Mutex

	clock clock.Clock

	// Configuration, set while idle.
	Category        core.TaskCategory
	CustomLabel     string
	DurationMinutes int

	state            State
	remainingSeconds int
	startDate        time.Time
	result           *SessionResult
}

func NewEarningTimer(clk clock.Clock) *EarningTimer {
	return &EarningTimer{
		clock:           clk,
		Category:        core.FocusSession,
		DurationMinutes: core.FocusSession.DefaultDurationMinutes(),
		state:           StateIdle,
	}
}

// Start captures the start instant and begins the countdown. Starting a
// timer that is already running is a no-op, not an error.
func (t *EarningTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateRunning {
		return
	}
	t.startDate = t.clock.Now()
	t.remainingSeconds = t.DurationMinutes * 60
	t.result = nil
	t.state = StateRunning
}

// Tick consumes one elapsed second. A tick arriving after the machine has
// left the running state is stale and ignored.
func (t *EarningTimer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	if t.remainingSeconds > 0 {
		t.remainingSeconds--
		return
	}
	// Countdown exhausted: credit the full planned duration.
	t.finalize(float64(t.DurationMinutes * 60))
}

// FinishEarly ends a running session now, crediting the seconds counted
// so far.
func (t *EarningTimer) FinishEarly() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	elapsed := float64(t.DurationMinutes*60 - t.remainingSeconds)
	t.finalize(elapsed)
}

// Cancel discards a running countdown without producing a record.
func (t *EarningTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateRunning {
		return
	}
	t.state = StateIdle
	t.remainingSeconds = 0
	t.startDate = time.Time{}
}

// Reset returns the machine to idle from any state, clearing the countdown
// and any completed result.
func (t *EarningTimer) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = StateIdle
	t.remainingSeconds = 0
	t.startDate = time.Time{}
	t.result = nil
}

// finalize must be called with the lock held.
func (t *EarningTimer) finalize(elapsedSeconds float64) {
	end := t.clock.Now()
	start := t.startDate
	if start.IsZero() {
		start = end.Add(-time.Duration(elapsedSeconds * float64(time.Second)))
	}

	earned := int(math.Round(elapsedSeconds / 60.0))
	if earned < 1 {
		earned = 1
	}
	label := strings.TrimSpace(t.CustomLabel)

	t.result = &SessionResult{
		Category:        t.Category,
		CustomLabel:     label,
		StartDate:       start,
		EndDate:         end,
		DurationSeconds: elapsedSeconds,
		EarnedMinutes:   earned,
	}
	t.state = StateCompleted
	t.remainingSeconds = 0
	t.startDate = time.Time{}
}

func (t *EarningTimer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *EarningTimer) RemainingSeconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingSeconds
}

// Result returns the completed session, or nil when the timer has not
// completed.
func (t *EarningTimer) Result() *SessionResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateCompleted {
		return nil
	}
	return t.result
}
