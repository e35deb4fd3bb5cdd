package timer

import (
	"sync"
	"time"

	"earntime/internal/clock"
	"earntime/internal/core"

	"github.com/google/uuid"
)

// DefaultSpendMinutes is the initial spend amount offered to the user.
const DefaultSpendMinutes = 15

// SpendingTimer counts a screen-time allowance down to zero. A spend only
// costs credits once the countdown finishes and Commit is called; a
// cancelled countdown costs nothing.
type SpendingTimer struct {
	mu sync.Mutex

	clock clock.Clock

	// MinutesToSpend must be positive for Start to have any effect.
	MinutesToSpend int

	state            State
	remainingSeconds int
	startDate        time.Time
}

func NewSpendingTimer(clk clock.Clock) *SpendingTimer {
	return &SpendingTimer{
		clock:          clk,
		MinutesToSpend: DefaultSpendMinutes,
		state:          StateIdle,
	}
}

// Start begins the countdown. Only valid from idle with a positive amount;
// anything else is a no-op. Balance authorization happens in the caller —
// the timer has no view of the ledger.
func (t *SpendingTimer) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateIdle || t.MinutesToSpend <= 0 {
		return
	}
	t.remainingSeconds = t.MinutesToSpend * 60
	t.startDate = t.clock.Now()
	t.state = StateCountingDown
}

// Tick consumes one elapsed second; stale ticks are ignored.
func (t *SpendingTimer) Tick() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateCountingDown {
		return
	}
	if t.remainingSeconds > 0 {
		t.remainingSeconds--
		return
	}
	t.state = StateCompleted
}

// Cancel abandons a running countdown. No spend log is produced.
func (t *SpendingTimer) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateCountingDown {
		return
	}
	t.state = StateIdle
	t.remainingSeconds = 0
	t.startDate = time.Time{}
}

// Commit turns a completed countdown into a spend log for the full
// requested amount and resets the machine to idle. From any other state it
// returns nil and changes nothing.
func (t *SpendingTimer) Commit() *core.SpendLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateCompleted {
		return nil
	}

	createdAt := t.startDate
	if createdAt.IsZero() {
		createdAt = t.clock.Now()
	}
	log := &core.SpendLog{
		ID:          uuid.NewString(),
		CreatedAt:   createdAt,
		MinutesUsed: t.MinutesToSpend,
		Source:      core.SourceManualSpend,
	}

	t.state = StateIdle
	t.remainingSeconds = 0
	t.startDate = time.Time{}

	return log
}

func (t *SpendingTimer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *SpendingTimer) RemainingSeconds() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remainingSeconds
}
