package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countingTicker struct {
	ticks atomic.Int64
}

func (c *countingTicker) Tick() {
	c.ticks.Add(1)
}

func TestDriverDeliversTicks(t *testing.T) {
	if testing.Short() {
		t.Skip("waits on the wall clock")
	}

	target := &countingTicker{}
	d := NewDriver(target)
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(2500 * time.Millisecond)
	d.Stop()

	got := target.ticks.Load()
	if got < 1 || got > 3 {
		t.Fatalf("delivered %d ticks in ~2.5s", got)
	}

	// No ticks after Stop.
	after := target.ticks.Load()
	time.Sleep(1200 * time.Millisecond)
	if target.ticks.Load() != after {
		t.Fatal("ticks delivered after Stop")
	}
}

func TestDriverDoubleStartRejected(t *testing.T) {
	d := NewDriver(&countingTicker{})
	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer d.Stop()

	if err := d.Start(context.Background()); err == nil {
		t.Fatal("second start should fail")
	}
}

func TestDriverStopIdempotent(t *testing.T) {
	d := NewDriver(&countingTicker{})
	d.Stop() // never started: no-op

	if err := d.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	d.Stop()
	d.Stop() // second stop is a no-op
}
