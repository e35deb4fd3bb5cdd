package timer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Ticker is anything that consumes once-per-second ticks.
type Ticker interface {
	Tick()
}

// Driver pumps wall-clock seconds into a timer. Tests bypass it and call
// Tick directly; the worker binary uses it for real countdowns.
type Driver struct {
	target Ticker

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func NewDriver(target Ticker) *Driver {
	return &Driver{target: target}
}

// Start begins delivering ticks on a dedicated goroutine. Returns an error
// if the driver is already running.
func (d *Driver) Start(ctx context.Context) error {
	d.mu.Lock()
	if d.running {
		d.mu.Unlock()
		return fmt.Errorf("tick driver is already running")
	}
	d.running = true
	d.stopCh = make(chan struct{})
	d.doneCh = make(chan struct{})
	d.mu.Unlock()

	go d.runLoop(ctx)
	return nil
}

// Stop halts tick delivery and waits for the loop to exit.
func (d *Driver) Stop() {
	d.mu.Lock()
	if !d.running {
		d.mu.Unlock()
		return
	}
	d.running = false
	stop := d.stopCh
	done := d.doneCh
	d.mu.Unlock()

	close(stop)
	<-done
}

func (d *Driver) runLoop(ctx context.Context) {
	defer close(d.doneCh)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			slog.DebugContext(ctx, "Tick driver stopping", "reason", ctx.Err())
			return
		case <-ticker.C:
			d.target.Tick()
		}
	}
}
