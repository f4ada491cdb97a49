package chat

import (
	"time"

	"github.com/facebookgo/clock"
)

// Poller runs a task on a fixed period for as long as the owning view is
// alive. The server never runs one itself: each client view creates a poller
// for its refresh loop (ChatInterval for an open conversation, StatusInterval
// for tracking) and stops it on teardown. The clock is injectable so tests
// advance virtual time instead of sleeping. Stop must be called when the view
// is torn down; afterwards the task never fires again.
type Poller struct {
	clock    clock.Clock
	interval time.Duration
	stop     chan struct{}
}

// NewPoller returns a poller using the real clock.
func NewPoller(interval time.Duration) *Poller {
	return NewPollerWithClock(interval, clock.New())
}

// NewPollerWithClock returns a poller on the given clock.
func NewPollerWithClock(interval time.Duration, c clock.Clock) *Poller {
	return &Poller{clock: c, interval: interval}
}

// Start begins running fn every interval. It does not fire immediately;
// callers that want an initial read perform it themselves before starting.
func (p *Poller) Start(fn func()) {
	if p.stop != nil {
		return
	}
	p.stop = make(chan struct{})
	stop := p.stop

	ticker := p.clock.Ticker(p.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stop:
				return
			}
		}
	}()
}

// Stop cancels the periodic task. Safe to call more than once.
func (p *Poller) Stop() {
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}
