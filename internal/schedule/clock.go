package schedule

import (
	"sync"
	"time"
)

// DefaultTickInterval is how often the now indicator is refreshed.
const DefaultTickInterval = time.Minute

// Clock is an owned, cancellable periodic task that samples the
// wall-clock and delivers minutes-since-midnight on Ticks. It exists so
// the host application starts and stops the timer explicitly instead of
// leaving an ambient timer running against a torn-down view.
type Clock struct {
	interval time.Duration
	now      func() int

	ticks    chan int
	done     chan struct{}
	stopOnce sync.Once
}

// NewClock creates a stopped clock. A non-positive interval falls back to
// DefaultTickInterval.
func NewClock(interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &Clock{
		interval: interval,
		now:      NowMinutes,
		ticks:    make(chan int, 1),
		done:     make(chan struct{}),
	}
}

// SetNowFunc overrides the clock sample, for tests.
func (c *Clock) SetNowFunc(now func() int) {
	c.now = now
}

// Ticks delivers the current minute value once per interval. A tick that
// finds the channel full is dropped; each value is a complete sample, so
// a slow consumer only ever misses stale ones.
func (c *Clock) Ticks() <-chan int {
	return c.ticks
}

// Start launches the ticker goroutine. Calling Start on a stopped clock
// is a no-op.
func (c *Clock) Start() {
	go func() {
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				select {
				case c.ticks <- c.now():
				default:
				}
			case <-c.done:
				return
			}
		}
	}()
}

// Stop cancels the ticker. It is idempotent and safe to call whether or
// not Start ran.
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// Now returns the current sample without waiting for a tick.
func (c *Clock) Now() int {
	return c.now()
}
