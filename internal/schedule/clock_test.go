package schedule

import (
	"testing"
	"time"
)

func TestClockDeliversTicks(t *testing.T) {
	clock := NewClock(5 * time.Millisecond)
	clock.SetNowFunc(func() int { return 845 })
	clock.Start()
	defer clock.Stop()

	select {
	case got := <-clock.Ticks():
		if got != 845 {
			t.Errorf("tick = %d, want 845", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no tick delivered")
	}
}

func TestClockStop(t *testing.T) {
	clock := NewClock(5 * time.Millisecond)
	clock.Start()
	clock.Stop()
	clock.Stop() // idempotent

	// Let the ticker goroutine observe the stop, drain anything already
	// in flight, then verify silence.
	time.Sleep(20 * time.Millisecond)
	select {
	case <-clock.Ticks():
	default:
	}

	select {
	case <-clock.Ticks():
		t.Error("tick delivered after Stop")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClockDefaultInterval(t *testing.T) {
	clock := NewClock(0)
	if clock.interval != DefaultTickInterval {
		t.Errorf("interval = %v, want %v", clock.interval, DefaultTickInterval)
	}
}
