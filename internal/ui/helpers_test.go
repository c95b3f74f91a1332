package ui

import (
	"testing"
	"time"

	"timeflow/internal/assist"
	"timeflow/internal/config"
	"timeflow/internal/schedule"
)

func newTestModel(t *testing.T) (*Model, *schedule.Store) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.TimeIncrement = 30

	store := schedule.NewStore()
	clock := schedule.NewClock(time.Hour)

	planner := assist.NewSimulator()
	planner.Latency = 0

	m := NewModel(cfg, store, clock, planner)
	m.width = 100
	m.height = 30
	t.Cleanup(m.Close)

	return m, store
}

func addTestEvent(t *testing.T, store *schedule.Store, title, start, end string) schedule.Event {
	t.Helper()
	created, err := store.Add(schedule.Event{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Type:      schedule.TypeMeeting,
		Priority:  schedule.PriorityMedium,
		Kind:      schedule.KindEvent,
	})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return created
}

func TestSlotMath(t *testing.T) {
	m, _ := newTestModel(t)

	if got := m.slotsPerDay(); got != 48 {
		t.Errorf("slotsPerDay = %d, want 48", got)
	}

	m.config.TimeIncrement = 15
	if got := m.slotsPerDay(); got != 96 {
		t.Errorf("slotsPerDay at 15m = %d, want 96", got)
	}

	m.config.TimeIncrement = 30
	if got := m.slotMinutes(25); got != 750 {
		t.Errorf("slotMinutes(25) = %d, want 750", got)
	}
	if got := m.minutesToSlot(845); got != 28 {
		t.Errorf("minutesToSlot(845) = %d, want 28", got)
	}
}

func TestSpanSlots(t *testing.T) {
	m, _ := newTestModel(t)

	tests := []struct {
		start, end int
		want       int
	}{
		{540, 600, 2},  // one hour = two 30-minute rows
		{540, 545, 1},  // five minutes still occupies one row
		{540, 540, 1},  // zero duration floors at one row
		{540, 530, 1},  // inverted range floors at one row
		{540, 631, 4},  // 91 minutes rounds up
	}

	for _, tt := range tests {
		if got := m.spanSlots(tt.start, tt.end); got != tt.want {
			t.Errorf("spanSlots(%d, %d) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestEventSpan(t *testing.T) {
	m, _ := newTestModel(t)

	event := schedule.Event{Title: "Lunch", StartTime: "12:30", EndTime: "13:30", Kind: schedule.KindEvent}
	startSlot, span, ok := m.eventSpan(event)
	if !ok {
		t.Fatal("eventSpan rejected a valid event")
	}
	if startSlot != 25 || span != 2 {
		t.Errorf("span = (%d, %d), want (25, 2)", startSlot, span)
	}

	reminder := schedule.Event{Title: "Ping", StartTime: "16:00", EndTime: "16:00", Kind: schedule.KindReminder}
	startSlot, span, ok = m.eventSpan(reminder)
	if !ok {
		t.Fatal("eventSpan rejected a valid reminder")
	}
	if startSlot != 32 || span != 1 {
		t.Errorf("reminder span = (%d, %d), want (32, 1)", startSlot, span)
	}

	if _, _, ok := m.eventSpan(schedule.Event{StartTime: "bad"}); ok {
		t.Error("eventSpan accepted a malformed time")
	}
}

func TestEventsInSlot(t *testing.T) {
	m, store := newTestModel(t)
	addTestEvent(t, store, "Lunch", "12:30", "13:30")

	if got := m.eventsInSlot(25); len(got) != 1 {
		t.Errorf("events at 12:30 = %d, want 1", len(got))
	}
	if got := m.eventsInSlot(26); len(got) != 1 {
		t.Errorf("events at 13:00 (continuation) = %d, want 1", len(got))
	}
	if got := m.eventsInSlot(27); len(got) != 0 {
		t.Errorf("events at 13:30 = %d, want 0 (end is exclusive)", len(got))
	}
}

func TestSlotLanes(t *testing.T) {
	m, store := newTestModel(t)
	a := addTestEvent(t, store, "A", "9:00", "10:00")
	b := addTestEvent(t, store, "B", "9:30", "10:30")

	lanes := m.slotLanes()
	if lanes[a.ID] == lanes[b.ID] {
		t.Errorf("overlapping events share lane %d", lanes[a.ID])
	}

	// Disabling lanes restores single-column stacking.
	m.useLanes = false
	lanes = m.slotLanes()
	if lanes[a.ID] != 0 || lanes[b.ID] != 0 {
		t.Errorf("lanes with stacking = %d, %d, want 0, 0", lanes[a.ID], lanes[b.ID])
	}
}
