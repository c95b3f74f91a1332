package ui

import (
	"timeflow/internal/schedule"
)

// slotsPerDay returns the number of grid rows at the current zoom.
func (m *Model) slotsPerDay() int {
	return schedule.MinutesPerDay / m.config.TimeIncrement
}

// visibleSlots leaves room for the status bar and message line.
func (m *Model) visibleSlots() int {
	visible := m.height - 3
	if visible < 5 {
		visible = 5
	}
	return visible
}

// slotMinutes converts a slot index to minutes since midnight.
func (m *Model) slotMinutes(slot int) int {
	return slot * m.config.TimeIncrement
}

// slotEndMinutes is the exclusive end of a slot, clamped to the day.
func (m *Model) slotEndMinutes(slot int) int {
	end := (slot + 1) * m.config.TimeIncrement
	if end > schedule.MinutesPerDay {
		end = schedule.MinutesPerDay
	}
	return end
}

// minutesToSlot locates the grid row containing a minute offset.
func (m *Model) minutesToSlot(minutes int) int {
	return minutes / m.config.TimeIncrement
}

// spanSlots is how many rows an event occupies, always at least one so
// short events stay visible (the text analogue of the layout's minimum
// band height).
func (m *Model) spanSlots(startMinutes, endMinutes int) int {
	duration := endMinutes - startMinutes
	if duration <= 0 {
		return 1
	}
	span := (duration + m.config.TimeIncrement - 1) / m.config.TimeIncrement
	if span < 1 {
		span = 1
	}
	return span
}

// eventSpan resolves an event's start slot and row span. Events with
// malformed times report ok=false and stay off the grid.
func (m *Model) eventSpan(event schedule.Event) (startSlot, span int, ok bool) {
	start, err := schedule.TimeToMinutes(event.StartTime)
	if err != nil {
		return 0, 0, false
	}

	if event.IsReminder() {
		return m.minutesToSlot(start), 1, true
	}

	end, err := schedule.TimeToMinutes(event.EndTime)
	if err != nil {
		return 0, 0, false
	}

	return m.minutesToSlot(start), m.spanSlots(start, end), true
}

// eventsInSlot returns the events whose span covers the given slot, in
// store order.
func (m *Model) eventsInSlot(slot int) []schedule.Event {
	var out []schedule.Event
	for _, event := range m.store.List() {
		startSlot, span, ok := m.eventSpan(event)
		if !ok {
			continue
		}
		if slot >= startSlot && slot < startSlot+span {
			out = append(out, event)
		}
	}
	return out
}

// eventAtSlot picks the edit/delete target for a slot: the first event
// covering it, in store order.
func (m *Model) eventAtSlot(slot int) (schedule.Event, bool) {
	events := m.eventsInSlot(slot)
	if len(events) == 0 {
		return schedule.Event{}, false
	}
	return events[0], true
}

// slotLanes computes the lane for each event id at the current zoom.
// With lanes disabled every id maps to 0 and overlapping items stack in
// a single column.
func (m *Model) slotLanes() map[string]int {
	lanes := make(map[string]int)
	if !m.useLanes {
		return lanes
	}

	bands, err := m.layout.Bands(m.config.PixelsPerMinute())
	if err != nil {
		return lanes
	}

	for _, band := range schedule.AssignLanes(bands) {
		lanes[band.Event.ID] = band.Lane
	}
	return lanes
}

// nowSlot is the grid row holding the current-time indicator.
func (m *Model) nowSlot() int {
	return m.minutesToSlot(m.nowMinutes)
}

func typeIcon(t schedule.EventType) string {
	switch t {
	case schedule.TypeMeeting:
		return "@"
	case schedule.TypePresentation:
		return "#"
	case schedule.TypeBreak:
		return "~"
	case schedule.TypeWork:
		return "*"
	case schedule.TypePlanning:
		return "+"
	default:
		return "-"
	}
}
