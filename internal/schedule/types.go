package schedule

// EventType categorizes an event for display purposes only; it has no
// effect on scheduling or layout.
type EventType string

const (
	TypeMeeting      EventType = "meeting"
	TypePresentation EventType = "presentation"
	TypeBreak        EventType = "break"
	TypeWork         EventType = "work"
	TypePlanning     EventType = "planning"
)

// Priority affects visual emphasis, not ordering.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Kind distinguishes duration-bearing events from point-in-time reminders.
type Kind string

const (
	KindEvent    Kind = "event"
	KindReminder Kind = "reminder"
)

// Event is a single calendar item on the day timeline. Times are naive
// local wall-clock "HH:MM" strings; there is no timezone or multi-day
// handling. For KindReminder the EndTime is retained but ignored by layout.
type Event struct {
	ID          string    `yaml:"id,omitempty"`
	Title       string    `yaml:"title"`
	StartTime   string    `yaml:"startTime"`
	EndTime     string    `yaml:"endTime"`
	Description string    `yaml:"description,omitempty"`
	Location    string    `yaml:"location,omitempty"`
	Type        EventType `yaml:"type,omitempty"`
	Priority    Priority  `yaml:"priority,omitempty"`
	Kind        Kind      `yaml:"kind,omitempty"`
}

// IsReminder reports whether the item is a zero-duration marker.
func (e Event) IsReminder() bool {
	return e.Kind == KindReminder
}
