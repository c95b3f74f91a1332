package assist

import (
	"strings"

	"timeflow/internal/schedule"
)

// BuildPrompt renders a Request as the line-oriented prompt a planning
// assistant consumes: one "key: value" line per field, busy slots listed
// in store order. The Simulator ignores it, but the headless suggest
// command prints it so the request going to a planner is inspectable.
func BuildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("date: ")
	b.WriteString(req.Day.Format("2006-01-02"))
	b.WriteString("\n")

	if req.Focus != "" {
		b.WriteString("focus: ")
		b.WriteString(req.Focus)
		b.WriteString("\n")
	}

	if len(req.Events) == 0 {
		b.WriteString("busy: none\n")
		return b.String()
	}

	for _, e := range req.Events {
		if e.IsReminder() {
			b.WriteString("reminder: ")
			b.WriteString(e.StartTime)
			b.WriteString(" ")
			b.WriteString(e.Title)
			b.WriteString("\n")
			continue
		}

		b.WriteString("busy: ")
		b.WriteString(e.StartTime)
		b.WriteString("–")
		b.WriteString(e.EndTime)
		b.WriteString(" ")
		b.WriteString(e.Title)
		b.WriteString("\n")
	}

	return b.String()
}

// FreeMinutes reports how much of the simulator's workday is unoccupied,
// which the UI surfaces alongside a suggestion preview.
func FreeMinutes(events []schedule.Event, workdayStart, workdayEnd int) int {
	free := workdayEnd - workdayStart
	for _, iv := range busyIntervals(events) {
		start := iv.start
		if start < workdayStart {
			start = workdayStart
		}
		end := iv.end
		if end > workdayEnd {
			end = workdayEnd
		}
		if end > start {
			free -= end - start
		}
	}
	if free < 0 {
		free = 0
	}
	return free
}
