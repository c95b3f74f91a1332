// Package assist produces freeform day-plan suggestions for the
// scheduling engine to parse. The only shipped implementation simulates
// the planning assistant locally; the Planner interface is the seam a
// network-backed assistant would plug into.
package assist

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"timeflow/internal/schedule"
)

// Request describes one planning call: the day being planned, the events
// already on it, and an optional focus theme for the first work block.
type Request struct {
	Day    time.Time
	Events []schedule.Event
	Focus  string
}

// Planner returns a multi-line schedule suggestion for the request. The
// text is advisory; callers run it through schedule.ParseSuggestion and
// keep whatever parses.
type Planner interface {
	Plan(ctx context.Context, req Request) (string, error)
}

// Simulator is a deterministic local Planner. It proposes work blocks in
// the configured workday that avoid the request's existing events, with a
// small artificial latency so the UI exercises its async path.
type Simulator struct {
	WorkdayStart int // minutes since midnight
	WorkdayEnd   int
	Latency      time.Duration
}

// NewSimulator returns a Simulator covering a 9:00-17:00 workday.
func NewSimulator() *Simulator {
	return &Simulator{
		WorkdayStart: 9 * 60,
		WorkdayEnd:   17 * 60,
		Latency:      800 * time.Millisecond,
	}
}

const maxBlockMinutes = 90

var blockTitles = []string{
	"Deep work",
	"Email and follow-ups",
	"Project planning",
	"Review and wrap-up",
}

func (s *Simulator) Plan(ctx context.Context, req Request) (string, error) {
	if s.Latency > 0 {
		select {
		case <-time.After(s.Latency):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	busy := busyIntervals(req.Events)

	lines := []string{
		fmt.Sprintf("Here's a suggested plan for %s:", req.Day.Format("Monday, January 2")),
		"",
	}

	block := 0
	cursor := s.WorkdayStart
	for cursor < s.WorkdayEnd {
		gapEnd := s.WorkdayEnd
		for _, iv := range busy {
			if iv.start <= cursor {
				if iv.end > cursor {
					cursor = iv.end
				}
				continue
			}
			if iv.start < gapEnd {
				gapEnd = iv.start
			}
			break
		}
		if cursor >= s.WorkdayEnd {
			break
		}

		// Gaps shorter than half an hour are not worth scheduling.
		if gapEnd-cursor < 30 {
			cursor = gapEnd
			continue
		}

		end := cursor + maxBlockMinutes
		if end > gapEnd {
			end = gapEnd
		}

		title := blockTitles[block%len(blockTitles)]
		if block == 0 && req.Focus != "" {
			title = "Focus: " + req.Focus
		}
		block++

		lines = append(lines, fmt.Sprintf("%s–%s %s",
			schedule.MinutesToTime(cursor), schedule.MinutesToTime(end), title))
		cursor = end
	}

	if block == 0 {
		lines = append(lines, "Your day is already full. No open slots to plan.")
	}

	lines = append(lines, "", "Accept to add these blocks to your timeline.")

	return strings.Join(lines, "\n"), nil
}

type interval struct {
	start, end int
}

// busyIntervals collects, sorts, and merges the occupied ranges of the
// day. Reminders and events with unparsable times contribute nothing.
func busyIntervals(events []schedule.Event) []interval {
	var ivs []interval
	for _, e := range events {
		if e.IsReminder() {
			continue
		}
		start, err := schedule.TimeToMinutes(e.StartTime)
		if err != nil {
			continue
		}
		end, err := schedule.TimeToMinutes(e.EndTime)
		if err != nil || end <= start {
			continue
		}
		ivs = append(ivs, interval{start: start, end: end})
	}

	sort.Slice(ivs, func(i, j int) bool { return ivs[i].start < ivs[j].start })

	var merged []interval
	for _, iv := range ivs {
		if n := len(merged); n > 0 && iv.start <= merged[n-1].end {
			if iv.end > merged[n-1].end {
				merged[n-1].end = iv.end
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}
