package schedule

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// suggestionLineRe matches one proposed slot per line:
// "<start>–<end> <title>", where the dash may be an en-dash or a hyphen
// and times are H:MM or HH:MM.
var suggestionLineRe = regexp.MustCompile(`^(\d{1,2}:\d{2})[–-](\d{1,2}:\d{2})\s+(.+)$`)

// suggestedDescription marks events that came from an accepted plan.
const suggestedDescription = "Suggested by your schedule assistant"

// ParseSuggestion converts a freeform multi-line schedule suggestion into
// event drafts ready for Store.AddBatch. Parsing is best effort: lines
// that do not match the pattern are silently dropped and only the parsed
// subset is returned, since assistant output is advisory. No validation
// happens beyond the pattern match; in particular start < end is not
// checked.
func ParseSuggestion(text string) []Event {
	var events []Event

	for _, line := range strings.Split(text, "\n") {
		matches := suggestionLineRe.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		events = append(events, Event{
			// Namespaced so ids can never collide with store-assigned ones.
			ID:          "ai-" + uuid.NewString(),
			Title:       matches[3],
			StartTime:   matches[1],
			EndTime:     matches[2],
			Description: suggestedDescription,
			Location:    "",
			Type:        TypeWork,
			Priority:    PriorityMedium,
			Kind:        KindEvent,
		})
	}

	return events
}
