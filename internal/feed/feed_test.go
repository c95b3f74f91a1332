package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSeed(t, `
events:
  - title: Team Standup
    startTime: "09:00"
    endTime: "09:15"
    type: meeting
    priority: high
  - title: Lunch
    startTime: "12:30"
    endTime: "13:30"
    type: break
  - title: Submit timesheet
    startTime: "16:00"
    endTime: "16:00"
    kind: reminder
`)

	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("event count = %d, want 3", len(events))
	}

	first := events[0]
	if first.Title != "Team Standup" || first.StartTime != "09:00" {
		t.Errorf("first event = %+v", first)
	}
	if !strings.HasPrefix(first.ID, "seed-") {
		t.Errorf("id %q not namespaced", first.ID)
	}

	// Defaults fill in what the file omits.
	lunch := events[1]
	if lunch.Priority != "medium" || lunch.Kind != "event" {
		t.Errorf("defaults not applied: priority=%q kind=%q", lunch.Priority, lunch.Kind)
	}

	if events[2].Kind != "reminder" {
		t.Errorf("reminder kind = %q", events[2].Kind)
	}
}

func TestLoadSkipsInvalidEntries(t *testing.T) {
	path := writeSeed(t, `
events:
  - title: Valid
    startTime: "09:00"
    endTime: "10:00"
  - title: ""
    startTime: "10:00"
    endTime: "11:00"
  - title: Bad time
    startTime: "25:00"
    endTime: "26:00"
`)

	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("event count = %d, want 1 (invalid entries skipped)", len(events))
	}
	if events[0].Title != "Valid" {
		t.Errorf("kept event = %q", events[0].Title)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeSeed(t, "events: [not: {valid")
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeSeed(t, "")
	events, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("event count = %d, want 0", len(events))
	}
}
