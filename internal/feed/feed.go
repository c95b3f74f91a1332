// Package feed loads the day's seed schedule from a YAML file and
// watches it for edits. The file is read-only input for the session;
// nothing in the application writes it back.
package feed

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"timeflow/internal/log"
	"timeflow/internal/schedule"
)

// File is the on-disk shape of a schedule seed.
type File struct {
	Events []schedule.Event `yaml:"events"`
}

// Load reads a seed file and returns the valid entries ready for
// Store.AddBatch. Loading is best effort at the entry level: records with
// missing fields or unparsable times are skipped and logged, matching how
// suggestion lines are treated. A missing or unparsable file is an error.
func Load(path string) ([]schedule.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schedule file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing schedule file %s: %w", path, err)
	}

	events := make([]schedule.Event, 0, len(file.Events))
	for i, event := range file.Events {
		if err := validate(event); err != nil {
			log.Info("skipping seed entry", "file", path, "entry", i+1, "reason", err)
			continue
		}

		applyDefaults(&event)
		events = append(events, event)
	}

	return events, nil
}

func validate(event schedule.Event) error {
	if event.Title == "" {
		return fmt.Errorf("missing title")
	}
	if _, err := schedule.TimeToMinutes(event.StartTime); err != nil {
		return fmt.Errorf("startTime: %w", err)
	}
	if _, err := schedule.TimeToMinutes(event.EndTime); err != nil {
		return fmt.Errorf("endTime: %w", err)
	}
	return nil
}

func applyDefaults(event *schedule.Event) {
	if event.ID == "" {
		// Namespaced like suggestion ids so seeds never collide with
		// store-assigned ids.
		event.ID = "seed-" + uuid.NewString()
	}
	if event.Type == "" {
		event.Type = schedule.TypeWork
	}
	if event.Priority == "" {
		event.Priority = schedule.PriorityMedium
	}
	if event.Kind == "" {
		event.Kind = schedule.KindEvent
	}
}
