package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"timeflow/internal/schedule"
)

type Config struct {
	// File settings
	ScheduleFile string

	// Timeline settings
	HourHeight    int // pixel units per hour for the layout surface
	TimeIncrement int // minutes per slot in the day view (15, 30, or 60)
	ScrollLead    int // minutes of context shown above "now" on startup

	// Planner settings
	WorkdayStart int // minutes since midnight
	WorkdayEnd   int

	// UI settings
	Colors      map[string]string
	KeyBindings map[string]string

	// Behavior settings
	RefreshRate   time.Duration
	ConfirmDelete bool
	WrapText      bool
}

func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		ScheduleFile: filepath.Join(home, ".timeflow.yaml"),

		HourHeight:    80,
		TimeIncrement: 30,
		ScrollLead:    60,

		WorkdayStart: 9 * 60,
		WorkdayEnd:   17 * 60,

		Colors: map[string]string{
			"normal":   "default",
			"now":      "yellow",
			"selected": "reverse",
			"event":    "green",
			"reminder": "cyan",
			"high":     "red",
			"medium":   "yellow",
			"low":      "green",
			"header":   "bold",
		},

		KeyBindings: map[string]string{
			"quit":         "q",
			"help":         "?",
			"today":        "o",
			"new_event":    "n",
			"new_reminder": "m",
			"edit_event":   "e",
			"delete_event": "d",
			"suggest":      "s",
			"zoom":         "z",
			"next_slot":    "j",
			"prev_slot":    "k",
		},

		RefreshRate:   time.Minute,
		ConfirmDelete: true,
		WrapText:      true,
	}
}

// PixelsPerMinute derives the layout scale from the configured hour
// height.
func (c *Config) PixelsPerMinute() float64 {
	return float64(c.HourHeight) / 60.0
}

func LoadConfig() (*Config, error) {
	config := DefaultConfig()

	// First match wins.
	configPaths := []string{
		os.Getenv("TIMEFLOW_CONFIG"),
		filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "timeflow", "timeflowrc"),
		filepath.Join(os.Getenv("HOME"), ".config", "timeflow", "timeflowrc"),
		filepath.Join(os.Getenv("HOME"), ".timeflowrc"),
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			if err := config.loadFromFile(path); err != nil {
				return nil, fmt.Errorf("error loading config from %s: %w", path, err)
			}
			break
		}
	}

	return config, nil
}

func (c *Config) loadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip comments and empty lines
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if err := c.parseLine(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
	}

	return scanner.Err()
}

var (
	setRe   = regexp.MustCompile(`^set\s+(\w+)\s+(.+)$`)
	bindRe  = regexp.MustCompile(`^bind\s+(\S+)\s+(\S+)$`)
	colorRe = regexp.MustCompile(`^color\s+(\w+)\s+(.+)$`)
)

func (c *Config) parseLine(line string) error {
	// set variable value
	if matches := setRe.FindStringSubmatch(line); matches != nil {
		return c.setVariable(matches[1], matches[2])
	}

	// bind key action
	if matches := bindRe.FindStringSubmatch(line); matches != nil {
		c.KeyBindings[matches[2]] = matches[1]
		return nil
	}

	// color element color_spec
	if matches := colorRe.FindStringSubmatch(line); matches != nil {
		c.Colors[matches[1]] = matches[2]
		return nil
	}

	return fmt.Errorf("unknown config line: %s", line)
}

func (c *Config) setVariable(name, value string) error {
	// Remove quotes if present
	value = strings.Trim(value, `"'`)

	switch name {
	case "schedule_file":
		// Expand ~ to home directory
		if strings.HasPrefix(value, "~/") {
			home, _ := os.UserHomeDir()
			value = filepath.Join(home, value[2:])
		}
		c.ScheduleFile = value

	case "hour_height":
		height, err := strconv.Atoi(value)
		if err != nil || height <= 0 {
			return fmt.Errorf("invalid hour_height: %s", value)
		}
		c.HourHeight = height

	case "time_increment":
		switch value {
		case "15", "30", "60":
			c.TimeIncrement, _ = strconv.Atoi(value)
		default:
			return fmt.Errorf("invalid time_increment: %s (want 15, 30, or 60)", value)
		}

	case "scroll_lead":
		lead, err := strconv.Atoi(value)
		if err != nil || lead < 0 {
			return fmt.Errorf("invalid scroll_lead: %s", value)
		}
		c.ScrollLead = lead

	case "workday_start":
		minutes, err := schedule.TimeToMinutes(value)
		if err != nil {
			return fmt.Errorf("invalid workday_start: %s", value)
		}
		c.WorkdayStart = minutes

	case "workday_end":
		minutes, err := schedule.TimeToMinutes(value)
		if err != nil {
			return fmt.Errorf("invalid workday_end: %s", value)
		}
		c.WorkdayEnd = minutes

	case "refresh_rate":
		rate, err := time.ParseDuration(value)
		if err != nil {
			// Try parsing as seconds
			if seconds, err2 := strconv.Atoi(value); err2 == nil {
				rate = time.Duration(seconds) * time.Second
			} else {
				return fmt.Errorf("invalid refresh_rate: %s", value)
			}
		}
		c.RefreshRate = rate

	case "confirm_delete":
		c.ConfirmDelete = strings.ToLower(value) == "true" || value == "1"

	case "wrap_text":
		c.WrapText = strings.ToLower(value) == "true" || value == "1"

	default:
		return fmt.Errorf("unknown config variable: %s", name)
	}

	return nil
}
