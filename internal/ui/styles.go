package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"timeflow/internal/schedule"
)

type Styles struct {
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Now      lipgloss.Style
	Header   lipgloss.Style
	Event    lipgloss.Style
	Reminder lipgloss.Style
	High     lipgloss.Style
	Medium   lipgloss.Style
	Low      lipgloss.Style
	Help     lipgloss.Style
	Message  lipgloss.Style
	Border   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("220")).
			Bold(true),
		Now: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("4")).
			Bold(true),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Bold(true).
			Underline(true),
		Event: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Reminder: lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")),
		High: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		Medium: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		Low: lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Message: lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")).
			Background(lipgloss.Color("235")).
			Padding(0, 1),
		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")),
	}
}

// StylesFromConfig applies rc-file color overrides on top of the
// defaults. "default" keeps the built-in style for that element.
func StylesFromConfig(colors map[string]string) Styles {
	s := DefaultStyles()

	targets := map[string]*lipgloss.Style{
		"normal":   &s.Normal,
		"selected": &s.Selected,
		"now":      &s.Now,
		"header":   &s.Header,
		"event":    &s.Event,
		"reminder": &s.Reminder,
		"high":     &s.High,
		"medium":   &s.Medium,
		"low":      &s.Low,
		"help":     &s.Help,
		"message":  &s.Message,
	}

	for name, spec := range colors {
		if target, ok := targets[name]; ok {
			*target = applyColorSpec(*target, spec)
		}
	}

	return s
}

var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
}

// applyColorSpec folds a space-separated rc color spec ("red bold",
// "reverse", "214") into a style.
func applyColorSpec(style lipgloss.Style, spec string) lipgloss.Style {
	for _, token := range strings.Fields(spec) {
		switch token {
		case "default":
			// keep the built-in style
		case "bold":
			style = style.Bold(true)
		case "reverse":
			style = style.Reverse(true)
		case "underline":
			style = style.Underline(true)
		default:
			if code, ok := namedColors[token]; ok {
				style = style.Foreground(lipgloss.Color(code))
			} else if _, err := strconv.Atoi(token); err == nil {
				style = style.Foreground(lipgloss.Color(token))
			}
		}
	}
	return style
}

// priorityStyle picks the accent for a priority: red for high, amber
// for medium, green for low.
func (s Styles) priorityStyle(p schedule.Priority) lipgloss.Style {
	switch p {
	case schedule.PriorityHigh:
		return s.High
	case schedule.PriorityLow:
		return s.Low
	default:
		return s.Medium
	}
}
