package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func (m *Model) viewHelp() string {
	help := []string{
		m.styles.Header.Render("TimeFlow Help"),
		"",
		m.styles.Normal.Render("Navigation:"),
		m.styles.Help.Render("  j/↓     - Next time slot"),
		m.styles.Help.Render("  k/↑     - Previous time slot"),
		m.styles.Help.Render("  g/G     - Start / end of day"),
		m.styles.Help.Render("  o       - Go to current time"),
		m.styles.Help.Render("  z       - Zoom (change time increment)"),
		"",
		m.styles.Normal.Render("Actions:"),
		m.styles.Help.Render("  n       - New event at cursor"),
		m.styles.Help.Render("  m       - New reminder at cursor"),
		m.styles.Help.Render("  e       - Edit event at cursor"),
		m.styles.Help.Render("  d       - Delete event at cursor"),
		m.styles.Help.Render("  s       - Suggest a plan for the day"),
		m.styles.Help.Render("  L       - Toggle overlap lanes"),
		m.styles.Help.Render("  ?       - Toggle help"),
		m.styles.Help.Render("  q       - Quit"),
		"",
		m.styles.Help.Render("Press any key to return..."),
	}

	return lipgloss.JoinVertical(lipgloss.Left, help...)
}

func (m *Model) viewConfirmDelete() string {
	event := m.pendingDelete

	timeLine := event.StartTime + " – " + event.EndTime
	if event.IsReminder() {
		timeLine = event.StartTime + " (reminder)"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.styles.Header.Render("Delete?"),
		"",
		m.styles.Normal.Render(event.Title),
		m.styles.Help.Render(timeLine),
		"",
		m.styles.Help.Render("y to delete, any other key to cancel"),
	)

	return m.styles.Border.Render(content)
}

func (m *Model) viewSuggestion() string {
	var sections []string

	sections = append(sections, m.styles.Header.Render("Suggested Plan"), "")

	if m.focusEntry {
		sections = append(sections, m.styles.Normal.Render("Focus (optional): "+m.focus+"█"))
		sections = append(sections, "")
		sections = append(sections, m.styles.Help.Render("Enter to ask, Esc to cancel"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.planning {
		sections = append(sections, m.styles.Normal.Render("Asking your assistant..."))
		sections = append(sections, "")
		sections = append(sections, m.styles.Help.Render("Esc to cancel"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	width := m.width - 4
	if width < 30 {
		width = 30
	}

	for _, line := range strings.Split(wordwrap.String(m.suggestion, width), "\n") {
		sections = append(sections, m.styles.Normal.Render(line))
	}

	sections = append(sections, "")
	sections = append(sections, m.styles.Event.Render(
		fmt.Sprintf("%d events parsed from this plan", len(m.drafts))))
	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render("Enter to accept, Esc to discard"))

	if m.message != "" {
		sections = append(sections, m.styles.Message.Render(m.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
