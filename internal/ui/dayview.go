package ui

import (
	"fmt"
	"strings"

	"timeflow/internal/assist"
	"timeflow/internal/schedule"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	gutterWidth = 8 // "HH:MM │ "
	lanePadding = 2
	maxLanes    = 4
)

// viewDay renders the timeline grid with the details sidebar and status
// bar.
func (m *Model) viewDay() string {
	gridWidth := m.width * 2 / 3
	if gridWidth < 40 {
		gridWidth = 40
	}

	grid := m.renderGrid(gridWidth)
	sidebar := m.renderSidebar(m.width - gridWidth - 1)

	mainContent := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Width(gridWidth).Render(grid),
		" ",
		sidebar,
	)

	return lipgloss.JoinVertical(lipgloss.Left, mainContent, m.renderStatusBar())
}

func (m *Model) renderGrid(gridWidth int) string {
	var lines []string

	slots := m.slotsPerDay()
	visible := m.visibleSlots()
	lanes := m.slotLanes()

	maxLane := 0
	for _, lane := range lanes {
		if lane > maxLane {
			maxLane = lane
		}
	}
	if maxLane >= maxLanes {
		maxLane = maxLanes - 1
	}

	numLanes := maxLane + 1
	laneWidth := (gridWidth - gutterWidth - lanePadding*(numLanes-1)) / numLanes
	if laneWidth < 10 {
		laneWidth = 10
	}

	header := m.day.Format("─Mon Jan 02")
	lines = append(lines, m.styles.Header.Render(header))

	for i := 0; i < visible; i++ {
		slot := m.topSlot + i
		if slot >= slots {
			break
		}

		lines = append(lines, m.renderSlotLine(slot, lanes, numLanes, laneWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderSlotLine(slot int, lanes map[string]int, numLanes, laneWidth int) string {
	minutes := m.slotMinutes(slot)

	// Hour boundaries get the 12-hour label, inner slots the raw time.
	var gutter string
	if minutes%60 == 0 {
		gutter = fmt.Sprintf("%5s │ ", schedule.FormatHourLabel(minutes/60))
	} else {
		gutter = fmt.Sprintf("%5s │ ", schedule.MinutesToTime(minutes))
	}

	// Place each covering item in its lane; only the starting slot
	// carries the title, continuation rows show a bar.
	laneText := make([]string, numLanes)
	for _, event := range m.eventsInSlot(slot) {
		lane := lanes[event.ID]
		if lane >= numLanes {
			lane = numLanes - 1
		}

		startSlot, _, ok := m.eventSpan(event)
		if !ok {
			continue
		}

		if startSlot == slot {
			text := typeIcon(event.Type) + " " + event.Title
			if event.IsReminder() {
				text = "! " + event.Title
			}
			// Cell-width aware so wide runes never split mid-sequence.
			text = runewidth.Truncate(text, laneWidth, "...")
			// First writer wins within a lane; later items stack behind.
			if laneText[lane] == "" {
				laneText[lane] = text
			}
		} else if laneText[lane] == "" {
			laneText[lane] = "│"
		}
	}

	line := gutter
	gutterCols := runewidth.StringWidth(gutter)
	pos := gutterCols
	for lane := 0; lane < numLanes; lane++ {
		if laneText[lane] == "" {
			continue
		}
		target := gutterCols + lane*(laneWidth+lanePadding)
		if target > pos {
			line += strings.Repeat(" ", target-pos)
			pos = target
		}
		line += laneText[lane]
		pos += runewidth.StringWidth(laneText[lane])
	}

	style := m.styles.Normal
	if slot == m.nowSlot() {
		style = m.styles.Now
	}
	if slot == m.selectedSlot {
		style = m.styles.Selected
	}

	return style.Render(line)
}

func (m *Model) renderSidebar(width int) string {
	if width < 20 {
		width = 20
	}

	var lines []string

	lines = append(lines, m.styles.Header.Render(fmt.Sprintf(
		"Selected: %s", schedule.MinutesToTime(m.slotMinutes(m.selectedSlot)))))
	lines = append(lines, "")

	events := m.eventsInSlot(m.selectedSlot)
	if len(events) == 0 {
		lines = append(lines, m.styles.Help.Render("(nothing scheduled)"))
	}

	for i, event := range events {
		if i > 0 {
			lines = append(lines, "")
		}

		timeLine := event.StartTime + " – " + event.EndTime
		if event.IsReminder() {
			timeLine = event.StartTime + " (reminder)"
		}
		lines = append(lines, m.styles.Event.Render(timeLine))
		lines = append(lines, typeIcon(event.Type)+" "+event.Title)

		if event.Location != "" {
			lines = append(lines, m.styles.Help.Render("at "+event.Location))
		}

		lines = append(lines, m.styles.priorityStyle(event.Priority).Render(
			"priority: "+string(event.Priority)))

		if event.Description != "" {
			desc := event.Description
			if m.config.WrapText {
				desc = wordwrap.String(desc, width-4)
			}
			for _, dl := range strings.Split(desc, "\n") {
				if dl != "" {
					lines = append(lines, m.styles.Help.Render(dl))
				}
			}
		}
	}

	lines = append(lines, "")
	free := assist.FreeMinutes(m.store.List(), m.config.WorkdayStart, m.config.WorkdayEnd)
	lines = append(lines, m.styles.Help.Render(
		fmt.Sprintf("%d events · %dh%02dm free today", m.store.Len(), free/60, free%60)))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.styles.Border.Width(width).Render(content)
}

func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf(" Now: %s | Events: %d", schedule.MinutesToTime(m.nowMinutes), m.store.Len())

	right := "j/k:slot  n:new  m:reminder  e:edit  d:delete  s:suggest  z:zoom  o:now  ?:help  q:quit"
	if m.message != "" {
		right = m.styles.Message.Render(m.message)
	}

	width := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if width < 0 {
		width = 0
	}

	return m.styles.Help.Render(left + strings.Repeat(" ", width) + right)
}
