package ui

import (
	"fmt"
	"strings"

	"timeflow/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field order in the editor form.
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldKind
	fieldType
	fieldPriority
	fieldLocation
	fieldDescription
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Title",
	"Start (HH:MM)",
	"End (HH:MM)",
	"Kind",
	"Type",
	"Priority",
	"Location",
	"Description",
}

var (
	kindOptions     = []schedule.Kind{schedule.KindEvent, schedule.KindReminder}
	typeOptions     = []schedule.EventType{schedule.TypeMeeting, schedule.TypePresentation, schedule.TypeBreak, schedule.TypeWork, schedule.TypePlanning}
	priorityOptions = []schedule.Priority{schedule.PriorityHigh, schedule.PriorityMedium, schedule.PriorityLow}
)

// eventForm holds the editor's field values. Enum fields cycle through
// their options; the rest take free text.
type eventForm struct {
	values [fieldCount]string
	active int
}

func formFromEvent(event schedule.Event) eventForm {
	var f eventForm
	f.values[fieldTitle] = event.Title
	f.values[fieldStart] = event.StartTime
	f.values[fieldEnd] = event.EndTime
	f.values[fieldKind] = string(event.Kind)
	f.values[fieldType] = string(event.Type)
	f.values[fieldPriority] = string(event.Priority)
	f.values[fieldLocation] = event.Location
	f.values[fieldDescription] = event.Description
	return f
}

func (f *eventForm) event() schedule.Event {
	return schedule.Event{
		Title:       strings.TrimSpace(f.values[fieldTitle]),
		StartTime:   strings.TrimSpace(f.values[fieldStart]),
		EndTime:     strings.TrimSpace(f.values[fieldEnd]),
		Kind:        schedule.Kind(f.values[fieldKind]),
		Type:        schedule.EventType(f.values[fieldType]),
		Priority:    schedule.Priority(f.values[fieldPriority]),
		Location:    strings.TrimSpace(f.values[fieldLocation]),
		Description: strings.TrimSpace(f.values[fieldDescription]),
	}
}

func (f *eventForm) isEnum(field int) bool {
	return field == fieldKind || field == fieldType || field == fieldPriority
}

// cycle advances an enum field by delta, wrapping around.
func (f *eventForm) cycle(field, delta int) {
	var options []string
	switch field {
	case fieldKind:
		for _, o := range kindOptions {
			options = append(options, string(o))
		}
	case fieldType:
		for _, o := range typeOptions {
			options = append(options, string(o))
		}
	case fieldPriority:
		for _, o := range priorityOptions {
			options = append(options, string(o))
		}
	default:
		return
	}

	current := 0
	for i, o := range options {
		if o == f.values[field] {
			current = i
			break
		}
	}

	next := (current + delta + len(options)) % len(options)
	f.values[field] = options[next]
}

// openEditor enters the editor with a draft; id is empty for a new
// record and non-empty for a full-record edit.
func (m *Model) openEditor(draft schedule.Event, id string) {
	m.form = formFromEvent(draft)
	m.editingID = id
	m.mode = ViewEditor
}

func (m *Model) handleEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form

	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ViewDay
		return m, nil

	case tea.KeyEnter:
		return m, m.saveForm()

	case tea.KeyTab, tea.KeyDown:
		f.active = (f.active + 1) % fieldCount

	case tea.KeyShiftTab, tea.KeyUp:
		f.active = (f.active + fieldCount - 1) % fieldCount

	case tea.KeyLeft:
		f.cycle(f.active, -1)

	case tea.KeyRight:
		f.cycle(f.active, 1)

	case tea.KeyBackspace:
		if !f.isEnum(f.active) && len(f.values[f.active]) > 0 {
			f.values[f.active] = f.values[f.active][:len(f.values[f.active])-1]
		}

	case tea.KeySpace:
		if f.isEnum(f.active) {
			f.cycle(f.active, 1)
		} else {
			f.values[f.active] += " "
		}

	case tea.KeyRunes:
		if !f.isEnum(f.active) {
			f.values[f.active] += string(msg.Runes)
		}
	}

	return m, nil
}

// saveForm validates the draft and commits it to the store. Errors stay
// inline: the form remains open with a message and nothing is stored.
func (m *Model) saveForm() tea.Cmd {
	draft := m.form.event()

	if _, err := schedule.TimeToMinutes(draft.StartTime); err != nil {
		return m.showMessage(fmt.Sprintf("Start: %v", err))
	}
	if _, err := schedule.TimeToMinutes(draft.EndTime); err != nil {
		return m.showMessage(fmt.Sprintf("End: %v", err))
	}

	var cmd tea.Cmd
	if m.editingID == "" {
		created, err := m.store.Add(draft)
		if err != nil {
			return m.showMessage(err.Error())
		}
		cmd = m.showMessage(fmt.Sprintf("Added %q", created.Title))
	} else {
		err := m.store.Edit(m.editingID, draft)
		if err != nil {
			if err == schedule.ErrNotFound {
				// The record vanished under the edit; drop the form.
				m.mode = ViewDay
			}
			return m.showMessage(err.Error())
		}
		cmd = m.showMessage(fmt.Sprintf("Updated %q", draft.Title))
	}

	m.mode = ViewDay
	return cmd
}

func (m *Model) viewEditor() string {
	var sections []string

	title := "New Event"
	if m.editingID != "" {
		title = "Edit Event"
	}
	sections = append(sections, m.styles.Header.Render(title), "")

	for i := 0; i < fieldCount; i++ {
		label := fmt.Sprintf("%-14s", fieldLabels[i])
		value := m.form.values[i]

		if i == m.form.active {
			if m.form.isEnum(i) {
				value = "◂ " + value + " ▸"
			} else {
				value += "█"
			}
			sections = append(sections, m.styles.Selected.Render(label+value))
		} else {
			sections = append(sections, m.styles.Normal.Render(label+value))
		}
	}

	sections = append(sections, "")
	sections = append(sections, m.styles.Help.Render(
		"Tab/↓ next field  ←/→ cycle choice  Enter save  Esc cancel"))

	if m.message != "" {
		sections = append(sections, m.styles.Message.Render(m.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
