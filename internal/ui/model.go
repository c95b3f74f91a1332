package ui

import (
	"context"
	"fmt"
	"time"

	"timeflow/internal/assist"
	"timeflow/internal/config"
	"timeflow/internal/schedule"

	tea "github.com/charmbracelet/bubbletea"
)

type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewEditor
	ViewConfirmDelete
	ViewSuggestion
	ViewHelp
)

type Model struct {
	// Core components
	config  *config.Config
	store   *schedule.Store
	layout  *schedule.Layout
	clock   *schedule.Clock
	planner assist.Planner

	// View state
	mode       ViewMode
	day        time.Time
	nowMinutes int

	// Day view state
	selectedSlot int // index into the day's slot grid
	topSlot      int // first visible slot
	useLanes     bool

	// UI state
	width        int
	height       int
	message      string
	messageID    int // invalidates stale expiry ticks
	storeChanged chan struct{}
	unsubscribe  func()

	// Editor state
	form      eventForm
	editingID string // empty while creating

	// Delete state
	pendingDelete schedule.Event

	// Suggestion state
	focusEntry bool // typing the focus theme before planning starts
	planning   bool
	suggestion string
	drafts     []schedule.Event
	focus      string

	// Styles
	styles Styles
}

func NewModel(cfg *config.Config, store *schedule.Store, clock *schedule.Clock, planner assist.Planner) *Model {
	m := &Model{
		config:       cfg,
		store:        store,
		layout:       schedule.NewLayout(store),
		clock:        clock,
		planner:      planner,
		mode:         ViewDay,
		day:          time.Now(),
		nowMinutes:   clock.Now(),
		useLanes:     true,
		storeChanged: make(chan struct{}, 1),
		styles:       StylesFromConfig(cfg.Colors),
	}

	// Position the viewport so the now indicator is visible with the
	// configured lead above it.
	m.selectedSlot = m.nowMinutes / cfg.TimeIncrement
	m.topSlot = (m.nowMinutes - cfg.ScrollLead) / cfg.TimeIncrement
	if m.topSlot < 0 {
		m.topSlot = 0
	}

	m.unsubscribe = store.Subscribe(func() {
		select {
		case m.storeChanged <- struct{}{}:
		default:
		}
	})

	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.waitForTick(),
		m.waitForStoreChange(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tickMsg:
		// A tick only moves the now indicator; event layout is
		// untouched until the store actually changes.
		m.nowMinutes = int(msg)
		return m, m.waitForTick()

	case storeChangedMsg:
		return m, m.waitForStoreChange()

	case planMsg:
		m.planning = false
		if msg.err != nil {
			m.mode = ViewDay
			return m, m.showMessage(fmt.Sprintf("Planner error: %v", msg.err))
		}
		m.suggestion = msg.text
		m.drafts = schedule.ParseSuggestion(msg.text)
		return m, nil

	case messageTimeoutMsg:
		// A newer message may have replaced the one this tick was
		// armed for.
		if msg.id == m.messageID {
			m.message = ""
		}
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ViewDay:
		return m.viewDay()
	case ViewEditor:
		return m.viewEditor()
	case ViewConfirmDelete:
		return m.viewConfirmDelete()
	case ViewSuggestion:
		return m.viewSuggestion()
	case ViewHelp:
		return m.viewHelp()
	default:
		return m.viewDay()
	}
}

// Close releases the model's store subscription. The clock is owned and
// stopped by the caller that started it.
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ViewDay:
		return m.handleDayKeys(msg)
	case ViewEditor:
		return m.handleEditorKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmKeys(msg)
	case ViewSuggestion:
		return m.handleSuggestionKeys(msg)
	case ViewHelp:
		m.mode = ViewDay
		return m, nil
	}

	return m, nil
}

// binding resolves an action to its configured key, falling back to
// the default when the rc file left it unbound.
func (m *Model) binding(action, fallback string) string {
	if key, ok := m.config.KeyBindings[action]; ok {
		return key
	}
	return fallback
}

func (m *Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slots := m.slotsPerDay()
	visible := m.visibleSlots()

	switch msg.String() {
	case "ctrl+c", m.binding("quit", "q"):
		return m, tea.Quit

	case m.binding("help", "?"):
		m.mode = ViewHelp

	case m.binding("next_slot", "j"), "down":
		if m.selectedSlot < slots-1 {
			m.selectedSlot++
			if m.selectedSlot >= m.topSlot+visible {
				m.topSlot++
			}
		}

	case m.binding("prev_slot", "k"), "up":
		if m.selectedSlot > 0 {
			m.selectedSlot--
			if m.selectedSlot < m.topSlot {
				m.topSlot--
			}
		}

	case "g":
		m.selectedSlot = 0
		m.topSlot = 0

	case "G":
		m.selectedSlot = slots - 1
		m.topSlot = slots - visible
		if m.topSlot < 0 {
			m.topSlot = 0
		}

	case m.binding("today", "o"):
		// Jump back to the current time with the configured lead.
		m.selectedSlot = m.nowMinutes / m.config.TimeIncrement
		m.topSlot = (m.nowMinutes - m.config.ScrollLead) / m.config.TimeIncrement
		if m.topSlot < 0 {
			m.topSlot = 0
		}

	case m.binding("zoom", "z"):
		m.cycleZoom()

	case "L":
		m.useLanes = !m.useLanes
		if m.useLanes {
			return m, m.showMessage("Overlap lanes on")
		}
		return m, m.showMessage("Overlap lanes off (single column)")

	case m.binding("new_event", "n"):
		m.openEditor(schedule.Event{
			StartTime: schedule.MinutesToTime(m.slotMinutes(m.selectedSlot)),
			EndTime:   schedule.MinutesToTime(m.slotEndMinutes(m.selectedSlot)),
			Type:      schedule.TypeMeeting,
			Priority:  schedule.PriorityMedium,
			Kind:      schedule.KindEvent,
		}, "")

	case m.binding("new_reminder", "m"):
		start := schedule.MinutesToTime(m.slotMinutes(m.selectedSlot))
		m.openEditor(schedule.Event{
			StartTime: start,
			EndTime:   start,
			Type:      schedule.TypeWork,
			Priority:  schedule.PriorityMedium,
			Kind:      schedule.KindReminder,
		}, "")

	case m.binding("edit_event", "e"):
		if event, ok := m.eventAtSlot(m.selectedSlot); ok {
			m.openEditor(event, event.ID)
		} else {
			return m, m.showMessage("Nothing to edit here")
		}

	case m.binding("delete_event", "d"):
		event, ok := m.eventAtSlot(m.selectedSlot)
		if !ok {
			return m, m.showMessage("Nothing to delete here")
		}
		if m.config.ConfirmDelete {
			m.pendingDelete = event
			m.mode = ViewConfirmDelete
		} else {
			m.store.Remove(event.ID)
			return m, m.showMessage(fmt.Sprintf("Deleted %q", event.Title))
		}

	case m.binding("suggest", "s"):
		if m.planning {
			break
		}
		m.suggestion = ""
		m.drafts = nil
		m.focusEntry = true
		m.mode = ViewSuggestion
	}

	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "y", "Y":
		// The store itself removes unconditionally; absence is a no-op,
		// so a race with another removal cannot crash.
		m.store.Remove(m.pendingDelete.ID)
		cmd = m.showMessage(fmt.Sprintf("Deleted %q", m.pendingDelete.Title))
	default:
		cmd = m.showMessage("Delete cancelled")
	}

	m.pendingDelete = schedule.Event{}
	m.mode = ViewDay
	return m, cmd
}

func (m *Model) handleSuggestionKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focusEntry {
		return m.handleFocusKeys(msg)
	}

	if m.planning {
		// Allow bailing out while the planner thinks.
		if msg.String() == "esc" || msg.String() == "q" {
			m.planning = false
			m.mode = ViewDay
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		var cmd tea.Cmd
		if len(m.drafts) == 0 {
			cmd = m.showMessage("Nothing to add")
		} else {
			m.store.AddBatch(m.drafts)
			cmd = m.showMessage(fmt.Sprintf("Added %d suggested events", len(m.drafts)))
		}
		m.suggestion = ""
		m.drafts = nil
		m.mode = ViewDay
		return m, cmd

	case tea.KeyEscape:
		m.suggestion = ""
		m.drafts = nil
		m.mode = ViewDay
	}

	return m, nil
}

// handleFocusKeys edits the optional focus theme; Enter hands the
// request to the planner.
func (m *Model) handleFocusKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.focusEntry = false
		m.mode = ViewDay

	case tea.KeyEnter:
		m.focusEntry = false
		m.planning = true
		return m, m.requestPlan()

	case tea.KeyBackspace:
		if runes := []rune(m.focus); len(runes) > 0 {
			m.focus = string(runes[:len(runes)-1])
		}

	case tea.KeySpace:
		m.focus += " "

	case tea.KeyRunes:
		m.focus += string(msg.Runes)
	}

	return m, nil
}

func (m *Model) cycleZoom() {
	minutes := m.slotMinutes(m.selectedSlot)
	topMinutes := m.slotMinutes(m.topSlot)

	switch m.config.TimeIncrement {
	case 60:
		m.config.TimeIncrement = 30
	case 30:
		m.config.TimeIncrement = 15
	default:
		m.config.TimeIncrement = 60
	}

	m.selectedSlot = minutes / m.config.TimeIncrement
	m.topSlot = topMinutes / m.config.TimeIncrement
}

func (m *Model) requestPlan() tea.Cmd {
	req := assist.Request{
		Day:    m.day,
		Events: m.store.List(),
		Focus:  m.focus,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		text, err := m.planner.Plan(ctx, req)
		return planMsg{text: text, err: err}
	}
}

func (m *Model) waitForTick() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(<-m.clock.Ticks())
	}
}

func (m *Model) waitForStoreChange() tea.Cmd {
	return func() tea.Msg {
		<-m.storeChanged
		return storeChangedMsg{}
	}
}

const messageTimeout = 4 * time.Second

// showMessage puts a transient message in the status bar and returns
// the command that clears it.
func (m *Model) showMessage(msg string) tea.Cmd {
	m.message = msg
	m.messageID++
	id := m.messageID

	return tea.Tick(messageTimeout, func(time.Time) tea.Msg {
		return messageTimeoutMsg{id: id}
	})
}

// Message types
type tickMsg int
type storeChangedMsg struct{}
type messageTimeoutMsg struct{ id int }
type planMsg struct {
	text string
	err  error
}
