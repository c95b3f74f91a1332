package schedule

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Edit when the target id is no longer in the
// store, e.g. a delete raced with an open edit form.
var ErrNotFound = errors.New("event not found")

// ValidationError reports required fields missing from an event draft.
// The store is left untouched when one is returned.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Store holds the day's events and reminders in insertion order and fans
// out change notifications to subscribers. All operations are atomic with
// respect to List snapshots; there is a single logical writer at a time.
type Store struct {
	mu     sync.Mutex
	events []Event

	nextSub     int
	subscribers map[int]func()
}

func NewStore() *Store {
	return &Store{
		subscribers: make(map[int]func()),
	}
}

// Subscribe registers fn to run after every completed mutation. The
// returned cancel function removes the subscription; calling it more than
// once is harmless.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Add validates the draft, assigns a fresh id, and appends it. On a
// validation failure nothing is stored and no notification fires.
func (s *Store) Add(draft Event) (Event, error) {
	if err := validateDraft(draft); err != nil {
		return Event{}, err
	}

	draft.ID = uuid.NewString()

	s.mu.Lock()
	s.events = append(s.events, draft)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs)
	return draft, nil
}

// AddBatch appends already-validated events (e.g. an accepted schedule
// suggestion) in one notification cycle.
func (s *Store) AddBatch(events []Event) {
	if len(events) == 0 {
		return
	}

	s.mu.Lock()
	s.events = append(s.events, events...)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs)
}

// Edit replaces the full record for id. Partial merges are not supported:
// the caller supplies every editable field, mirroring the edit form.
func (s *Store) Edit(id string, replacement Event) error {
	if err := validateDraft(replacement); err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	replacement.ID = id
	s.events[idx] = replacement
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs)
	return nil
}

// Remove deletes the event with the given id. Removing an absent id is a
// silent no-op; confirmation is the caller's concern.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)
	subs := s.snapshotSubscribers()
	s.mu.Unlock()

	notify(subs)
}

// Get returns the event with the given id, if present.
func (s *Store) Get(id string) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return Event{}, false
	}
	return s.events[idx], true
}

// List returns a snapshot safe to iterate while the store mutates.
func (s *Store) List() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len reports the number of stored items.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func (s *Store) indexOf(id string) int {
	for i, e := range s.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotSubscribers() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

// notify runs outside the store lock so subscribers may call back into
// the store.
func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

func validateDraft(draft Event) error {
	var missing []string
	if strings.TrimSpace(draft.Title) == "" {
		missing = append(missing, "title")
	}
	if draft.StartTime == "" {
		missing = append(missing, "startTime")
	}
	if draft.EndTime == "" {
		missing = append(missing, "endTime")
	}

	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
