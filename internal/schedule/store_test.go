package schedule

import (
	"errors"
	"testing"
)

func draftEvent(title, start, end string) Event {
	return Event{
		Title:     title,
		StartTime: start,
		EndTime:   end,
		Type:      TypeMeeting,
		Priority:  PriorityMedium,
		Kind:      KindEvent,
	}
}

func TestStoreAdd(t *testing.T) {
	store := NewStore()

	notified := 0
	store.Subscribe(func() { notified++ })

	before := store.Len()
	created, err := store.Add(draftEvent("Lunch", "12:30", "13:30"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if created.ID == "" {
		t.Error("Add did not assign an id")
	}
	if store.Len() != before+1 {
		t.Errorf("store length = %d, want %d", store.Len(), before+1)
	}
	if notified != 1 {
		t.Errorf("notifications = %d, want 1", notified)
	}

	// Ids must be unique across adds.
	second, err := store.Add(draftEvent("Standup", "9:00", "9:15"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if second.ID == created.ID {
		t.Errorf("duplicate id %q assigned", second.ID)
	}
}

func TestStoreAddValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft Event
	}{
		{"missing title", draftEvent("", "9:00", "10:00")},
		{"blank title", draftEvent("   ", "9:00", "10:00")},
		{"missing start", draftEvent("Review", "", "10:00")},
		{"missing end", draftEvent("Review", "9:00", "")},
		{"missing everything", Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			notified := false
			store.Subscribe(func() { notified = true })

			_, err := store.Add(tt.draft)

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if store.Len() != 0 {
				t.Error("failed Add mutated the store")
			}
			if notified {
				t.Error("failed Add notified subscribers")
			}
		})
	}
}

func TestStoreEdit(t *testing.T) {
	store := NewStore()
	created, err := store.Add(draftEvent("Planning", "10:00", "11:00"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Full-record replace: only the id survives from the original.
	replacement := created
	replacement.Priority = PriorityHigh
	if err := store.Edit(created.ID, replacement); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}

	got, ok := store.Get(created.ID)
	if !ok {
		t.Fatal("edited event disappeared")
	}
	if got.Priority != PriorityHigh {
		t.Errorf("priority = %q, want %q", got.Priority, PriorityHigh)
	}
	if got.StartTime != "10:00" || got.EndTime != "11:00" {
		t.Errorf("times changed: %s-%s", got.StartTime, got.EndTime)
	}
}

func TestStoreEditNotFound(t *testing.T) {
	store := NewStore()
	err := store.Edit("no-such-id", draftEvent("Ghost", "9:00", "10:00"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestStoreRemoveIdempotent(t *testing.T) {
	store := NewStore()
	created, err := store.Add(draftEvent("Break", "15:00", "15:15"))
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	store.Remove(created.ID)
	if store.Len() != 0 {
		t.Fatalf("store length = %d after remove, want 0", store.Len())
	}

	// Second remove of the same id must be a silent no-op.
	store.Remove(created.ID)
	if store.Len() != 0 {
		t.Errorf("store length = %d after double remove", store.Len())
	}
}

func TestStoreAddBatchSingleNotification(t *testing.T) {
	store := NewStore()
	notified := 0
	store.Subscribe(func() { notified++ })

	store.AddBatch(ParseSuggestion("9:00–9:30 Standup\n9:30–11:00 Deep work"))

	if store.Len() != 2 {
		t.Fatalf("store length = %d, want 2", store.Len())
	}
	if notified != 1 {
		t.Errorf("notifications = %d, want 1 per batch", notified)
	}

	// Empty batches fire nothing.
	store.AddBatch(nil)
	if notified != 1 {
		t.Errorf("empty batch notified subscribers")
	}
}

func TestStoreListSnapshot(t *testing.T) {
	store := NewStore()
	if _, err := store.Add(draftEvent("One", "9:00", "10:00")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	snapshot := store.List()
	snapshot[0].Title = "mutated"

	got := store.List()
	if got[0].Title != "One" {
		t.Error("List snapshot aliases store memory")
	}
}

func TestStoreSubscribeCancel(t *testing.T) {
	store := NewStore()
	notified := 0
	cancel := store.Subscribe(func() { notified++ })

	if _, err := store.Add(draftEvent("A", "9:00", "10:00")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	cancel()
	cancel() // second cancel is harmless
	if _, err := store.Add(draftEvent("B", "10:00", "11:00")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if notified != 1 {
		t.Errorf("notifications after cancel = %d, want 1", notified)
	}
}
