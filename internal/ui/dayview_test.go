package ui

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderSlotLineWideRunes(t *testing.T) {
	m, store := newTestModel(t)
	addTestEvent(t, store, "会議の長いタイトルでレイアウトを確認する", "9:00", "10:00")

	lanes := m.slotLanes()
	line := m.renderSlotLine(18, lanes, 1, 12) // 9:00 row

	if !utf8.ValidString(line) {
		t.Error("truncation split a rune mid-sequence")
	}
	if !strings.Contains(line, "...") {
		t.Error("wide title was not truncated")
	}
}

func TestRenderSlotLineShortTitleUntouched(t *testing.T) {
	m, store := newTestModel(t)
	addTestEvent(t, store, "Standup", "9:00", "9:30")

	lanes := m.slotLanes()
	line := m.renderSlotLine(18, lanes, 1, 20)

	if !strings.Contains(line, "Standup") {
		t.Errorf("title missing from %q", line)
	}
	if strings.Contains(line, "...") {
		t.Errorf("short title was truncated: %q", line)
	}
}
