// ABOUTME: Tests for habit normalization and completion lookups.
// ABOUTME: Normalization repairs snapshots decoded from storage.
package models

import "testing"

func TestNormalizeHabits(t *testing.T) {
	habits := NormalizeHabits([]Habit{
		{Name: "Run", Streak: -2, CompletedAt: []string{"2026-08-01", "", "2026-08-01", "2026-08-02"}},
		{Name: "Read", Streak: 4, CompletedAt: nil},
	})

	run := habits[0]
	if run.Streak != 0 {
		t.Errorf("negative streak should floor at 0, got %d", run.Streak)
	}
	if len(run.CompletedAt) != 2 {
		t.Errorf("empty and duplicate dates should drop, got %v", run.CompletedAt)
	}

	read := habits[1]
	if read.Streak != 4 {
		t.Errorf("valid streak should pass through, got %d", read.Streak)
	}
	if read.CompletedAt == nil {
		t.Error("nil completion set should normalize to empty")
	}
}

func TestNormalizeHabitsNil(t *testing.T) {
	if got := NormalizeHabits(nil); got == nil || len(got) != 0 {
		t.Fatalf("nil snapshot should normalize to empty list, got %#v", got)
	}
}

func TestCompletedOn(t *testing.T) {
	h := NewHabit("Meditate", "mind")
	h.CompletedAt = []string{"2026-08-27"}

	if !h.CompletedOn("2026-08-27") {
		t.Error("expected completion on logged date")
	}
	if h.CompletedOn("2026-08-28") {
		t.Error("unexpected completion on unlogged date")
	}
}

func TestNewHabitDefaults(t *testing.T) {
	h := NewHabit("Run", "fitness").WithFrequency(FrequencyWeekly).WithPriority(PriorityHigh)
	if h.Frequency != FrequencyWeekly || h.Priority != PriorityHigh {
		t.Errorf("builder overrides lost: %+v", h)
	}
	if h.Streak != 0 || len(h.CompletedAt) != 0 {
		t.Errorf("new habit should start clean: %+v", h)
	}
}
