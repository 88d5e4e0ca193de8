// ABOUTME: Tests for habit operations and the literal streak counter.
// ABOUTME: The streak adjusts on toggle only and floors at zero.
package store

import (
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

func TestToggleHabitDateAdjustsStreak(t *testing.T) {
	s := newTestStore(t, newMemStore())

	h := models.NewHabit("Meditate", "mind")
	s.AddHabit(h)

	s.ToggleHabitDate(h.ID, "2026-08-28")
	got := s.Habits()[0]
	if got.Streak != 1 || !got.CompletedOn("2026-08-28") {
		t.Fatalf("complete should add the date and bump streak, got %+v", got)
	}

	// Completing a date far in the past still bumps the counter; it is
	// never recomputed from the completion set.
	s.ToggleHabitDate(h.ID, "2026-01-01")
	if got := s.Habits()[0]; got.Streak != 2 {
		t.Fatalf("past-date completion should still bump streak, got %d", got.Streak)
	}

	s.ToggleHabitDate(h.ID, "2026-08-28")
	got = s.Habits()[0]
	if got.Streak != 1 || got.CompletedOn("2026-08-28") {
		t.Fatalf("un-complete should remove the date and drop streak, got %+v", got)
	}
}

func TestToggleHabitDateStreakFloorsAtZero(t *testing.T) {
	s := newTestStore(t, newMemStore())

	h := models.NewHabit("Journal", "mind")
	h.CompletedAt = []string{"2026-08-27"} // drifted state: date present, streak 0
	s.AddHabit(h)

	s.ToggleHabitDate(h.ID, "2026-08-27")
	if got := s.Habits()[0]; got.Streak != 0 {
		t.Fatalf("streak must never go negative, got %d", got.Streak)
	}
}

func TestToggleHabitDateUnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t, newMemStore())
	s.AddHabit(models.NewHabit("Run", "fitness"))

	s.ToggleHabitDate(uuid.New(), "2026-08-28")
	if got := s.Habits()[0]; got.Streak != 0 || len(got.CompletedAt) != 0 {
		t.Fatalf("unknown id must not touch any habit, got %+v", got)
	}
}

func TestUpdateHabitPreservesID(t *testing.T) {
	s := newTestStore(t, newMemStore())
	h := models.NewHabit("Run", "fitness")
	s.AddHabit(h)

	s.UpdateHabit(h.ID, func(cur *models.Habit) {
		cur.Name = "Sprint"
		cur.ID = uuid.New() // must be ignored
	})

	got := s.Habits()[0]
	if got.Name != "Sprint" {
		t.Errorf("patch should apply, got %q", got.Name)
	}
	if got.ID != h.ID {
		t.Errorf("id must survive a patch, got %s", got.ID)
	}
}

func TestDeleteHabit(t *testing.T) {
	s := newTestStore(t, newMemStore())
	keep := models.NewHabit("Keep", "x")
	drop := models.NewHabit("Drop", "x")
	s.AddHabit(keep)
	s.AddHabit(drop)

	s.DeleteHabit(drop.ID)
	got := s.Habits()
	if len(got) != 1 || got[0].ID != keep.ID {
		t.Fatalf("expected only the kept habit, got %+v", got)
	}
}

// The round trip a habit takes through a full session: create, complete
// today, shut down, start again.
func TestHabitSurvivesRestart(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	h := models.NewHabit("Read", "growth").WithPriority(models.PriorityHigh)
	s.AddHabit(h)
	s.ToggleHabitDate(h.ID, models.Today())
	s.Close()

	s2 := newTestStore(t, db)
	got := s2.Habits()
	if len(got) != 1 {
		t.Fatalf("expected 1 habit after restart, got %d", len(got))
	}
	if got[0].ID != h.ID || got[0].Streak != 1 || !got[0].CompletedOn(models.Today()) {
		t.Fatalf("restart should reproduce the completed habit, got %+v", got[0])
	}
}

func TestSetHabitsReplacesWholesale(t *testing.T) {
	s := newTestStore(t, newMemStore())
	a := models.NewHabit("A", "x")
	b := models.NewHabit("B", "x")
	s.AddHabit(a)
	s.AddHabit(b)

	s.SetHabits([]models.Habit{*b, *a})
	got := s.Habits()
	if got[0].ID != b.ID || got[1].ID != a.ID {
		t.Fatalf("bulk set should control order, got %+v", got)
	}

	s.SetHabits(nil)
	if got := s.Habits(); got == nil || len(got) != 0 {
		t.Fatalf("nil bulk set should normalize to empty, got %#v", got)
	}
}
