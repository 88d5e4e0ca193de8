// ABOUTME: Habit slice operations: add, update, delete, toggle completion.
// ABOUTME: Toggling adjusts the stored streak counter; it is never derived.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// Habits returns a copy of the habit list in display order.
func (s *Store) Habits() []models.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Habit(nil), s.habits...)
}

// AddHabit appends a habit to the list.
func (s *Store) AddHabit(h *models.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.habits = append(s.habits, *h)
	s.persist(sliceHabits, s.habits)
}

// UpdateHabit merges a patch into the habit with the given id. Unknown ids
// are a no-op. The patch function must not change the id.
func (s *Store) UpdateHabit(id uuid.UUID, patch func(*models.Habit)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			patch(&s.habits[i])
			s.habits[i].ID = id
			s.persist(sliceHabits, s.habits)
			return
		}
	}
}

// DeleteHabit removes the habit with the given id. Unknown ids are a no-op.
func (s *Store) DeleteHabit(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID == id {
			s.habits = append(s.habits[:i], s.habits[i+1:]...)
			s.persist(sliceHabits, s.habits)
			return
		}
	}
}

// ToggleHabitDate toggles a habit's completion for a date key. Completing
// increments the streak counter; un-completing decrements it, floored at
// zero. The counter is deliberately not recomputed from the completion set,
// so completing a date far in the past still bumps the current streak.
func (s *Store) ToggleHabitDate(id uuid.UUID, date string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.habits {
		if s.habits[i].ID != id {
			continue
		}
		h := &s.habits[i]
		removed := false
		for j, d := range h.CompletedAt {
			if d == date {
				h.CompletedAt = append(h.CompletedAt[:j], h.CompletedAt[j+1:]...)
				removed = true
				break
			}
		}
		if removed {
			if h.Streak > 0 {
				h.Streak--
			}
		} else {
			h.CompletedAt = append(h.CompletedAt, date)
			h.Streak++
		}
		s.persist(sliceHabits, s.habits)
		return
	}
}

// SetHabits replaces the habit list wholesale. Used for UI-driven bulk
// reordering; bypasses the per-record operations but persists the same way.
func (s *Store) SetHabits(habits []models.Habit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if habits == nil {
		habits = []models.Habit{}
	}
	s.habits = habits
	s.persist(sliceHabits, s.habits)
}
