// ABOUTME: Habit model with daily completion set and streak counter.
// ABOUTME: Streak is a stored counter adjusted on toggle, not derived.
package models

import (
	"time"

	"github.com/google/uuid"
)

// HabitFrequency is how often a habit is meant to be performed.
type HabitFrequency string

const (
	FrequencyDaily   HabitFrequency = "daily"
	FrequencyWeekly  HabitFrequency = "weekly"
	FrequencyMonthly HabitFrequency = "monthly"
)

// Priority levels shared by habits and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Habit is a recurring activity tracked by daily completion dates.
//
// Streak is intentionally a plain counter: toggling a completion date
// increments or decrements it (floored at zero) and it is never recomputed
// from CompletedAt, so it can drift from the true consecutive-day count.
type Habit struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Frequency   HabitFrequency `json:"frequency"`
	Priority    Priority       `json:"priority"`
	Streak      int            `json:"streak"`
	CompletedAt []string       `json:"completed_at"`
	Icon        string         `json:"icon,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NewHabit creates a habit with a generated UUID and zeroed streak.
func NewHabit(name, category string) *Habit {
	return &Habit{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Frequency:   FrequencyDaily,
		Priority:    PriorityMedium,
		Streak:      0,
		CompletedAt: []string{},
		CreatedAt:   time.Now(),
	}
}

// WithFrequency sets the habit frequency.
func (h *Habit) WithFrequency(f HabitFrequency) *Habit {
	h.Frequency = f
	return h
}

// WithPriority sets the habit priority.
func (h *Habit) WithPriority(p Priority) *Habit {
	h.Priority = p
	return h
}

// WithIcon sets the habit icon.
func (h *Habit) WithIcon(icon string) *Habit {
	h.Icon = icon
	return h
}

// CompletedOn reports whether the habit was completed on the given date key.
func (h *Habit) CompletedOn(date string) bool {
	for _, d := range h.CompletedAt {
		if d == date {
			return true
		}
	}
	return false
}

// NormalizeHabits repairs a decoded habit snapshot: duplicate completion
// dates are removed and negative streaks floored at zero.
func NormalizeHabits(habits []Habit) []Habit {
	if habits == nil {
		return []Habit{}
	}
	for i := range habits {
		seen := make(map[string]bool, len(habits[i].CompletedAt))
		deduped := habits[i].CompletedAt[:0]
		for _, d := range habits[i].CompletedAt {
			if d == "" || seen[d] {
				continue
			}
			seen[d] = true
			deduped = append(deduped, d)
		}
		if deduped == nil {
			deduped = []string{}
		}
		habits[i].CompletedAt = deduped
		if habits[i].Streak < 0 {
			habits[i].Streak = 0
		}
	}
	return habits
}
