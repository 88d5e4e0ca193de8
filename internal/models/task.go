// ABOUTME: Task model for the to-do slice.
// ABOUTME: Tasks are time-ordered; new tasks are prepended to the list.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single to-do entry.
type Task struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Time      string    `json:"time"` // date key the task is scheduled for
	Priority  Priority  `json:"priority"`
	Completed bool      `json:"completed"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTask creates a task scheduled for the given date key.
func NewTask(name, date string) *Task {
	return &Task{
		ID:        uuid.New(),
		Name:      name,
		Time:      date,
		Priority:  PriorityMedium,
		CreatedAt: time.Now(),
	}
}

// WithPriority sets the task priority.
func (t *Task) WithPriority(p Priority) *Task {
	t.Priority = p
	return t
}

// WithCategory sets the task category.
func (t *Task) WithCategory(category string) *Task {
	t.Category = category
	return t
}

// NormalizeTasks repairs a decoded task snapshot.
func NormalizeTasks(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	return tasks
}
