// ABOUTME: Task slice operations: add, update, delete, toggle completion.
// ABOUTME: New tasks are prepended; the list is time-ordered, newest first.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// Tasks returns a copy of the task list, newest first.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

// AddTask prepends a task to the list.
func (s *Store) AddTask(t *models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append([]models.Task{*t}, s.tasks...)
	s.persist(sliceTasks, s.tasks)
}

// UpdateTask merges a patch into the task with the given id. Unknown ids
// are a no-op.
func (s *Store) UpdateTask(id uuid.UUID, patch func(*models.Task)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			patch(&s.tasks[i])
			s.tasks[i].ID = id
			s.persist(sliceTasks, s.tasks)
			return
		}
	}
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (s *Store) DeleteTask(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persist(sliceTasks, s.tasks)
			return
		}
	}
}

// ToggleTask flips a task's completed flag.
func (s *Store) ToggleTask(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			s.persist(sliceTasks, s.tasks)
			return
		}
	}
}

// SetTasks replaces the task list wholesale. Used for UI-driven bulk
// reordering; bypasses the per-record operations but persists the same way.
func (s *Store) SetTasks(tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tasks == nil {
		tasks = []models.Task{}
	}
	s.tasks = tasks
	s.persist(sliceTasks, s.tasks)
}

// PendingTasks returns incomplete tasks, newest first.
func (s *Store) PendingTasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Task
	for _, t := range s.tasks {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}
