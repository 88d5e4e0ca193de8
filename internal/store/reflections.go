// ABOUTME: Reflection journal operations; append-only in practice.
// ABOUTME: New reflections are prepended so the newest reads first.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// Reflections returns a copy of the reflection list, newest first.
func (s *Store) Reflections() []models.Reflection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reflection(nil), s.reflections...)
}

// AddReflection prepends a reflection to the journal.
func (s *Store) AddReflection(r *models.Reflection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections = append([]models.Reflection{*r}, s.reflections...)
	s.persist(sliceReflections, s.reflections)
}

// DeleteReflection removes the reflection with the given id.
func (s *Store) DeleteReflection(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reflections {
		if s.reflections[i].ID == id {
			s.reflections = append(s.reflections[:i], s.reflections[i+1:]...)
			s.persist(sliceReflections, s.reflections)
			return
		}
	}
}
