// ABOUTME: Video plan operations for the content planner slice.
// ABOUTME: Plans append like habits; checklist items toggle in place.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// VideoPlans returns a copy of the video plan list.
func (s *Store) VideoPlans() []models.VideoPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.VideoPlan(nil), s.videoPlans...)
}

// AddVideoPlan appends a plan to the list.
func (s *Store) AddVideoPlan(p *models.VideoPlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videoPlans = append(s.videoPlans, *p)
	s.persist(sliceVideoPlans, s.videoPlans)
}

// UpdateVideoPlan merges a patch into the plan with the given id. Unknown
// ids are a no-op.
func (s *Store) UpdateVideoPlan(id uuid.UUID, patch func(*models.VideoPlan)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videoPlans {
		if s.videoPlans[i].ID == id {
			patch(&s.videoPlans[i])
			s.videoPlans[i].ID = id
			s.persist(sliceVideoPlans, s.videoPlans)
			return
		}
	}
}

// DeleteVideoPlan removes the plan with the given id.
func (s *Store) DeleteVideoPlan(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videoPlans {
		if s.videoPlans[i].ID == id {
			s.videoPlans = append(s.videoPlans[:i], s.videoPlans[i+1:]...)
			s.persist(sliceVideoPlans, s.videoPlans)
			return
		}
	}
}

// ToggleChecklistItem flips one checklist entry on a plan.
func (s *Store) ToggleChecklistItem(planID, itemID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.videoPlans {
		if s.videoPlans[i].ID != planID {
			continue
		}
		for j := range s.videoPlans[i].Checklist {
			if s.videoPlans[i].Checklist[j].ID == itemID {
				s.videoPlans[i].Checklist[j].Completed = !s.videoPlans[i].Checklist[j].Completed
				s.persist(sliceVideoPlans, s.videoPlans)
				return
			}
		}
		return
	}
}
