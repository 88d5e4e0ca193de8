// ABOUTME: Goal roadmap operations; milestones stay sorted by due date.
// ABOUTME: The roadmap is a singleton with per-month focus notes.
package store

import (
	"github.com/google/uuid"

	"github.com/harperreed/lifedash/internal/models"
)

// Roadmap returns the roadmap singleton.
func (s *Store) Roadmap() models.GoalRoadmap {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roadmap
}

// SetRoadmap replaces the roadmap singleton, re-sorting milestones.
func (s *Store) SetRoadmap(r models.GoalRoadmap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roadmap = models.NormalizeRoadmap(r)
	s.persist(sliceRoadmap, s.roadmap)
}

// AddMilestone inserts a milestone keeping the list sorted by due date, so
// an earlier due date lands earlier in iteration order.
func (s *Store) AddMilestone(m models.Milestone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roadmap.Milestones = append(s.roadmap.Milestones, m)
	models.SortMilestones(s.roadmap.Milestones)
	s.persist(sliceRoadmap, s.roadmap)
}

// UpdateMilestone merges a patch into the milestone with the given id and
// restores due-date order afterwards. Unknown ids are a no-op.
func (s *Store) UpdateMilestone(id uuid.UUID, patch func(*models.Milestone)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roadmap.Milestones {
		if s.roadmap.Milestones[i].ID == id {
			patch(&s.roadmap.Milestones[i])
			s.roadmap.Milestones[i].ID = id
			models.SortMilestones(s.roadmap.Milestones)
			s.persist(sliceRoadmap, s.roadmap)
			return
		}
	}
}

// DeleteMilestone removes the milestone with the given id.
func (s *Store) DeleteMilestone(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.roadmap.Milestones {
		if s.roadmap.Milestones[i].ID == id {
			s.roadmap.Milestones = append(s.roadmap.Milestones[:i], s.roadmap.Milestones[i+1:]...)
			s.persist(sliceRoadmap, s.roadmap)
			return
		}
	}
}

// SetMonthlyFocus records the focus note for a month name.
func (s *Store) SetMonthlyFocus(month, focus string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.roadmap.MonthlyFocus == nil {
		s.roadmap.MonthlyFocus = map[string]string{}
	}
	s.roadmap.MonthlyFocus[month] = focus
	s.persist(sliceRoadmap, s.roadmap)
}
