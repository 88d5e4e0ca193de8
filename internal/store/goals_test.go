// ABOUTME: Tests for roadmap operations and milestone due-date ordering.
// ABOUTME: Milestones are kept sorted ascending through add and update.
package store

import (
	"testing"

	"github.com/harperreed/lifedash/internal/models"
)

func milestoneTitles(ms []models.Milestone) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Title
	}
	return out
}

func TestAddMilestoneKeepsDueDateOrder(t *testing.T) {
	s := newTestStore(t, newMemStore())

	s.AddMilestone(models.NewMilestone("march", "2026-03-31"))
	s.AddMilestone(models.NewMilestone("january", "2026-01-31"))
	s.AddMilestone(models.NewMilestone("june", "2026-06-30"))

	got := milestoneTitles(s.Roadmap().Milestones)
	want := []string{"january", "march", "june"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("milestones out of due-date order: %v", got)
		}
	}
}

func TestUpdateMilestoneResorts(t *testing.T) {
	s := newTestStore(t, newMemStore())

	early := models.NewMilestone("early", "2026-01-31")
	late := models.NewMilestone("late", "2026-06-30")
	s.AddMilestone(early)
	s.AddMilestone(late)

	// Pushing the early milestone past the late one must re-sort.
	s.UpdateMilestone(early.ID, func(m *models.Milestone) {
		m.DueDate = "2026-12-31"
	})

	got := milestoneTitles(s.Roadmap().Milestones)
	if got[0] != "late" || got[1] != "early" {
		t.Fatalf("due-date change should re-sort, got %v", got)
	}
}

func TestMilestoneStatusToggle(t *testing.T) {
	s := newTestStore(t, newMemStore())
	m := models.NewMilestone("ship", "2026-05-01")
	s.AddMilestone(m)

	s.UpdateMilestone(m.ID, func(cur *models.Milestone) {
		cur.Status = models.MilestoneCompleted
	})
	if got := s.Roadmap().Milestones[0].Status; got != models.MilestoneCompleted {
		t.Fatalf("status = %q, want completed", got)
	}
}

func TestDeleteMilestone(t *testing.T) {
	s := newTestStore(t, newMemStore())
	m := models.NewMilestone("gone", "2026-05-01")
	s.AddMilestone(m)
	s.AddMilestone(models.NewMilestone("stays", "2026-06-01"))

	s.DeleteMilestone(m.ID)
	got := s.Roadmap().Milestones
	if len(got) != 1 || got[0].Title != "stays" {
		t.Fatalf("delete milestone failed: %+v", got)
	}
}

func TestSetRoadmapNormalizes(t *testing.T) {
	s := newTestStore(t, newMemStore())

	s.SetRoadmap(models.GoalRoadmap{MainGoal: "100k subscribers"})
	got := s.Roadmap()
	if got.Milestones == nil || got.MonthlyFocus == nil {
		t.Error("set roadmap should normalize nil collections")
	}
	if got.Year == 0 {
		t.Error("set roadmap should default the year")
	}
}

func TestSetMonthlyFocus(t *testing.T) {
	s := newTestStore(t, newMemStore())

	s.SetMonthlyFocus("march", "consistency")
	s.SetMonthlyFocus("march", "output")

	if got := s.Roadmap().MonthlyFocus["march"]; got != "output" {
		t.Fatalf("focus = %q, want last write", got)
	}
}
