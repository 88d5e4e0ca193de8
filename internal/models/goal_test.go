// ABOUTME: Tests for roadmap normalization and milestone ordering.
package models

import (
	"testing"
	"time"
)

func TestNormalizeRoadmap(t *testing.T) {
	r := NormalizeRoadmap(GoalRoadmap{
		MainGoal: "100k subscribers",
		Milestones: []Milestone{
			{Title: "late", DueDate: "2026-09-01", Status: "in_progress"}, // unknown status
			{Title: "early", DueDate: "2026-02-01", Status: MilestoneCompleted},
		},
	})

	if r.Year != time.Now().Year() {
		t.Errorf("zero year should default to current, got %d", r.Year)
	}
	if r.MonthlyFocus == nil {
		t.Error("nil focus map should normalize to empty")
	}
	if r.Milestones[0].Title != "early" {
		t.Errorf("milestones should sort by due date, got %v", r.Milestones)
	}
	if r.Milestones[1].Status != MilestonePending {
		t.Errorf("unknown status should collapse to pending, got %q", r.Milestones[1].Status)
	}
	if r.Milestones[0].Status != MilestoneCompleted {
		t.Errorf("completed status should survive, got %q", r.Milestones[0].Status)
	}
}

func TestSortMilestonesIsStable(t *testing.T) {
	ms := []Milestone{
		{Title: "b", DueDate: "2026-05-01"},
		{Title: "a", DueDate: "2026-05-01"},
		{Title: "c", DueDate: "2026-01-01"},
	}
	SortMilestones(ms)

	if ms[0].Title != "c" || ms[1].Title != "b" || ms[2].Title != "a" {
		t.Fatalf("equal due dates should keep insertion order, got %v", ms)
	}
}
