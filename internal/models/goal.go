// ABOUTME: GoalRoadmap model with due-date ordered milestones.
// ABOUTME: The roadmap is a singleton slice with per-month focus notes.
package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MilestoneStatus tracks milestone progress.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
)

// Milestone is one step on the yearly roadmap.
type Milestone struct {
	ID      uuid.UUID       `json:"id"`
	Title   string          `json:"title"`
	DueDate string          `json:"due_date"`
	Status  MilestoneStatus `json:"status"`
}

// NewMilestone creates a pending milestone.
func NewMilestone(title, dueDate string) Milestone {
	return Milestone{
		ID:      uuid.New(),
		Title:   title,
		DueDate: dueDate,
		Status:  MilestonePending,
	}
}

// GoalRoadmap is the singleton yearly goal plan.
type GoalRoadmap struct {
	MainGoal     string            `json:"main_goal"`
	Year         int               `json:"year"`
	Milestones   []Milestone       `json:"milestones"`
	MonthlyFocus map[string]string `json:"monthly_focus"`
}

// DefaultRoadmap returns an empty roadmap for the current year.
func DefaultRoadmap() GoalRoadmap {
	return GoalRoadmap{
		Year:         time.Now().Year(),
		Milestones:   []Milestone{},
		MonthlyFocus: map[string]string{},
	}
}

// SortMilestones orders milestones ascending by due date.
func SortMilestones(ms []Milestone) {
	sort.SliceStable(ms, func(i, j int) bool {
		return ms[i].DueDate < ms[j].DueDate
	})
}

// NormalizeRoadmap repairs a decoded roadmap snapshot: nil maps and lists
// are replaced and milestones re-sorted by due date.
func NormalizeRoadmap(r GoalRoadmap) GoalRoadmap {
	if r.Milestones == nil {
		r.Milestones = []Milestone{}
	}
	if r.MonthlyFocus == nil {
		r.MonthlyFocus = map[string]string{}
	}
	if r.Year == 0 {
		r.Year = time.Now().Year()
	}
	for i := range r.Milestones {
		if r.Milestones[i].Status != MilestoneCompleted {
			r.Milestones[i].Status = MilestonePending
		}
	}
	SortMilestones(r.Milestones)
	return r
}
