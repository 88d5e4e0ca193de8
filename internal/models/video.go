// ABOUTME: VideoPlan model for the content planner slice.
// ABOUTME: Plans carry a production checklist and target metrics.
package models

import "github.com/google/uuid"

// VideoStatus is the publishing state of a planned video.
type VideoStatus string

const (
	VideoDraft     VideoStatus = "draft"
	VideoScheduled VideoStatus = "scheduled"
	VideoPublished VideoStatus = "published"
)

// IsValidVideoStatus checks if a string is a valid video status.
func IsValidVideoStatus(s string) bool {
	switch VideoStatus(s) {
	case VideoDraft, VideoScheduled, VideoPublished:
		return true
	}
	return false
}

// ChecklistItem is one production step on a video plan.
type ChecklistItem struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
}

// VideoGoals are the target metrics for a planned video.
type VideoGoals struct {
	Views     int     `json:"views"`
	CTR       float64 `json:"ctr"`
	WatchTime float64 `json:"watch_time"`
}

// VideoPlan is one planned piece of content.
type VideoPlan struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Category       string          `json:"category"`
	TargetAudience string          `json:"target_audience"`
	PublishDate    string          `json:"publish_date"`
	Checklist      []ChecklistItem `json:"checklist"`
	Notes          string          `json:"notes,omitempty"`
	Goals          VideoGoals      `json:"goals"`
	Status         VideoStatus     `json:"status"`
}

// NewVideoPlan creates a draft plan with an empty checklist.
func NewVideoPlan(title string) *VideoPlan {
	return &VideoPlan{
		ID:        uuid.New(),
		Title:     title,
		Checklist: []ChecklistItem{},
		Status:    VideoDraft,
	}
}

// NewChecklistItem creates an unchecked checklist entry.
func NewChecklistItem(text string) ChecklistItem {
	return ChecklistItem{ID: uuid.New(), Text: text}
}

// NormalizeVideoPlans repairs a decoded video-plan snapshot.
func NormalizeVideoPlans(plans []VideoPlan) []VideoPlan {
	if plans == nil {
		return []VideoPlan{}
	}
	for i := range plans {
		if plans[i].Checklist == nil {
			plans[i].Checklist = []ChecklistItem{}
		}
		if !IsValidVideoStatus(string(plans[i].Status)) {
			plans[i].Status = VideoDraft
		}
	}
	return plans
}
