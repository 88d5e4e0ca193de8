// ABOUTME: HealthLog and PeriodData models for the health slices.
// ABOUTME: Health logs are upserted per calendar date; periods key on start date.
package models

import (
	"sort"

	"github.com/google/uuid"
)

// HealthLog is one day's health record. At most one log exists per date.
type HealthLog struct {
	ID            uuid.UUID `json:"id"`
	Date          string    `json:"date"`
	SleepHours    float64   `json:"sleep_hours"`
	HydrationCups int       `json:"hydration_cups"`
	Mood          string    `json:"mood"`
	FoodQuality   int       `json:"food_quality"` // 1-5 scale
	JunkFoodCount int       `json:"junk_food_count"`
	Weight        *float64  `json:"weight,omitempty"`
	Calories      *float64  `json:"calories,omitempty"`
	Protein       *float64  `json:"protein,omitempty"`
	FoodLog       string    `json:"food_log,omitempty"`
}

// NewHealthLog creates an empty log for the given date key.
func NewHealthLog(date string) *HealthLog {
	return &HealthLog{
		ID:   uuid.New(),
		Date: date,
	}
}

// HealthPatch is a partial update merged into a day's health log.
// Nil fields are left untouched.
type HealthPatch struct {
	SleepHours    *float64
	HydrationCups *int
	Mood          *string
	FoodQuality   *int
	JunkFoodCount *int
	Weight        *float64
	Calories      *float64
	Protein       *float64
	FoodLog       *string
}

// Apply merges the patch into the log.
func (p HealthPatch) Apply(l *HealthLog) {
	if p.SleepHours != nil {
		l.SleepHours = *p.SleepHours
	}
	if p.HydrationCups != nil {
		l.HydrationCups = *p.HydrationCups
	}
	if p.Mood != nil {
		l.Mood = *p.Mood
	}
	if p.FoodQuality != nil {
		l.FoodQuality = *p.FoodQuality
	}
	if p.JunkFoodCount != nil {
		l.JunkFoodCount = *p.JunkFoodCount
	}
	if p.Weight != nil {
		l.Weight = p.Weight
	}
	if p.Calories != nil {
		l.Calories = p.Calories
	}
	if p.Protein != nil {
		l.Protein = p.Protein
	}
	if p.FoodLog != nil {
		l.FoodLog = *p.FoodLog
	}
}

// NormalizeHealthLogs repairs a decoded health snapshot, keeping the first
// log seen for any duplicated date and clamping food quality to the 1-5 scale.
func NormalizeHealthLogs(logs []HealthLog) []HealthLog {
	if logs == nil {
		return []HealthLog{}
	}
	seen := make(map[string]bool, len(logs))
	out := logs[:0]
	for _, l := range logs {
		if l.Date == "" || seen[l.Date] {
			continue
		}
		seen[l.Date] = true
		if l.FoodQuality < 0 {
			l.FoodQuality = 0
		}
		if l.FoodQuality > 5 {
			l.FoodQuality = 5
		}
		out = append(out, l)
	}
	if out == nil {
		out = []HealthLog{}
	}
	return out
}

// PeriodIntensity is the flow intensity recorded for a cycle.
type PeriodIntensity string

const (
	IntensityLight  PeriodIntensity = "light"
	IntensityMedium PeriodIntensity = "medium"
	IntensityHeavy  PeriodIntensity = "heavy"
)

// IsValidIntensity checks if a string is a valid period intensity.
func IsValidIntensity(s string) bool {
	switch PeriodIntensity(s) {
	case IntensityLight, IntensityMedium, IntensityHeavy:
		return true
	}
	return false
}

// PeriodData records one cycle, identified by its start date.
type PeriodData struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date,omitempty"`
	Intensity PeriodIntensity `json:"intensity"`
}

// SortPeriods orders periods descending by start date (newest first).
func SortPeriods(periods []PeriodData) {
	sort.SliceStable(periods, func(i, j int) bool {
		return periods[i].StartDate > periods[j].StartDate
	})
}

// NormalizePeriods repairs a decoded period snapshot: duplicate start dates
// collapse to the first entry and the list is re-sorted newest first.
func NormalizePeriods(periods []PeriodData) []PeriodData {
	if periods == nil {
		return []PeriodData{}
	}
	seen := make(map[string]bool, len(periods))
	out := periods[:0]
	for _, p := range periods {
		if p.StartDate == "" || seen[p.StartDate] {
			continue
		}
		seen[p.StartDate] = true
		if !IsValidIntensity(string(p.Intensity)) {
			p.Intensity = IntensityMedium
		}
		out = append(out, p)
	}
	if out == nil {
		out = []PeriodData{}
	}
	SortPeriods(out)
	return out
}
