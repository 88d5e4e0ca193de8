// ABOUTME: Read-only dashboard helpers aggregated from several slices.
// ABOUTME: Consumed by the CLI today view and the MCP resources.
package store

import (
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

// DaySummary aggregates today's state across slices.
type DaySummary struct {
	Date            string            `json:"date"`
	HabitsDone      int               `json:"habits_done"`
	HabitsTotal     int               `json:"habits_total"`
	PendingTasks    int               `json:"pending_tasks"`
	StudyHours      float64           `json:"study_hours"`
	HealthLog       *models.HealthLog `json:"health_log,omitempty"`
	MonthBalance    float64           `json:"month_balance"`
	MonthExpenses   float64           `json:"month_expenses"`
	MonthlyBudget   float64           `json:"monthly_budget"`
	SavingsProgress float64           `json:"savings_progress"`
}

// TodaySummary builds the dashboard summary for the current day.
func (s *Store) TodaySummary() DaySummary {
	today := models.Today()
	now := time.Now()

	s.mu.RLock()
	defer s.mu.RUnlock()

	sum := DaySummary{
		Date:          today,
		HabitsTotal:   len(s.habits),
		StudyHours:    s.studyLog[today],
		MonthlyBudget: s.settings.MonthlyBudget,
	}
	for _, h := range s.habits {
		if h.CompletedOn(today) {
			sum.HabitsDone++
		}
	}
	for _, t := range s.tasks {
		if !t.Completed {
			sum.PendingTasks++
		}
	}
	for i := range s.healthLogs {
		if s.healthLogs[i].Date == today {
			l := s.healthLogs[i]
			sum.HealthLog = &l
			break
		}
	}
	for _, tx := range s.transactions {
		if tx.Date.Year() != now.Year() || tx.Date.Month() != now.Month() {
			continue
		}
		sum.MonthBalance += tx.Signed()
		if tx.Type == models.TxExpense {
			sum.MonthExpenses += tx.Amount
		}
	}
	if s.savings.GoalAmount > 0 {
		sum.SavingsProgress = s.savings.CurrentAmount / s.savings.GoalAmount
	}
	return sum
}
