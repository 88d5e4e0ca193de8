// ABOUTME: Full-snapshot export of every slice for the active identity.
// ABOUTME: Backs the export command; import is deliberately not offered.
package store

import "github.com/harperreed/lifedash/internal/models"

// Snapshot is the complete exported state of one identity.
type Snapshot struct {
	Identity     string               `json:"identity,omitempty"`
	Habits       []models.Habit       `json:"habits"`
	Tasks        []models.Task        `json:"tasks"`
	Transactions []models.Transaction `json:"transactions"`
	Savings      models.Savings       `json:"savings"`
	HealthLogs   []models.HealthLog   `json:"health_logs"`
	Periods      []models.PeriodData  `json:"periods"`
	Reflections  []models.Reflection  `json:"reflections"`
	Roadmap      models.GoalRoadmap   `json:"roadmap"`
	ChannelStats models.ChannelStats  `json:"channel_stats"`
	StudyLog     models.StudyLog      `json:"study_log"`
	VideoPlans   []models.VideoPlan   `json:"video_plans"`
	Settings     models.Settings      `json:"settings"`
}

// Export captures every slice of the active identity.
func (s *Store) Export() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Identity:     s.identityLocked(),
		Habits:       append([]models.Habit(nil), s.habits...),
		Tasks:        append([]models.Task(nil), s.tasks...),
		Transactions: append([]models.Transaction(nil), s.transactions...),
		Savings:      s.savings,
		HealthLogs:   append([]models.HealthLog(nil), s.healthLogs...),
		Periods:      append([]models.PeriodData(nil), s.periods...),
		Reflections:  append([]models.Reflection(nil), s.reflections...),
		Roadmap:      s.roadmap,
		ChannelStats: s.channelStats,
		StudyLog:     s.studyLogCopy(),
		VideoPlans:   append([]models.VideoPlan(nil), s.videoPlans...),
		Settings:     s.settings,
	}
}

// studyLogCopy copies the study map; caller holds at least a read lock.
func (s *Store) studyLogCopy() models.StudyLog {
	out := make(models.StudyLog, len(s.studyLog))
	for k, v := range s.studyLog {
		out[k] = v
	}
	return out
}
