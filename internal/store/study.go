// ABOUTME: Study-hours slice operations; hours accumulate per date key.
// ABOUTME: Logging hours adds to the day's total rather than overwriting.
package store

import "github.com/harperreed/lifedash/internal/models"

// StudyLog returns a copy of the study-hours map.
func (s *Store) StudyLog() models.StudyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studyLogCopy()
}

// LogStudyHours adds hours to the given date's total, creating the entry
// at zero if absent.
func (s *Store) LogStudyHours(date string, hours float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.studyLog == nil {
		s.studyLog = models.StudyLog{}
	}
	s.studyLog[date] += hours
	s.persist(sliceStudyLog, s.studyLog)
}

// StudyHoursFor returns the accumulated hours for a date key.
func (s *Store) StudyHoursFor(date string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.studyLog[date]
}
