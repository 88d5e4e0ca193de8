// ABOUTME: Health log upsert-by-date and period cycle operations.
// ABOUTME: At most one health log exists per calendar date.
package store

import "github.com/harperreed/lifedash/internal/models"

// HealthLogs returns a copy of the health log list.
func (s *Store) HealthLogs() []models.HealthLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HealthLog(nil), s.healthLogs...)
}

// HealthLogFor returns the log for a date key, if one exists.
func (s *Store) HealthLogFor(date string) (models.HealthLog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.healthLogs {
		if l.Date == date {
			return l, true
		}
	}
	return models.HealthLog{}, false
}

// UpsertHealthLog merges a patch into the log for the given date, creating
// a zero-valued log first if the date has none.
func (s *Store) UpsertHealthLog(date string, patch models.HealthPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.healthLogs {
		if s.healthLogs[i].Date == date {
			patch.Apply(&s.healthLogs[i])
			s.persist(sliceHealthLogs, s.healthLogs)
			return
		}
	}
	l := models.NewHealthLog(date)
	patch.Apply(l)
	s.healthLogs = append([]models.HealthLog{*l}, s.healthLogs...)
	s.persist(sliceHealthLogs, s.healthLogs)
}

// Periods returns a copy of the period list, newest first.
func (s *Store) Periods() []models.PeriodData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PeriodData(nil), s.periods...)
}

// AddPeriod inserts or replaces the period starting on p.StartDate and
// keeps the list sorted descending by start date.
func (s *Store) AddPeriod(p models.PeriodData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.periods {
		if s.periods[i].StartDate == p.StartDate {
			s.periods[i] = p
			s.persist(slicePeriods, s.periods)
			return
		}
	}
	s.periods = append(s.periods, p)
	models.SortPeriods(s.periods)
	s.persist(slicePeriods, s.periods)
}

// DeletePeriod removes the period with the given start date. Absent start
// dates are a no-op; the remaining list keeps its descending order.
func (s *Store) DeletePeriod(startDate string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.periods {
		if s.periods[i].StartDate == startDate {
			s.periods = append(s.periods[:i], s.periods[i+1:]...)
			s.persist(slicePeriods, s.periods)
			return
		}
	}
}
