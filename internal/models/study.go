// ABOUTME: StudyLog slice mapping date keys to accumulated hours.
// ABOUTME: Logging hours for a day adds to the existing total.
package models

// StudyLog maps a date key to the hours studied that day.
type StudyLog map[string]float64

// NormalizeStudyLog repairs a decoded study snapshot, dropping malformed
// date keys and negative totals.
func NormalizeStudyLog(s StudyLog) StudyLog {
	if s == nil {
		return StudyLog{}
	}
	for k, v := range s {
		if !ValidDateKey(k) || v < 0 {
			delete(s, k)
		}
	}
	return s
}

// Total returns the sum of all logged hours.
func (s StudyLog) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}
