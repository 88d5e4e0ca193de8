// ABOUTME: Settings singleton access and partial updates.
// ABOUTME: Credential fields keep user values; backfill runs only on load.
package store

import "github.com/harperreed/lifedash/internal/models"

// Settings returns the settings singleton.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings merges a patch into the settings singleton.
func (s *Store) UpdateSettings(patch func(*models.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch(&s.settings)
	s.persist(sliceSettings, s.settings)
}
