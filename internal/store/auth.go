// ABOUTME: Identity handling: login, logout, and the bulk reload protocol.
// ABOUTME: Switching identities is a hard key-space switch, never a merge.
package store

import (
	"encoding/json"

	"github.com/harperreed/lifedash/internal/kv"
	"github.com/harperreed/lifedash/internal/models"
)

// User returns the active identity, or nil for the guest identity.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether an identity is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed
}

// Login switches the active identity and always succeeds. Every slice is
// synchronously reloaded from the new identity's key space. The first time
// an identity logs in, its display name seeds the settings name.
func (s *Store) Login(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.identityLocked()
	s.user = &user
	s.authed = true
	s.saveSession()

	if s.identityLocked() != prev {
		s.reload()
	}

	if s.settings.Name == "" && user.Name != "" {
		s.settings.Name = user.Name
		s.persist(sliceSettings, s.settings)
	}
	return true
}

// Logout clears the identity and reloads the guest key space. Persisted
// data for the departing identity is left untouched.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.identityLocked()
	s.user = nil
	s.authed = false
	s.saveSession()

	if prev != "" {
		s.reload()
	}
}

// reload flushes writes still pending for the departing identity, then
// re-reads every slice under the new identity's keys. Caller holds the
// write lock.
func (s *Store) reload() {
	s.saver.FlushAll()
	s.hydrate()
}

// saveSession writes the identity record and authenticated flag. These two
// keys live outside any per-slice namespace and are written synchronously:
// losing a debounce window on the session itself would reload the wrong
// key space next start.
func (s *Store) saveSession() {
	userData, err := json.Marshal(s.user)
	if err == nil {
		if err := s.db.Set(kv.SessionKey(sessionUser), userData); err != nil {
			logger.Error("session write failed", "err", err)
		}
	}
	authData, _ := json.Marshal(s.authed)
	if err := s.db.Set(kv.SessionKey(sessionAuthed), authData); err != nil {
		logger.Error("session write failed", "err", err)
	}
}
