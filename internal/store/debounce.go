// ABOUTME: Debounced slice writer with independent per-key timers.
// ABOUTME: Only the last value scheduled within the delay window is written.
package store

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/harperreed/lifedash/internal/kv"
)

// saver coalesces writes per key: scheduling a key cancels any pending
// write for that key and restarts its timer. Writes are fire-and-forget;
// failures are logged and never reach the mutation caller.
type saver struct {
	db    kv.Store
	delay time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string][]byte
}

func newSaver(db kv.Store, delay time.Duration) *saver {
	return &saver{
		db:      db,
		delay:   delay,
		timers:  make(map[string]*time.Timer),
		pending: make(map[string][]byte),
	}
}

// Schedule serializes the value now and arms (or re-arms) the key's timer.
// Serializing at schedule time snapshots the value, so in-memory mutations
// after this call cannot leak into the pending write.
func (s *saver) Schedule(key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logger.Error("serialize slice", "key", key, "err", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[key] = data
	if t, ok := s.timers[key]; ok {
		t.Stop()
	}
	s.timers[key] = time.AfterFunc(s.delay, func() { s.fire(key) })
}

// fire writes the pending value for a key, if one is still pending. A timer
// that was superseded after firing finds nothing to do.
func (s *saver) fire(key string) {
	s.mu.Lock()
	data, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
		delete(s.timers, key)
	}
	s.mu.Unlock()

	if !ok {
		return
	}
	s.write(key, data)
}

// FlushAll immediately writes every pending value and stops all timers.
// Called on store Close to bound the data-loss window on shutdown.
func (s *saver) FlushAll() {
	s.mu.Lock()
	flush := make(map[string][]byte, len(s.pending))
	for key, data := range s.pending {
		flush[key] = data
		delete(s.pending, key)
	}
	for key, t := range s.timers {
		t.Stop()
		delete(s.timers, key)
	}
	s.mu.Unlock()

	for key, data := range flush {
		s.write(key, data)
	}
}

func (s *saver) write(key string, data []byte) {
	if err := s.db.Set(key, data); err != nil {
		// In-memory state stays authoritative; the persisted copy lags.
		logger.Error("slice write failed", "key", key, "err", err)
	}
}
