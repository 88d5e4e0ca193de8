// ABOUTME: Charm KV backend for the keyed blob store with cloud sync.
// ABOUTME: Wraps charm kv (badger underneath) and syncs after each write.
package charm

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"

	lkv "github.com/harperreed/lifedash/internal/kv"
)

const (
	dbName    = "lifedash"
	charmHost = "charm.2389.dev"
)

// Store is the cloud-synced implementation of kv.Store. Data is E2E
// encrypted with the user's Charm keys and pulled on open.
type Store struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ lkv.Store = (*Store)(nil)

// Open opens the Charm KV database and pulls remote state.
func Open() (*Store, error) {
	// Set server before opening KV
	if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
		return nil, err
	}

	db, err := kv.OpenWithDefaultsFallback(dbName)
	if err != nil {
		return nil, fmt.Errorf("open charm kv: %w", err)
	}

	s := &Store{kv: db, autoSync: true}

	// Pull remote data on startup (skip in read-only mode)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return s, nil
}

// Get returns the blob stored under key, or kv.ErrNotFound.
func (s *Store) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, err := s.kv.Get([]byte(key))
	if err != nil {
		return nil, lkv.ErrNotFound
	}
	return val, nil
}

// Set stores the blob and syncs to Charm Cloud.
func (s *Store) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := s.kv.Set([]byte(key), value); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes the key and syncs to Charm Cloud.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process (MCP server?)")
	}
	if err := s.kv.Delete([]byte(key)); err != nil {
		return err
	}
	s.syncIfEnabled()
	return nil
}

// Keys returns every key in the store.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := s.kv.Keys()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		keys = append(keys, string(k))
	}
	return keys, nil
}

// Close closes the KV database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *Store) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (s *Store) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

func (s *Store) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}
