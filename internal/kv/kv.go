// ABOUTME: Keyed blob store interface and the per-identity key scheme.
// ABOUTME: Every slice persists as one JSON blob under a namespaced key.
package kv

import (
	"errors"
	"os"
	"path/filepath"
)

// Namespace prefixes every key written by lifedash.
const Namespace = "lifedash:"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("kv: key not found")

// Store is the durable keyed blob store backing the reactive store.
// Implementations: Badger (local, default) and Charm (cloud-synced).
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() ([]string, error)
	Close() error
}

// SliceKey derives the storage key for a slice under an identity.
// The identity discriminator is the user's email, or empty for the guest
// identity. Two identities never share a key.
func SliceKey(email, slice string) string {
	return Namespace + email + ":" + slice
}

// SessionKey derives a key outside any per-slice namespace, used for the
// current-identity record and the authenticated flag.
func SessionKey(name string) string {
	return Namespace + ":session:" + name
}

// DataDir returns the default data directory following the XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lifedash")
}
