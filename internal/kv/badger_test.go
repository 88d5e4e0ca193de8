// ABOUTME: Tests for the Badger-backed keyed blob store.
// ABOUTME: Exercises the full kv.Store contract against a temp database.
package kv

import (
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("open badger: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close: %v", err)
		}
	})
	return s
}

func TestBadgerSetGet(t *testing.T) {
	s := openTestStore(t)

	key := SliceKey("ada@example.com", "habits")
	if err := s.Set(key, []byte(`[{"name":"Run"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := s.Get(key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"name":"Run"}]` {
		t.Errorf("value mismatch: %s", got)
	}
}

func TestBadgerGetMissingKey(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Get(SliceKey("", "habits"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBadgerOverwrite(t *testing.T) {
	s := openTestStore(t)

	key := SliceKey("", "savings")
	if err := s.Set(key, []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(key, []byte("new")); err != nil {
		t.Fatal(err)
	}

	got, err := s.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "new" {
		t.Errorf("overwrite lost: %s", got)
	}
}

func TestBadgerDelete(t *testing.T) {
	s := openTestStore(t)

	key := SliceKey("", "tasks")
	if err := s.Set(key, []byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.Get(key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Absent keys delete without error.
	if err := s.Delete("lifedash:never:was"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestBadgerKeys(t *testing.T) {
	s := openTestStore(t)

	want := map[string]bool{
		SliceKey("", "habits"):                true,
		SliceKey("ada@example.com", "habits"): true,
		SessionKey("user"):                    true,
	}
	for k := range want {
		if err := s.Set(k, []byte("v")); err != nil {
			t.Fatal(err)
		}
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != len(want) {
		t.Fatalf("key count = %d, want %d (%v)", len(keys), len(want), keys)
	}
	for _, k := range keys {
		if !want[k] {
			t.Errorf("unexpected key %q", k)
		}
	}
}

func TestBadgerReopenPersists(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	key := SliceKey("", "settings")
	if err := s.Set(key, []byte("durable")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := OpenBadger(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	got, err := s2.Get(key)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "durable" {
		t.Errorf("value lost across reopen: %s", got)
	}
}
