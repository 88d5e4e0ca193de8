// ABOUTME: Tests for the per-identity key scheme.
package kv

import "testing"

func TestSliceKey(t *testing.T) {
	tests := []struct {
		email, slice, want string
	}{
		{"", "habits", "lifedash::habits"},
		{"ada@example.com", "habits", "lifedash:ada@example.com:habits"},
		{"ada@example.com", "study_log", "lifedash:ada@example.com:study_log"},
	}
	for _, tt := range tests {
		if got := SliceKey(tt.email, tt.slice); got != tt.want {
			t.Errorf("SliceKey(%q, %q) = %q, want %q", tt.email, tt.slice, got, tt.want)
		}
	}
}

func TestSessionKey(t *testing.T) {
	if got := SessionKey("user"); got != "lifedash::session:user" {
		t.Errorf("SessionKey = %q", got)
	}
}

func TestKeySpacesNeverCollide(t *testing.T) {
	// The guest key space and the session namespace share the empty
	// discriminator; the slice position keeps them apart.
	guest := SliceKey("", "session")
	session := SessionKey("session")
	if guest == session {
		t.Fatalf("guest slice and session key collide: %q", guest)
	}
}
