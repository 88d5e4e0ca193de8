// ABOUTME: Tests for identity switching and the bulk reload protocol.
// ABOUTME: Covers key-space isolation and the roadmap fallback asymmetry.
package store

import (
	"testing"
	"time"

	"github.com/harperreed/lifedash/internal/models"
)

func TestIdentitySwitchIsolatesKeySpaces(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.AddTask(models.NewTask("guest errand", "2026-08-28"))

	if ok := s.Login(models.User{Email: "ada@example.com", Name: "Ada"}); !ok {
		t.Fatal("login must always succeed")
	}
	if got := s.Tasks(); len(got) != 0 {
		t.Fatalf("new identity must not see guest tasks, got %+v", got)
	}

	s.AddTask(models.NewTask("ada errand", "2026-08-28"))

	s.Logout()
	got := s.Tasks()
	if len(got) != 1 || got[0].Name != "guest errand" {
		t.Fatalf("guest data should be intact after switching back, got %+v", got)
	}

	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	got = s.Tasks()
	if len(got) != 1 || got[0].Name != "ada errand" {
		t.Fatalf("identity data should be intact after switching back, got %+v", got)
	}
}

func TestLoginFlushesDepartingIdentityWrites(t *testing.T) {
	db := newMemStore()
	s := New(db, Options{SaveDelay: time.Hour})
	t.Cleanup(s.Close)

	s.AddHabit(models.NewHabit("Stretch", "fitness"))
	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	s.Logout()

	if got := s.Habits(); len(got) != 1 || got[0].Name != "Stretch" {
		t.Fatalf("pending guest write must survive an identity round trip, got %+v", got)
	}
}

func TestReloginSameIdentityDoesNotReload(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	s.AddReflection(models.NewReflection("kept in memory", nil))

	// Same discriminator: no reload, the unflushed slice stays visible.
	s.Login(models.User{Email: "ada@example.com", Name: "Ada B."})
	if got := s.Reflections(); len(got) != 1 {
		t.Fatalf("re-login with same email must not reload, got %+v", got)
	}
}

func TestIdentitySwitchRoadmapKeepsInMemory(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.SetRoadmap(models.GoalRoadmap{MainGoal: "Ship the thing", Year: 2026})
	s.UpdateSettings(func(set *models.Settings) { set.Theme = "light" })

	s.Login(models.User{Email: "fresh@example.com", Name: "Fresh"})

	// The roadmap falls back to the in-memory value when the new identity
	// never saved one; settings fall back to the static defaults.
	if got := s.Roadmap(); got.MainGoal != "Ship the thing" {
		t.Errorf("roadmap should carry over to an identity with none saved, got %q", got.MainGoal)
	}
	if got := s.Settings(); got.Theme != "dark" {
		t.Errorf("settings should reset to defaults for a fresh identity, got %q", got.Theme)
	}
}

func TestIdentitySwitchLoadsSavedRoadmap(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.SetRoadmap(models.GoalRoadmap{MainGoal: "guest plan", Year: 2026})
	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	s.SetRoadmap(models.GoalRoadmap{MainGoal: "ada plan", Year: 2026})
	s.Logout()

	if got := s.Roadmap(); got.MainGoal != "guest plan" {
		t.Errorf("a saved roadmap always wins over the in-memory fallback, got %q", got.MainGoal)
	}
}

func TestFirstLoginSeedsSettingsName(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	if got := s.Settings().Name; got != "Ada" {
		t.Fatalf("first login should seed the settings name, got %q", got)
	}

	s.UpdateSettings(func(set *models.Settings) { set.Name = "Countess" })
	s.Logout()
	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	if got := s.Settings().Name; got != "Countess" {
		t.Fatalf("an existing settings name must not be overwritten, got %q", got)
	}
}

func TestLogoutClearsIdentity(t *testing.T) {
	db := newMemStore()
	s := newTestStore(t, db)

	s.Login(models.User{Email: "ada@example.com", Name: "Ada"})
	s.Logout()

	if s.User() != nil {
		t.Error("logout should clear the identity record")
	}
	if s.Authenticated() {
		t.Error("logout should clear the authenticated flag")
	}
}
