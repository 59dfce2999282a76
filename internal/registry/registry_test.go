package registry

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/minigames/internal/engine"
)

func testEntry(slug string) Entry {
	return Entry{
		Slug:       slug,
		Name:       "Test " + slug,
		Difficulty: Easy,
		Config: func() engine.Config {
			return engine.Config{
				TickPeriod: 50 * time.Millisecond,
				Field:      engine.Field{Width: 10, Height: 10},
				Keymap:     engine.ArrowKeys(),
			}
		},
	}
}

func TestRegisterAndList(t *testing.T) {
	reset()
	defer reset()

	Register(testEntry("zeta"))
	Register(testEntry("alpha"))

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() returned %d entries, expected 2", len(list))
	}
	if list[0].Slug != "alpha" || list[1].Slug != "zeta" {
		t.Errorf("List() order = %s, %s, expected alpha, zeta", list[0].Slug, list[1].Slug)
	}
	if !Exists("alpha") {
		t.Error("Exists(alpha) = false, expected true")
	}
	if got := list[0].Path(); got != "/games/alpha" {
		t.Errorf("Path() = %q, expected %q", got, "/games/alpha")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset()
	defer reset()

	Register(testEntry("dup"))
	defer func() {
		if recover() == nil {
			t.Error("Register() with duplicate slug did not panic")
		}
	}()
	Register(testEntry("dup"))
}

func TestLookupUnknown(t *testing.T) {
	reset()
	defer reset()

	_, err := Lookup("missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Lookup() error = %v, expected ErrUnknownGame", err)
	}
	if _, err := Create("missing", 1); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
}

func TestCreateValidatesConfig(t *testing.T) {
	reset()
	defer reset()

	Register(testEntry("ok"))
	e, err := Create("ok", 3)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if e.Seed() != 3 {
		t.Errorf("Seed() = %d, expected 3", e.Seed())
	}

	bad := testEntry("bad")
	cfg := bad.Config()
	cfg.TickPeriod = 0
	if _, err := bad.New(cfg, 1); err == nil {
		t.Error("New() with zero tick period succeeded, expected error")
	}
}
