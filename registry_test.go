package papertrade

import (
	"errors"
	"slices"
	"testing"
)

func TestRegistryOpen(t *testing.T) {
	r := NewRegistry()

	a, err := r.Open("alice", USD(1000))
	if err != nil {
		t.Fatalf("Open(alice) failed: %v", err)
	}
	if a.ID() != "alice" {
		t.Errorf("ID() = %q, want alice", a.ID())
	}

	// An empty id gets generated.
	b, err := r.Open("", USD(500))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if b.ID() == "" {
		t.Error("Open with empty id did not assign one")
	}

	if _, err := r.Open("alice", USD(1)); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("duplicate Open error = %v, want ErrDuplicateID", err)
	}
	if _, err := r.Open("bob", USD(-1)); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative deposit Open error = %v, want ErrInvalidAmount", err)
	}
	// The rejected accounts were not registered.
	if got := len(r.List()); got != 2 {
		t.Errorf("List() has %d accounts, want 2", got)
	}
}

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(nobody) error = %v, want ErrNotFound", err)
	}

	opened, err := r.Open("alice", USD(1000))
	if err != nil {
		t.Fatalf("Open(alice) failed: %v", err)
	}
	got, err := r.Get("alice")
	if err != nil {
		t.Fatalf("Get(alice) failed: %v", err)
	}
	if got != opened {
		t.Error("Get(alice) returned a different account instance")
	}
}

func TestRegistryList(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"charlie", "alice", "bob"} {
		if _, err := r.Open(id, USD(1)); err != nil {
			t.Fatalf("Open(%s) failed: %v", id, err)
		}
	}
	want := []string{"alice", "bob", "charlie"}
	if got := r.List(); !slices.Equal(got, want) {
		t.Errorf("List() = %v, want %v", got, want)
	}
}
