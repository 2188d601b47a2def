package session

import (
	"errors"
	"testing"
)

func TestRegistry_PutGetRemove(t *testing.T) {
	r := NewRegistry()
	s := fixedSession(10, nil, fixedRound(0, [3]int{5, 9, 1}))

	if _, err := r.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get on empty registry = %v, want ErrSessionNotFound", err)
	}

	r.Put(s)
	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != s {
		t.Fatal("Get returned a different session")
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}

	r.Remove(s.ID)
	if _, err := r.Get(s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get after Remove = %v, want ErrSessionNotFound", err)
	}
}

func TestRegistry_SnapshotIsolation(t *testing.T) {
	r := NewRegistry()
	a := fixedSession(10, nil, fixedRound(0, [3]int{5, 9, 1}))
	b := fixedSession(10, nil, fixedRound(0, [3]int{2, 4, 6}))
	r.Put(a)
	r.Put(b)

	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("snapshot length = %d, want 2", len(snap))
	}

	r.Remove(a.ID)
	if len(snap) != 2 {
		t.Fatal("snapshot must not shrink after Remove")
	}
	if r.Len() != 1 {
		t.Fatalf("Len after Remove = %d, want 1", r.Len())
	}
}
