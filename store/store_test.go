package store

import (
	"sync"
	"testing"
)

type draft struct {
	Name  string
	Count int
}

func TestStore_ReduceUpdatesState(t *testing.T) {
	s := New[draft]()

	s.Reduce(func(d *draft) { d.Name = "Ada" })
	s.Reduce(func(d *draft) { d.Count++ })

	if got := s.State(); got.Name != "Ada" || got.Count != 1 {
		t.Fatalf("State() = %+v, want {Ada 1}", *got)
	}
}

func TestStore_StatePointerTracksReductions(t *testing.T) {
	s := New[draft]()
	p := s.State()

	s.Reduce(func(d *draft) { d.Count = 7 })

	if p.Count != 7 {
		t.Fatalf("State pointer sees Count = %d, want 7", p.Count)
	}
}

func TestStore_SnapshotIsCopy(t *testing.T) {
	s := New[draft]()
	s.Reduce(func(d *draft) { d.Name = "before" })

	snap := s.Snapshot()
	s.Reduce(func(d *draft) { d.Name = "after" })

	if snap.Name != "before" {
		t.Fatalf("snapshot Name = %q, want %q", snap.Name, "before")
	}
}

func TestStore_SubscribeAndCancel(t *testing.T) {
	s := New[draft]()

	notified := 0
	cancel := s.Subscribe(func() { notified++ })

	s.Reduce(func(d *draft) { d.Count++ })
	if notified != 1 {
		t.Fatalf("notified = %d after one reduction, want 1", notified)
	}

	cancel()
	s.Reduce(func(d *draft) { d.Count++ })
	if notified != 1 {
		t.Fatalf("notified = %d after cancel, want 1", notified)
	}
}

func TestStore_ConcurrentReduces(t *testing.T) {
	s := New[draft]()

	const workers, rounds = 8, 100
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range rounds {
				s.Reduce(func(d *draft) { d.Count++ })
			}
		}()
	}
	wg.Wait()

	if got := s.Snapshot().Count; got != workers*rounds {
		t.Fatalf("Count = %d, want %d", got, workers*rounds)
	}
}
