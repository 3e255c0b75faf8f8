package store

import "sync"

// Store is a shared state cell holding a single value of type T. All
// mutation goes through Reduce, which serializes writers and notifies
// subscribers. The zero Store is not usable; construct cells with New,
// Global, or Open.
type Store[T any] struct {
	mu      sync.RWMutex
	value   T
	persist func(T)

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// New builds a plain shared cell initialized to the zero value of T.
func New[T any]() *Store[T] {
	return &Store[T]{subs: make(map[int]func())}
}

// Handle leases a view of the cell. Each component should lease its
// own handle so it can be detached independently.
func (s *Store[T]) Handle() *Handle[T] {
	return &Handle[T]{store: s}
}

// Reduce applies f to the state under the write lock. For persistent
// cells the new value is written through before the lock is released.
// Subscribers are notified afterwards, outside the lock.
func (s *Store[T]) Reduce(f func(*T)) {
	s.mu.Lock()
	f(&s.value)
	if s.persist != nil {
		s.persist(s.value)
	}
	s.mu.Unlock()

	s.notify()
}

// State returns a pointer to the live value. The pointer stays valid
// for the lifetime of the cell and always reflects the latest
// reduction. Use it for reads from the owning event loop; concurrent
// readers should prefer Snapshot.
func (s *Store[T]) State() *T {
	return &s.value
}

// Snapshot returns a copy of the current value.
func (s *Store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Subscribe registers fn to run after every reduction and returns a
// cancel function. Subscribers run synchronously on the reducing
// goroutine; they should hand off work, not mutate the cell.
func (s *Store[T]) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store[T]) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
