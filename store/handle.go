package store

import (
	"sync"
	"sync/atomic"
)

// Handle is one component's leased view of a Store. Reductions made
// through a detached handle are dropped, which lets a component be
// unmounted without tearing down callbacks that still point at it.
type Handle[T any] struct {
	store    *Store[T]
	detached atomic.Bool
}

// Store returns the underlying cell.
func (h *Handle[T]) Store() *Store[T] {
	return h.store
}

// State returns a pointer to the live value. See Store.State.
func (h *Handle[T]) State() *T {
	return h.store.State()
}

// Snapshot returns a copy of the current value.
func (h *Handle[T]) Snapshot() T {
	return h.store.Snapshot()
}

// Reduce applies f to the state unless the handle is detached.
func (h *Handle[T]) Reduce(f func(*T)) {
	if h.detached.Load() {
		return
	}
	h.store.Reduce(f)
}

// Reducer returns a function that applies f each time it is called.
func (h *Handle[T]) Reducer(f func(*T)) func() {
	return func() {
		h.Reduce(f)
	}
}

// ReducerOnce returns a function that applies f on the first call only.
// Later calls are no-ops. Use it when the reduction captures a resource
// that must not be consumed twice.
func (h *Handle[T]) ReducerOnce(f func(*T)) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			h.Reduce(f)
		})
	}
}

// Detach severs the handle. Every reduction made through it afterwards
// is a no-op. Detach is permanent and safe to call more than once.
func (h *Handle[T]) Detach() {
	h.detached.Store(true)
}

// Detached reports whether the handle has been detached.
func (h *Handle[T]) Detached() bool {
	return h.detached.Load()
}

// ReduceWith returns a function that feeds its argument to f together
// with the state. It is the parameterized form of Handle.Reducer.
func ReduceWith[T, E any](h *Handle[T], f func(*T, E)) func(E) {
	return func(e E) {
		h.Reduce(func(t *T) {
			f(t, e)
		})
	}
}

// ReduceOnceWith is like ReduceWith but applies f on the first call
// only.
func ReduceOnceWith[T, E any](h *Handle[T], f func(*T, E)) func(E) {
	var once sync.Once
	return func(e E) {
		once.Do(func() {
			h.Reduce(func(t *T) {
				f(t, e)
			})
		})
	}
}
