package store

import (
	"reflect"
	"sync"
)

var (
	globalMu    sync.Mutex
	globalCells = make(map[reflect.Type]any)
)

// Global returns the process-wide cell for T, creating it on first
// use. Every call with the same T returns the same cell, so unrelated
// components can share state without plumbing a Store between them.
func Global[T any]() *Store[T] {
	globalMu.Lock()
	defer globalMu.Unlock()

	key := reflect.TypeOf((*T)(nil)).Elem()
	if cell, ok := globalCells[key]; ok {
		return cell.(*Store[T])
	}
	cell := New[T]()
	globalCells[key] = cell
	return cell
}
