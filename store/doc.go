// Package store provides shared application state cells for form
// controllers and other event-loop components.
//
// # Overview
//
// A [Store] holds a single value of type T and serializes every
// mutation through [Store.Reduce]. Components never hold their own copy
// of the state; they lease a [Handle] and read through it, so all views
// of the same cell observe the same value. Subscribers are notified
// after each reduction, which is how the owning program learns that a
// re-render is due.
//
// # Store Flavors
//
// The flavor of a cell is decided by how it is constructed:
//
//   - [New] builds a plain shared cell. Anything holding a handle to it
//     sees the same value; nothing is written to disk.
//   - [Global] returns the process-wide cell for T, creating it on
//     first use. Every caller asking for the same T gets the same cell.
//   - [Open] builds a persistent cell: the value is restored from a
//     [Backend] on construction and written back after every
//     reduction.
//
// All flavors share the same API, so code written against a Handle
// works unchanged when the flavor changes.
//
// # Concurrency Model
//
// The Store uses a readers-writer lock:
//
//   - Reduce(): acquires the write lock, applies the reducer, persists
//     if the cell is persistent, then notifies subscribers after
//     releasing the lock
//   - Snapshot(): acquires the read lock and returns a copy
//
// [Store.State] returns a pointer into the cell for cheap reads from
// the owning event loop. Mutation must go through Reduce; callers that
// share the cell across goroutines should read via Snapshot instead.
//
// # Persistence
//
// Persistent cells encode the value as TOML and hand the bytes to a
// [Backend]. [FileBackend] keeps one file per key under a directory,
// [RedisBackend] stores keys in Redis, and [MemBackend] keeps them in
// memory for tests. Restore failures are reported by [Open] but leave
// the cell usable with the zero value, and write failures are logged
// rather than surfaced, so persistence problems never take down the
// UI.
//
// # Usage
//
//	type Prefs struct {
//		Theme string `toml:"theme"`
//	}
//
//	backend, _ := store.NewFileBackend("~/.config/app")
//	cell, err := store.Open[Prefs](ctx, backend, "prefs")
//	if err != nil {
//		log.Printf("restore prefs: %v", err)
//	}
//	h := cell.Handle()
//	h.Reduce(func(p *Prefs) { p.Theme = "dark" })
package store
