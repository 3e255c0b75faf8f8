package files

import (
	"sync"

	"github.com/google/uuid"
)

// Task tracks one in-flight read. It stays active until its completion
// is delivered or it is cancelled, whichever happens first.
//
// Reader implementations build a Task with NewTask, return it from
// Read, and route the completion callback through Complete so that
// cancellation and at-most-once delivery hold for every reader.
type Task struct {
	id uuid.UUID

	mu        sync.Mutex
	cancelled bool
	delivered bool
}

// NewTask builds a pending task with a fresh identifier.
func NewTask() *Task {
	return &Task{id: uuid.New()}
}

// ID returns the unique identifier of the task.
func (t *Task) ID() uuid.UUID {
	return t.id
}

// Active reports whether the completion is still pending. It returns
// false once the completion has been delivered or the task cancelled.
func (t *Task) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.delivered && !t.cancelled
}

// Cancel marks the task as cancelled. A cancelled task never delivers
// its completion. Cancelling an already delivered task is a no-op.
func (t *Task) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelled = true
}

// Complete invokes fn unless the task was cancelled or has already
// delivered, and reports whether fn ran. Each task completes at most
// once.
func (t *Task) Complete(fn func()) bool {
	t.mu.Lock()
	if t.cancelled || t.delivered {
		t.mu.Unlock()
		return false
	}
	t.delivered = true
	t.mu.Unlock()

	fn()
	return true
}
