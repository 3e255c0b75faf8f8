package teaform

import (
	"fmt"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/teaform/teaform/files"
	"github.com/teaform/teaform/store"
)

// Binder manufactures event callbacks for one render frame. It is
// handed to the view function by Form.View and must not be stored: the
// callbacks it builds capture the store handle and the form's node
// directly, so they stay valid after the frame, but the binder itself
// does not.
type Binder[T any] struct {
	handle *store.Handle[T]
	node   *node
}

// State returns a pointer to the current form state for conditional
// rendering. Mutation must go through a callback, never the pointer.
func (b *Binder[T]) State() *T {
	return b.handle.State()
}

// Set builds a callback that applies f and ignores the payload. Use it
// for buttons and toggles whose event carries no data.
func (b *Binder[T]) Set(f func(*T)) Callback[tea.Msg] {
	return Bind[tea.Msg](b, f)
}

// Bind is Set for an arbitrary event type E.
func Bind[E, T any](b *Binder[T], f func(*T)) Callback[E] {
	apply := b.handle.Reducer(f)
	return NewCallback(func(E) {
		apply()
	})
}

// BindWith builds a callback that hands the raw event payload to f
// alongside the state.
func BindWith[E, T any](b *Binder[T], f func(*T, E)) Callback[E] {
	return NewCallback(store.ReduceWith(b.handle, f))
}

// SetText builds a callback over text-input events. f receives the
// event's text exactly as the control reported it.
func (b *Binder[T]) SetText(f func(*T, string)) Callback[InputEvent] {
	return Reform(BindWith[string](b, f), func(e InputEvent) string {
		return e.Value
	})
}

// SetSelect builds a callback over change events from select controls.
// f receives the chosen option's value. Feeding it a change event from
// any other control family is a programming error and panics.
func (b *Binder[T]) SetSelect(f func(*T, string)) Callback[ChangeEvent] {
	apply := store.ReduceWith(b.handle, f)
	return NewCallback(func(e ChangeEvent) {
		if e.Origin != OriginSelect {
			panic(fmt.Sprintf("teaform: SetSelect received %s change event; bind it to a select control", e.Origin))
		}
		apply(e.Value)
	})
}

// SetFile builds a callback over change events from file pickers. Each
// selected file is read asynchronously by the form's reader; f
// receives the loaded contents once per file, in completion order, not
// selection order. Events without files are ignored.
func (b *Binder[T]) SetFile(f func(*T, files.Data)) Callback[ChangeEvent] {
	handle, n := b.handle, b.node
	return NewCallback(func(e ChangeEvent) {
		if len(e.Files) == 0 {
			return
		}
		// One single-shot reducer per scheduled read; loaded contents
		// must not be applied twice.
		mk := func() func(files.Data) {
			return store.ReduceOnceWith(handle, f)
		}
		n.dispatch(filesMsg{files: slices.Clone(e.Files), mk: mk})
	})
}

// Submit builds a callback that requests submission, ignoring the
// payload. While the form is not wired to a program the callback does
// nothing, so it is safe on buttons that render before wiring.
func (b *Binder[T]) Submit() Callback[tea.Msg] {
	n := b.node
	return NewCallback(func(tea.Msg) {
		n.dispatch(submitMsg{})
	})
}

// Reset builds a callback that requests an explicit reset: the store
// returns to the configured default and ResetMsg is broadcast so
// controls clear. Without a configured default only the broadcast
// happens.
func (b *Binder[T]) Reset() Callback[tea.Msg] {
	n := b.node
	return NewCallback(func(tea.Msg) {
		n.dispatch(resetMsg{})
	})
}
