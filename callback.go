package teaform

// Callback wraps a function invoked with an event payload. The zero
// value is a no-op, so optional callbacks can be left unset. Callbacks
// are cheap to copy and safe to hand to widgets that outlive the
// render frame that built them.
type Callback[E any] struct {
	fn func(E)
}

// NewCallback wraps fn in a Callback.
func NewCallback[E any](fn func(E)) Callback[E] {
	return Callback[E]{fn: fn}
}

// Emit invokes the callback with e. Emitting the zero Callback does
// nothing.
func (c Callback[E]) Emit(e E) {
	if c.fn != nil {
		c.fn(e)
	}
}

// IsSet reports whether a function is attached.
func (c Callback[E]) IsSet() bool {
	return c.fn != nil
}

// Reform adapts a Callback[E] to accept F instead, converting each
// payload with adapt before emitting.
func Reform[E, F any](c Callback[E], adapt func(F) E) Callback[F] {
	return NewCallback(func(f F) {
		c.Emit(adapt(f))
	})
}
