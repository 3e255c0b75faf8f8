package teaform

import "testing"

func TestCallback_ZeroValueIsNoop(t *testing.T) {
	var cb Callback[string]

	if cb.IsSet() {
		t.Fatalf("IsSet() = true for zero callback, want false")
	}
	cb.Emit("ignored") // must not panic
}

func TestCallback_EmitPassesPayload(t *testing.T) {
	var got []int
	cb := NewCallback(func(n int) { got = append(got, n) })

	cb.Emit(1)
	cb.Emit(2)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("got = %v, want [1 2]", got)
	}
}

func TestReform_AdaptsPayload(t *testing.T) {
	var got string
	cb := NewCallback(func(s string) { got = s })

	fromInput := Reform(cb, func(e InputEvent) string { return e.Value })
	fromInput.Emit(InputEvent{Value: "adapted"})

	if got != "adapted" {
		t.Fatalf("got = %q, want %q", got, "adapted")
	}
}

func TestReform_OverZeroCallbackStaysQuiet(t *testing.T) {
	var base Callback[string]

	adapted := Reform(base, func(e InputEvent) string { return e.Value })
	adapted.Emit(InputEvent{Value: "dropped"}) // must not panic
}
