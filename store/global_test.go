package store

import (
	"reflect"
	"testing"
)

type globalPrefs struct{ Theme string }

type globalSession struct{ User string }

func TestGlobal_SameCellPerType(t *testing.T) {
	a := Global[globalPrefs]()
	b := Global[globalPrefs]()

	if a != b {
		t.Fatalf("Global returned distinct cells for the same type")
	}

	a.Reduce(func(p *globalPrefs) { p.Theme = "dark" })
	if got := b.State().Theme; got != "dark" {
		t.Fatalf("second cell sees Theme = %q, want %q", got, "dark")
	}
}

func TestGlobal_DistinctCellPerType(t *testing.T) {
	a := Global[globalPrefs]()
	b := Global[globalSession]()

	if reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer() {
		t.Fatalf("Global returned the same cell for different types")
	}

	b.Reduce(func(s *globalSession) { s.User = "ada" })
	if got := b.State().User; got != "ada" {
		t.Fatalf("session cell User = %q, want %q", got, "ada")
	}
}
