package overlay

import (
	"reflect"
	"testing"
)

type fakeWindow struct {
	calls []bool
}

func (w *fakeWindow) SetInteractive(v bool) { w.calls = append(w.calls, v) }

func TestNewAssertsClickThrough(t *testing.T) {
	w := &fakeWindow{}
	c := New(w)
	if c.Mode() != ClickThrough {
		t.Fatalf("mode = %v", c.Mode())
	}
	if !reflect.DeepEqual(w.calls, []bool{false}) {
		t.Fatalf("calls = %v", w.calls)
	}
}

func TestRestoreClickThroughIsIdempotent(t *testing.T) {
	w := &fakeWindow{}
	c := New(w)
	c.RestoreClickThrough()
	c.RestoreClickThrough()
	if len(w.calls) != 1 {
		t.Fatalf("calls = %v, want only the initial assert", w.calls)
	}

	c.MakeInteractive()
	c.MakeInteractive()
	c.RestoreClickThrough()
	c.RestoreClickThrough()
	if want := []bool{false, true, false}; !reflect.DeepEqual(w.calls, want) {
		t.Fatalf("calls = %v, want %v", w.calls, want)
	}
	if c.Mode() != ClickThrough {
		t.Fatalf("mode = %v", c.Mode())
	}
}
