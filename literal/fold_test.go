package literal

import (
	"errors"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ABS", "abs"},
		{"Straße", "strasse"},
		{"K", "k"}, // Kelvin sign
		{"ΣΑΣ", "σασ"},
	}
	for _, tt := range tests {
		if got := Fold(tt.in); got != tt.want {
			t.Errorf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFoldMapLookup(t *testing.T) {
	src := map[string]string{"abc": "new1", "Foo": "new2"}

	folded, err := NewFoldMap(src, true)
	if err != nil {
		t.Fatalf("NewFoldMap: %v", err)
	}
	if !folded.Folded() || folded.Len() != 2 {
		t.Errorf("Folded() = %v, Len() = %d", folded.Folded(), folded.Len())
	}
	for _, key := range []string{"ABC", "abc", "FOO", "foo"} {
		if _, ok := folded.Lookup(key); !ok {
			t.Errorf("folded Lookup(%q) missing", key)
		}
	}

	exact, err := NewFoldMap(src, false)
	if err != nil {
		t.Fatalf("NewFoldMap: %v", err)
	}
	if v, ok := exact.Lookup("Foo"); !ok || v != "new2" {
		t.Errorf("exact Lookup(Foo) = %q, %v", v, ok)
	}
	if _, ok := exact.Lookup("foo"); ok {
		t.Error("exact Lookup(foo) should miss")
	}
}

func TestFoldMapAmbiguous(t *testing.T) {
	_, err := NewFoldMap(map[string]int{"abc": 1, "ABC": 2}, true)
	if !errors.Is(err, ErrAmbiguousKeys) {
		t.Fatalf("err = %v, want ErrAmbiguousKeys", err)
	}
	if want := `"ABC" and "abc": ` + ErrAmbiguousKeys.Error(); err.Error() != want {
		t.Errorf("err = %q, want %q", err.Error(), want)
	}

	// The same keys are fine when case matters.
	if _, err := NewFoldMap(map[string]int{"abc": 1, "ABC": 2}, false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
