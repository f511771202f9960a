package conv

import (
	"reflect"
	"testing"
)

func TestRuneOffsets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []int
	}{
		{"empty", "", []int{0}},
		{"ascii", "abc", []int{0, 1, 2, 3}},
		{"two-byte", "héllo", []int{0, 1, 3, 4, 5, 6}},
		{"four-byte", "a😀b", []int{0, 1, 5, 6}},
		{"invalid byte", "a\xffb", []int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RuneOffsets(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RuneOffsets(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if n := len([]rune(tt.in)); len(got) != n+1 {
				t.Errorf("len = %d, want rune count + 1 = %d", len(got), n+1)
			}
		})
	}
}

func TestByteSpan(t *testing.T) {
	offsets := RuneOffsets("héllo")
	if s, e := ByteSpan(offsets, 1, 3); s != 1 || e != 5 {
		t.Errorf("ByteSpan(1, 3) = [%d, %d), want [1, 5)", s, e)
	}
	if s, e := ByteSpan(offsets, 5, 0); s != 6 || e != 6 {
		t.Errorf("ByteSpan(5, 0) = [%d, %d), want [6, 6)", s, e)
	}
	if s, e := ByteSpan(nil, 2, 2); s != 2 || e != 4 {
		t.Errorf("ByteSpan(nil, 2, 2) = [%d, %d), want [2, 4)", s, e)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("ByteSpan out of range should panic")
		}
	}()
	ByteSpan(offsets, 4, 3)
}

func TestIsASCII(t *testing.T) {
	if !IsASCII("plain text") {
		t.Error("IsASCII(plain text) = false")
	}
	if IsASCII("héllo") {
		t.Error("IsASCII(héllo) = true")
	}
}
