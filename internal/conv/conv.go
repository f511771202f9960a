// Package conv converts between the offset units used by matching engines.
//
// Go strings are indexed by byte, but some engines (regexp2) decode their input
// into runes and report positions as rune indices. RuneOffsets builds the table
// that maps one to the other.
package conv

import "unicode/utf8"

// RuneOffsets returns the byte offset of every rune in s, followed by len(s).
//
// Invalid UTF-8 bytes count as one rune each, which is how a []rune conversion
// decodes them. The result has one entry more than the rune count of s, so
// offsets[i] is a valid end position for any rune index i.
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, len(s)+1)
	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return append(offsets, len(s))
}

// IsASCII reports whether s holds only ASCII bytes. For such strings rune and
// byte offsets coincide and no table is needed.
func IsASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// ByteSpan converts the rune span [index, index+length) to byte offsets using
// offsets from RuneOffsets. A nil table means the input is ASCII.
// Panics if the span lies outside the table, which indicates the engine
// searched a different string.
func ByteSpan(offsets []int, index, length int) (start, end int) {
	if offsets == nil {
		return index, index + length
	}
	if index < 0 || length < 0 || index+length >= len(offsets) {
		panic("rune span out of range")
	}
	return offsets[index], offsets[index+length]
}
