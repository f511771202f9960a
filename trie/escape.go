package trie

import "unicode/utf8"

// special lists the characters escaped in fragments. It is the regexp.QuoteMeta
// set plus '-', which is a range operator inside character classes.
const special = `\.+*?()|[]{}^$-`

// escapeRune returns r as a fragment matching exactly r. The escapes are valid
// in both RE2 and .NET syntax.
func escapeRune(r rune) string {
	if r < utf8.RuneSelf && isSpecial(byte(r)) {
		return `\` + string(r)
	}
	return string(r)
}

// Escape returns s with every fragment metacharacter escaped.
func Escape(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

func isSpecial(c byte) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
