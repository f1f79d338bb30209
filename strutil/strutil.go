// Package strutil carries the small string helpers that accompany the byte
// transcoders: padding, joining, line collapsing and forgiving numeric
// parsing.
package strutil

import "strings"

// Implode joins v with a single delimiter byte between elements.
func Implode(v []string, delim byte) string {
	return strings.Join(v, string(delim))
}

// Lpad left-pads s with c up to size bytes. s is returned unchanged when
// already long enough.
func Lpad(s string, size int, c byte) string {
	if len(s) >= size {
		return s
	}
	return strings.Repeat(string(c), size-len(s)) + s
}

// Lpad0 left-pads with '0', for fixed-width numeric fields.
func Lpad0(s string, size int) string {
	return Lpad(s, size, '0')
}

// Rpad right-pads s with c up to size bytes.
func Rpad(s string, size int, c byte) string {
	if len(s) >= size {
		return s
	}
	return s + strings.Repeat(string(c), size-len(s))
}

// Oneline collapses every run of newline characters, together with the
// spaces that follow it, into a single space and trims trailing spaces.
// Leading newlines and spaces are dropped entirely.
func Oneline(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	afterNewline := true
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\n' && c != '\r' {
			if afterNewline {
				if c == ' ' {
					continue
				}
				afterNewline = false
			}
			b.WriteByte(c)
		} else if !afterNewline {
			afterNewline = true
			b.WriteByte(' ')
		}
	}
	res := b.String()
	for len(res) > 0 && res[len(res)-1] == ' ' {
		res = res[:len(res)-1]
	}
	return res
}
