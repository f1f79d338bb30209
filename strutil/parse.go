package strutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ToDouble parses a leading decimal floating-point value from s, ignoring
// surrounding whitespace, and returns 0 when nothing parses. It behaves like
// classic "C"-locale stream extraction: trailing garbage stops the number
// instead of failing it, and out-of-range values saturate.
func ToDouble(s string) float64 {
	s = strings.TrimSpace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return f
	}
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return f // ParseFloat saturates to ±Inf / ±MaxFloat64 on range errors
	}
	// longest parsable prefix
	for i := len(s) - 1; i > 0; i-- {
		if f, err := strconv.ParseFloat(s[:i], 64); err == nil {
			return f
		}
	}
	return 0
}

// IntegerParseError builds the error reported when s cannot be parsed as an
// integer. When s itself is not valid UTF-8 a fixed message is used instead,
// so the error text stays well-formed.
func IntegerParseError(s string) error {
	if !utf8.ValidString(s) {
		return errors.New("strings must be encoded in UTF-8")
	}
	return fmt.Errorf("can't parse %q as an integer", s)
}
