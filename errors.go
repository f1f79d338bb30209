package bytescape

import "fmt"

// HexLengthError reports a hex string whose length is not a multiple of two.
type HexLengthError struct {
	Length int
}

func (e *HexLengthError) Error() string {
	return fmt.Sprintf("bytescape: hex string has odd length %d", e.Length)
}

// HexCharError reports a byte in a hex string that is not a hex digit.
type HexCharError struct {
	Pos  int
	Char byte
}

func (e *HexCharError) Error() string {
	return fmt.Sprintf("bytescape: invalid hex character %q at position %d", e.Char, e.Pos)
}
