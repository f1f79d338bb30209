package bytescape

const (
	lowerHex = "0123456789abcdef"
	upperHex = "0123456789ABCDEF"
)

// hexNibble returns the value of a hex digit, or 16 when c is not one.
func hexNibble(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 16
}

// HexEncode encodes data as lowercase hex, high nibble first. The result is
// always exactly twice as long as data.
func HexEncode(data []byte) string {
	dst := make([]byte, 2*len(data))
	for i, c := range data {
		dst[2*i] = lowerHex[c>>4]
		dst[2*i+1] = lowerHex[c&0x0F]
	}
	return string(dst)
}

// HexDecode parses a hex string into raw bytes. Both digit cases are
// accepted. It returns *HexLengthError when len(s) is odd and *HexCharError
// on the first byte outside [0-9a-fA-F]. The nibble combination is
// high<<4 | low on values 0..15, so it always fits a byte.
func HexDecode(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, &HexLengthError{Length: len(s)}
	}
	res := make([]byte, len(s)/2)
	for i := range res {
		high := hexNibble(s[2*i])
		low := hexNibble(s[2*i+1])
		if high == 16 {
			return nil, &HexCharError{Pos: 2 * i, Char: s[2*i]}
		}
		if low == 16 {
			return nil, &HexCharError{Pos: 2*i + 1, Char: s[2*i+1]}
		}
		res[i] = high<<4 | low
	}
	return res, nil
}

// ReversedHex encodes data as uppercase hex with the LOW nibble first. This
// is a distinct external format, not the inverse of HexDecode's input
// ordering: HexDecode(ReversedHex(b)) does not return b. Consumers expecting
// the swapped order rely on it exactly as is.
func ReversedHex(data []byte) string {
	dst := make([]byte, 2*len(data))
	for i, c := range data {
		dst[2*i] = upperHex[c&0x0F]
		dst[2*i+1] = upperHex[c>>4]
	}
	return string(dst)
}
