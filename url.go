package bytescape

import "fmt"

// isURLChar reports whether c passes through percent encoding unescaped.
// The unreserved set is A-Z a-z 0-9 '-' '.' '_' '~'.
func isURLChar(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
		c == '-' || c == '.' || c == '_' || c == '~'
}

// URLEncode percent-escapes every byte outside the unreserved set as %XX with
// uppercase hex digits. The exact output length is computed up front; when it
// equals the input length nothing needs escaping and the input is returned
// as a string without building a second buffer.
func URLEncode(data []byte) string {
	length := 3 * len(data)
	for _, c := range data {
		if isURLChar(c) {
			length -= 2
		}
	}
	if length == len(data) {
		return string(data)
	}
	res := make([]byte, 0, length)
	for _, c := range data {
		if isURLChar(c) {
			res = append(res, c)
		} else {
			res = append(res, '%', upperHex[c>>4], upperHex[c&0x0F])
		}
	}
	if len(res) != length {
		panic(fmt.Sprintf("bytescape: url encode produced %d bytes, computed %d", len(res), length))
	}
	return string(res)
}

// URLDecodeInto decodes percent escapes from src into dst and returns the
// number of bytes written, always <= len(src). A '%' followed by two hex
// digits strictly before the end of src decodes to one byte; a truncated or
// malformed escape is copied through literally, so decoding never fails.
// When plusAsSpace is set a literal '+' decodes to ' '.
//
// dst must be at least len(src) bytes. dst and src may alias: the write index
// never outruns the read index.
func URLDecodeInto(dst, src []byte, plusAsSpace bool) int {
	if len(dst) < len(src) {
		panic("bytescape: url decode destination shorter than source")
	}
	to := 0
	for i, n := 0, len(src); i < n; i++ {
		if src[i] == '%' && i+2 < n {
			high := hexNibble(src[i+1])
			low := hexNibble(src[i+2])
			if high < 16 && low < 16 {
				dst[to] = high<<4 | low
				to++
				i += 2
				continue
			}
		}
		if plusAsSpace && src[i] == '+' {
			dst[to] = ' '
		} else {
			dst[to] = src[i]
		}
		to++
	}
	return to
}

// URLDecode is the owned-result variant of URLDecodeInto.
func URLDecode(src []byte, plusAsSpace bool) []byte {
	dst := make([]byte, len(src))
	return dst[:URLDecodeInto(dst, src, plusAsSpace)]
}

// URLDecodeInPlace decodes buf onto itself and returns buf truncated to the
// decoded length.
func URLDecodeInPlace(buf []byte, plusAsSpace bool) []byte {
	return buf[:URLDecodeInto(buf, buf, plusAsSpace)]
}
