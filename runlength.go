package bytescape

// maxRunLength caps the count byte of the escaped run format. Longer runs are
// split into multiple (sentinel, count) pairs.
const maxRunLength = 250

// runEncode writes every input byte to the output; a byte matched by
// isSentinel is followed by the length of the run of identical bytes starting
// there (1..maxRunLength) and the scan jumps past the counted run. A run
// never mixes values: it extends only while bytes equal the one that started
// it, even when the predicate matches several values.
func runEncode(src []byte, isSentinel func(byte) bool) []byte {
	res := make([]byte, 0, len(src))
	for i, n := 0, len(src); i < n; i++ {
		res = append(res, src[i])
		if isSentinel(src[i]) {
			cnt := 1
			for cnt < maxRunLength && i+cnt < n && src[i+cnt] == src[i] {
				cnt++
			}
			res = append(res, byte(cnt))
			i += cnt - 1
		}
	}
	return res
}

// runDecode expands (sentinel, count) pairs back into runs. A sentinel in the
// final position, with no room left for its count byte, is emitted once as a
// literal.
func runDecode(src []byte, isSentinel func(byte) bool) []byte {
	res := make([]byte, 0, len(src))
	for i, n := 0, len(src); i < n; i++ {
		if i+1 < n && isSentinel(src[i]) {
			for j := int(src[i+1]); j > 0; j-- {
				res = append(res, src[i])
			}
			i++
			continue
		}
		res = append(res, src[i])
	}
	return res
}

func isZero(c byte) bool      { return c == 0 }
func isZeroOrOne(c byte) bool { return c == 0 || c == 0xFF }

// ZeroEncode run-length escapes runs of zero bytes. Suits streams dominated
// by zeros, e.g. sparse bitmaps.
func ZeroEncode(data []byte) []byte { return runEncode(data, isZero) }

// ZeroDecode reverses ZeroEncode.
func ZeroDecode(data []byte) []byte { return runDecode(data, isZero) }

// ZeroOneEncode run-length escapes runs of 0x00 bytes and runs of 0xFF
// bytes. The two values never share a run.
func ZeroOneEncode(data []byte) []byte { return runEncode(data, isZeroOrOne) }

// ZeroOneDecode reverses ZeroOneEncode.
func ZeroOneDecode(data []byte) []byte { return runDecode(data, isZeroOrOne) }
