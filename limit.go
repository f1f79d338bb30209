package bytescape

import "fmt"

// Limit wraps another transcoder to enforce a maximum allowed input size at
// Decode time. Encode is forwarded to Inner unchanged. If MaxDecode <= 0,
// size limiting is disabled.
//
// Typical use: reject oversized inputs from an untrusted source before the
// decoder allocates for them.
type Limit struct {
	// Inner is the underlying transcoder being wrapped. It must be set.
	Inner Transcoder
	// MaxDecode is the maximum permitted length (in bytes) of the input for
	// Decode. If the input is longer, Decode returns an error without
	// invoking Inner.
	MaxDecode int
}

func (l Limit) Encode(src []byte) []byte { return l.Inner.Encode(src) }
func (l Limit) Decode(src []byte) ([]byte, error) {
	if l.MaxDecode > 0 && len(src) > l.MaxDecode {
		return nil, fmt.Errorf("input too large: %d > %d", len(src), l.MaxDecode)
	}
	return l.Inner.Decode(src)
}
