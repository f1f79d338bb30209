package pack

import "github.com/unkn0wn-root/bytescape"

// Escaped composes a value codec with a byte transcoder: Encode serializes v
// and escapes the serialized bytes, Decode unescapes and deserializes.
// Pairing a compact serializer with bytescape.ZeroOne suits payloads
// dominated by zero or 0xFF bytes (sparse arrays, padded keys); pairing with
// bytescape.Hex or bytescape.URL armors payloads for text-only channels.
type Escaped[V any] struct {
	Codec Codec[V]
	Trans bytescape.Transcoder
}

func (e Escaped[V]) Encode(v V) ([]byte, error) {
	b, err := e.Codec.Encode(v)
	if err != nil {
		return nil, err
	}
	return e.Trans.Encode(b), nil
}

func (e Escaped[V]) Decode(b []byte) (V, error) {
	raw, err := e.Trans.Decode(b)
	if err != nil {
		var zero V
		return zero, err
	}
	return e.Codec.Decode(raw)
}
