// Package pack layers value serialization on top of the bytescape byte
// transcoders. A Codec turns values into bytes; Escaped composes a Codec with
// a Transcoder so serialized payloads can cross the same text-only or
// length-sensitive boundaries the raw codecs target.
package pack

// Codec encodes/decodes values V to []byte for transport or storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
