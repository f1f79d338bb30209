// Package bytescape implements a family of small, reversible byte-stream
// transcoders for moving raw binary data across text-only or length-sensitive
// boundaries:
//
//   - hex: lowercase high-nibble-first encode/decode, plus an uppercase
//     low-nibble-first variant (ReversedHex) for consumers that expect that
//     byte order.
//   - percent ("URL") escaping with a permissive decoder that never fails:
//     malformed escapes pass through literally.
//   - run-length escaping for streams dominated by zero bytes (ZeroEncode)
//     or by 0x00/0xFF bytes (ZeroOneEncode), with runs capped at 250.
//
// Every codec is a pure function over one in-memory buffer: no state, no I/O,
// safe to call concurrently on disjoint inputs. The Transcoder interface and
// the Chain, Limit and Logged wrappers compose codecs. Subpackage pack layers
// value serialization (CBOR, msgpack, JSON, protobuf) on top of the byte
// transcoders; subpackage memo adds opt-in decode memoization over pluggable
// byte stores.
package bytescape
