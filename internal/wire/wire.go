package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("bytescape: corrupt memo entry")
	magic4     = [...]byte{'E', 'S', 'C', 'B'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | id(1) | plen(u32 be) | payload(plen)
//
// id names the transcoder that produced payload, so entries written by one
// decoder are never replayed through another.
func Encode(id byte, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 1 + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(id)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// Decode validates the envelope and returns the id and a zero-copy payload
// slice into b. Bad magic, wrong version, truncation and trailing bytes all
// return ErrCorrupt.
func Decode(b []byte) (id byte, payload []byte, err error) {
	const hdr = 4 + 1 + 1 + 4
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return 0, nil, ErrCorrupt
	}
	id = b[5]
	plen := int(binary.BigEndian.Uint32(b[6:hdr]))
	if plen < 0 || plen != len(b)-hdr {
		return 0, nil, ErrCorrupt
	}
	return id, b[hdr:], nil
}
