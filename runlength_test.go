package bytescape

import (
	"bytes"
	"testing"
)

func TestZeroEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0},
		{1, 2, 3},
		{0, 0, 0, 7, 0},
		bytes.Repeat([]byte{0}, 250),
		bytes.Repeat([]byte{0}, 251),
		append(bytes.Repeat([]byte{0}, 500), 9),
	}
	for _, in := range cases {
		enc := ZeroEncode(in)
		got := ZeroDecode(enc)
		if !bytes.Equal(got, in) {
			t.Fatalf("round trip mismatch for len=%d: got len=%d", len(in), len(got))
		}
	}
}

func TestZeroEncodeSplitsLongRuns(t *testing.T) {
	in := bytes.Repeat([]byte{0}, 300)
	enc := ZeroEncode(in)
	want := []byte{0, 250, 0, 50}
	if !bytes.Equal(enc, want) {
		t.Fatalf("encoded form = %x, want %x", enc, want)
	}
	if got := ZeroDecode(enc); len(got) != 300 || !bytes.Equal(got, in) {
		t.Fatalf("decode of split runs: got len=%d", len(got))
	}
}

func TestZeroEncodeLiterals(t *testing.T) {
	// non-sentinel bytes carry no count byte
	if enc := ZeroEncode([]byte{1, 0, 2}); !bytes.Equal(enc, []byte{1, 0, 1, 2}) {
		t.Fatalf("enc = %x", enc)
	}
}

func TestZeroDecodeTrailingSentinel(t *testing.T) {
	// a sentinel with no room for a count byte is a literal
	if got := ZeroDecode([]byte{7, 0}); !bytes.Equal(got, []byte{7, 0}) {
		t.Fatalf("got %x", got)
	}
	// an explicit zero count expands to nothing
	if got := ZeroDecode([]byte{0, 0, 5}); !bytes.Equal(got, []byte{5}) {
		t.Fatalf("got %x", got)
	}
}

func TestZeroOneRunsNeverMerge(t *testing.T) {
	in := []byte{0x00, 0x00, 0xFF, 0xFF, 0xFF}
	enc := ZeroOneEncode(in)
	want := []byte{0x00, 2, 0xFF, 3}
	if !bytes.Equal(enc, want) {
		t.Fatalf("enc = %x, want %x", enc, want)
	}
	if got := ZeroOneDecode(enc); !bytes.Equal(got, in) {
		t.Fatalf("round trip: got %x", got)
	}
}

func TestZeroOneEncodeDecodeRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		{0xFF},
		{0x00, 0xFF, 0x00, 0xFF},
		bytes.Repeat([]byte{0xFF}, 300),
		append(bytes.Repeat([]byte{0x00}, 260), bytes.Repeat([]byte{0xFF}, 260)...),
		{1, 2, 0x00, 0x00, 3, 0xFF, 4},
	}
	for _, in := range cases {
		if got := ZeroOneDecode(ZeroOneEncode(in)); !bytes.Equal(got, in) {
			t.Fatalf("round trip mismatch for %x", in)
		}
	}
}

func TestZeroOneDecodeTrailingSentinel(t *testing.T) {
	if got := ZeroOneDecode([]byte{0xFF}); !bytes.Equal(got, []byte{0xFF}) {
		t.Fatalf("got %x", got)
	}
}
