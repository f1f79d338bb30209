package bytescape

// Transcoder is a reversible []byte -> []byte transform. Encode never fails;
// Decode reports malformed input where the format can express it.
type Transcoder interface {
	Encode(src []byte) []byte
	Decode(src []byte) ([]byte, error)
}

// Hex transcodes through the lowercase hex format of HexEncode/HexDecode.
type Hex struct{}

func (Hex) Encode(src []byte) []byte          { return []byte(HexEncode(src)) }
func (Hex) Decode(src []byte) ([]byte, error) { return HexDecode(string(src)) }

// URL transcodes through the percent-escape format. Decode is total:
// malformed escapes pass through literally.
type URL struct {
	PlusAsSpace bool
}

func (URL) Encode(src []byte) []byte            { return []byte(URLEncode(src)) }
func (u URL) Decode(src []byte) ([]byte, error) { return URLDecode(src, u.PlusAsSpace), nil }

// Zero transcodes through the single-sentinel run format of ZeroEncode.
type Zero struct{}

func (Zero) Encode(src []byte) []byte          { return ZeroEncode(src) }
func (Zero) Decode(src []byte) ([]byte, error) { return ZeroDecode(src), nil }

// ZeroOne transcodes through the dual-sentinel run format of ZeroOneEncode.
type ZeroOne struct{}

func (ZeroOne) Encode(src []byte) []byte          { return ZeroOneEncode(src) }
func (ZeroOne) Decode(src []byte) ([]byte, error) { return ZeroOneDecode(src), nil }

// Chain composes transcoders: Encode applies them first to last, Decode last
// to first. An empty chain is the identity.
type Chain []Transcoder

func (c Chain) Encode(src []byte) []byte {
	for _, t := range c {
		src = t.Encode(src)
	}
	return src
}

func (c Chain) Decode(src []byte) ([]byte, error) {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		src, err = c[i].Decode(src)
		if err != nil {
			return nil, err
		}
	}
	return src, nil
}
