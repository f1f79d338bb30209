package bytescape

// Logged wraps a transcoder with debug-level size logging and error-level
// failure logging. Name tags the log lines so several wrapped codecs can
// share one logger.
type Logged struct {
	Inner Transcoder
	Log   Logger
	Name  string
}

func (l Logged) logger() Logger {
	if l.Log == nil {
		return NopLogger{}
	}
	return l.Log
}

func (l Logged) Encode(src []byte) []byte {
	out := l.Inner.Encode(src)
	l.logger().Debug("encode", Fields{"codec": l.Name, "in": len(src), "out": len(out)})
	return out
}

func (l Logged) Decode(src []byte) ([]byte, error) {
	out, err := l.Inner.Decode(src)
	if err != nil {
		l.logger().Error("decode failed", Fields{"codec": l.Name, "in": len(src), "err": err.Error()})
		return nil, err
	}
	l.logger().Debug("decode", Fields{"codec": l.Name, "in": len(src), "out": len(out)})
	return out, nil
}
