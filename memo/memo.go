// Package memo adds opt-in decode memoization on top of bytescape
// transcoders. The codecs themselves stay pure; a Decoder is a wrapper that
// remembers decode results in a pluggable byte store keyed by a hash of the
// encoded input.
//
// Providers MUST be byte-for-byte transparent: Get must return exactly the
// same []byte previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation). The keyspace "memo:<ns>:" is owned
// by this package; foreign writes under it fail envelope validation and are
// deleted.
package memo

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/unkn0wn-root/bytescape"
	"github.com/unkn0wn-root/bytescape/internal/wire"
)

// Provider is a minimal byte store with TTLs. Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL. May ignore cost if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key (best-effort).
	Del(ctx context.Context, key string) error

	// Close releases resources.
	Close(ctx context.Context) error
}

// Options tune a Decoder. Namespace, Provider and Trans are required; the
// rest have zero-value defaults.
type Options struct {
	// Required
	Namespace string // logical namespace so decoders sharing a store never collide. e.g. "zero", "url"
	Provider  Provider
	Trans     bytescape.Transcoder

	ID     byte             // envelope id separating entries of different transcoders; default 0
	TTL    time.Duration    // 0 => 10m
	Logger bytescape.Logger // if nil, NopLogger is used
}

// Decoder memoizes Transcoder.Decode results in a Provider. Encode passes
// through to the wrapped transcoder. Provider failures degrade to plain
// decoding: the Decoder never fails where the underlying transcoder would
// not.
//
// Payloads returned on a hit are zero-copy slices into the provider's value;
// callers that mutate results must copy first.
type Decoder struct {
	ns  string
	pr  Provider
	tr  bytescape.Transcoder
	id  byte
	ttl time.Duration
	log bytescape.Logger
}

func New(opts Options) (*Decoder, error) {
	if opts.Namespace == "" || opts.Provider == nil || opts.Trans == nil {
		return nil, errors.New("memo: namespace, provider and transcoder are required")
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = 10 * time.Minute
	}
	log := opts.Logger
	if log == nil {
		log = bytescape.NopLogger{}
	}
	return &Decoder{
		ns:  opts.Namespace,
		pr:  opts.Provider,
		tr:  opts.Trans,
		id:  opts.ID,
		ttl: ttl,
		log: log,
	}, nil
}

// key derives the storage key from the encoded input: a short SHA-256 under
// the owned "memo:" prefix.
func (d *Decoder) key(src []byte) string {
	sum := sha256.Sum256(src)
	return fmt.Sprintf("memo:%s:%x", d.ns, sum[:8])
}

func (d *Decoder) Encode(src []byte) []byte { return d.tr.Encode(src) }

// Decode consults the provider first. Hits are validated through the wire
// envelope; corrupt or foreign entries are deleted and recomputed
// (self-heal). Misses decode through the wrapped transcoder and store the
// result best-effort.
func (d *Decoder) Decode(ctx context.Context, src []byte) ([]byte, error) {
	k := d.key(src)

	b, ok, err := d.pr.Get(ctx, k)
	switch {
	case err != nil:
		d.log.Warn("memo get failed", bytescape.Fields{"key": k, "err": err.Error()})
	case ok:
		id, payload, werr := wire.Decode(b)
		if werr == nil && id == d.id {
			return payload, nil
		}
		// self-heal: drop the entry and fall through to recompute
		_ = d.pr.Del(ctx, k)
		d.log.Warn("memo self-heal", bytescape.Fields{"key": k})
	}

	out, err := d.tr.Decode(src)
	if err != nil {
		return nil, err
	}

	enc := wire.Encode(d.id, out)
	if ok, err := d.pr.Set(ctx, k, enc, int64(len(enc)), d.ttl); err != nil {
		d.log.Warn("memo set failed", bytescape.Fields{"key": k, "err": err.Error()})
	} else if !ok {
		d.log.Debug("memo set rejected", bytescape.Fields{"key": k})
	}
	return out, nil
}

// Close releases the underlying provider.
func (d *Decoder) Close(ctx context.Context) error { return d.pr.Close(ctx) }
