package memo

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/unkn0wn-root/bytescape"
)

type memEntry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

type memProvider struct {
	m    map[string]memEntry
	gets int
	sets int
	dels int
	fail bool // force Get/Set errors
}

var _ Provider = (*memProvider)(nil)

func newMemProvider() *memProvider { return &memProvider{m: make(map[string]memEntry)} }

func (p *memProvider) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.gets++
	if p.fail {
		return nil, false, errors.New("store down")
	}
	e, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		delete(p.m, key)
		return nil, false, nil
	}
	return e.v, true, nil
}

func (p *memProvider) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	p.sets++
	if p.fail {
		return false, errors.New("store down")
	}
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	p.m[key] = memEntry{v: value, exp: exp}
	return true, nil
}

func (p *memProvider) Del(_ context.Context, key string) error { p.dels++; delete(p.m, key); return nil }
func (p *memProvider) Close(_ context.Context) error           { return nil }

func newTestDecoder(t *testing.T, mp Provider, tr bytescape.Transcoder, id byte) *Decoder {
	t.Helper()
	d, err := New(Options{
		Namespace: "test",
		Provider:  mp,
		Trans:     tr,
		ID:        id,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return d
}

func TestNewValidatesOptions(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatalf("expected error on empty options")
	}
	if _, err := New(Options{Namespace: "x", Provider: newMemProvider()}); err == nil {
		t.Fatalf("expected error on missing transcoder")
	}
}

func TestDecodeMissThenHit(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	d := newTestDecoder(t, mp, bytescape.Zero{}, 1)
	defer d.Close(ctx)

	raw := append(bytes.Repeat([]byte{0}, 64), 'x')
	enc := d.Encode(raw)

	got, err := d.Decode(ctx, enc)
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("miss decode: got %x err=%v", got, err)
	}
	if mp.sets != 1 {
		t.Fatalf("expected one store write, got %d", mp.sets)
	}

	got, err = d.Decode(ctx, enc)
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("hit decode: got %x err=%v", got, err)
	}
	// second decode was served from the store, no second write
	if mp.sets != 1 || mp.gets != 2 {
		t.Fatalf("expected hit: sets=%d gets=%d", mp.sets, mp.gets)
	}
}

func TestDecodeSelfHealsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	d := newTestDecoder(t, mp, bytescape.Zero{}, 1)

	enc := d.Encode([]byte{0, 0, 7})
	// poison the key with a foreign write
	mp.m[d.key(enc)] = memEntry{v: []byte("junk")}

	got, err := d.Decode(ctx, enc)
	if err != nil || !bytes.Equal(got, []byte{0, 0, 7}) {
		t.Fatalf("got %x err=%v", got, err)
	}
	if mp.dels != 1 {
		t.Fatalf("expected corrupt entry to be deleted, dels=%d", mp.dels)
	}
	// recomputed result was stored back
	if mp.sets != 1 {
		t.Fatalf("expected recompute to store, sets=%d", mp.sets)
	}
}

func TestDecodeRejectsForeignID(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()

	zero := newTestDecoder(t, mp, bytescape.Zero{}, 1)
	// same namespace and store, different transcoder id
	one := newTestDecoder(t, mp, bytescape.ZeroOne{}, 2)

	enc := zero.Encode([]byte{0, 0})
	if _, err := zero.Decode(ctx, enc); err != nil {
		t.Fatalf("seed decode: %v", err)
	}
	// an entry written under id 1 must not be replayed for id 2
	if _, err := one.Decode(ctx, enc); err != nil {
		t.Fatalf("foreign-id decode: %v", err)
	}
	if mp.dels != 1 {
		t.Fatalf("expected foreign entry dropped, dels=%d", mp.dels)
	}
}

func TestDecodeDegradesOnProviderErrors(t *testing.T) {
	ctx := context.Background()
	mp := newMemProvider()
	mp.fail = true
	d := newTestDecoder(t, mp, bytescape.Zero{}, 1)

	raw := []byte{0, 0, 0, 9}
	got, err := d.Decode(ctx, d.Encode(raw))
	if err != nil || !bytes.Equal(got, raw) {
		t.Fatalf("expected plain decode despite store errors: %x %v", got, err)
	}
}

func TestDecodePropagatesTranscoderError(t *testing.T) {
	ctx := context.Background()
	d := newTestDecoder(t, newMemProvider(), bytescape.Hex{}, 3)
	if _, err := d.Decode(ctx, []byte("abc")); err == nil {
		t.Fatalf("expected odd-length hex error")
	}
}
