package local

import (
	"context"
	"testing"
	"time"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestProvider(t *testing.T, cfg Config) (*Provider, *clock) {
	t.Helper()
	p := New(cfg)
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	p.now = clk.now
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p, clk
}

func TestGetSetDel(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t, Config{})

	if _, ok, err := p.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}
	buf := []byte{0x01, 0x01, 0xAD, 0x01}
	if ok, err := p.Set(ctx, "k", buf, 1, 0); !ok || err != nil {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	buf[2] = 0 // caller reuses its buffer
	got, ok, err := p.Get(ctx, "k")
	if !ok || err != nil || got[2] != 0xAD {
		t.Fatalf("Get = %x, %v, %v", got, ok, err)
	}
	if err := p.Del(ctx, "k"); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := p.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after Del")
	}
}

func TestTTLExpiresOnReadAndSweep(t *testing.T) {
	ctx := context.Background()
	p, clk := newTestProvider(t, Config{})

	_, _ = p.Set(ctx, "short", []byte{1}, 1, time.Second)
	_, _ = p.Set(ctx, "other", []byte{1}, 1, time.Second)
	_, _ = p.Set(ctx, "forever", []byte{2}, 1, 0)

	clk.t = clk.t.Add(999 * time.Millisecond)
	if _, ok, _ := p.Get(ctx, "short"); !ok {
		t.Fatalf("expired too early")
	}

	clk.t = clk.t.Add(time.Millisecond)
	if _, ok, _ := p.Get(ctx, "short"); ok {
		t.Fatalf("expected expiry at ttl")
	}
	if p.Len() != 2 {
		t.Fatalf("expected expired entry removed on read, len=%d", p.Len())
	}

	p.Sweep()
	if p.Len() != 1 {
		t.Fatalf("expected only the no-TTL entry after sweep, len=%d", p.Len())
	}
	if _, ok, _ := p.Get(ctx, "forever"); !ok {
		t.Fatalf("no-TTL entry must survive")
	}
}

func TestMaxEntriesRejectsNewKeys(t *testing.T) {
	ctx := context.Background()
	p, _ := newTestProvider(t, Config{MaxEntries: 1})

	if ok, _ := p.Set(ctx, "a", []byte{1}, 1, 0); !ok {
		t.Fatalf("first Set should be accepted")
	}
	if ok, _ := p.Set(ctx, "b", []byte{1}, 1, 0); ok {
		t.Fatalf("Set over capacity should be rejected")
	}
	if ok, _ := p.Set(ctx, "a", []byte{2}, 1, 0); !ok {
		t.Fatalf("overwrite of existing key should be accepted")
	}
}

func TestCloseStopsSweeper(t *testing.T) {
	p := New(Config{SweepInterval: time.Millisecond})
	if err := p.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
	// second Close is a no-op
	if err := p.Close(context.Background()); err != nil {
		t.Fatal(err)
	}
}
