package delim

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/unkn0wn-root/uvarint"
	"github.com/unkn0wn-root/uvarint/codec"
)

type event struct {
	Seq  uint64 `json:"seq" msgpack:"seq" cbor:"1,keyasint"`
	Name string `json:"name" msgpack:"name" cbor:"2,keyasint"`
}

func roundTrip[V comparable](t *testing.T, c codec.Codec[V], in []V) {
	t.Helper()
	var buf bytes.Buffer
	w := NewWriter(&buf, c)
	for _, v := range in {
		if err := w.Write(v); err != nil {
			t.Fatalf("Write(%v): %v", v, err)
		}
	}
	r := NewReader(&buf, c, 0)
	for i, want := range in {
		got, err := r.Read()
		if err != nil {
			t.Fatalf("Read #%d: %v", i, err)
		}
		if got != want {
			t.Fatalf("Read #%d = %v want %v", i, got, want)
		}
	}
	if _, err := r.Read(); err != io.EOF {
		t.Fatalf("expected io.EOF after last frame, got %v", err)
	}
}

func TestRoundTripCodecs(t *testing.T) {
	events := []event{{1, "open"}, {2, ""}, {math.MaxUint64, "close"}}

	t.Run("uvarint", func(t *testing.T) {
		roundTrip[uint64](t, codec.Uvarint{}, []uint64{0, 128, math.MaxUint64})
	})
	t.Run("string", func(t *testing.T) {
		roundTrip[string](t, codec.String{}, []string{"", "a", string(bytes.Repeat([]byte("x"), 300))})
	})
	t.Run("json", func(t *testing.T) { roundTrip[event](t, codec.JSON[event]{}, events) })
	t.Run("msgpack", func(t *testing.T) { roundTrip[event](t, codec.Msgpack[event]{}, events) })
	t.Run("cbor", func(t *testing.T) { roundTrip[event](t, codec.MustCBOR[event](true), events) })
}

func TestFrameLayout(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter[[]byte](&buf, codec.Bytes{})
	payload := bytes.Repeat([]byte{0xAB}, 200)
	if err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Write(nil); err != nil {
		t.Fatal(err)
	}
	want := append(uvarint.Encode(200), payload...)
	want = append(want, 0x00)
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("layout mismatch:\n got %x\nwant %x", buf.Bytes(), want)
	}
}

func TestProtodelimInterop(t *testing.T) {
	c := codec.NewProtobuf(func() *wrapperspb.UInt64Value { return new(wrapperspb.UInt64Value) })
	values := []uint64{0, 173, math.MaxUint64}

	// ours -> protodelim
	var buf bytes.Buffer
	w := NewWriter[*wrapperspb.UInt64Value](&buf, c)
	for _, v := range values {
		if err := w.Write(wrapperspb.UInt64(v)); err != nil {
			t.Fatal(err)
		}
	}
	br := bytes.NewReader(buf.Bytes())
	for _, v := range values {
		m := new(wrapperspb.UInt64Value)
		if err := protodelim.UnmarshalFrom(br, m); err != nil {
			t.Fatalf("protodelim.UnmarshalFrom: %v", err)
		}
		if m.GetValue() != v {
			t.Fatalf("protodelim read %d want %d", m.GetValue(), v)
		}
	}

	// protodelim -> ours
	buf.Reset()
	for _, v := range values {
		if _, err := protodelim.MarshalTo(&buf, wrapperspb.UInt64(v)); err != nil {
			t.Fatal(err)
		}
	}
	r := NewReader[*wrapperspb.UInt64Value](&buf, c, 0)
	for _, v := range values {
		m, err := r.Read()
		if err != nil {
			t.Fatal(err)
		}
		if !proto.Equal(m, wrapperspb.UInt64(v)) {
			t.Fatalf("read %v want %d", m, v)
		}
	}
}

func TestReaderErrors(t *testing.T) {
	t.Run("frame too large", func(t *testing.T) {
		in := append(uvarint.Encode(9), bytes.Repeat([]byte("x"), 9)...)
		r := NewReader[string](bytes.NewReader(in), codec.String{}, 8)
		if _, err := r.Read(); !errors.Is(err, ErrFrameTooLarge) {
			t.Fatalf("expected ErrFrameTooLarge, got %v", err)
		}
	})

	t.Run("cut inside payload", func(t *testing.T) {
		in := append(uvarint.Encode(5), "abc"...)
		r := NewReader[string](bytes.NewReader(in), codec.String{}, 0)
		if _, err := r.Read(); err != io.ErrUnexpectedEOF {
			t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
		}
	})

	t.Run("cut inside length", func(t *testing.T) {
		r := NewReader[string](bytes.NewReader([]byte{0x80}), codec.String{}, 0)
		if _, err := r.Read(); err != io.ErrUnexpectedEOF {
			t.Fatalf("expected io.ErrUnexpectedEOF, got %v", err)
		}
	})

	t.Run("length too long", func(t *testing.T) {
		r := NewReader[string](bytes.NewReader(bytes.Repeat([]byte{0xFF}, 11)), codec.String{}, 0)
		if _, err := r.Read(); !errors.Is(err, uvarint.ErrTooLong) {
			t.Fatalf("expected ErrTooLong, got %v", err)
		}
	})

	t.Run("payload decode", func(t *testing.T) {
		in := append(uvarint.Encode(2), 0x80, 0x80)
		r := NewReader[uint64](bytes.NewReader(in), codec.Uvarint{}, 0)
		if _, err := r.Read(); !errors.Is(err, io.ErrUnexpectedEOF) {
			t.Fatalf("expected wrapped io.ErrUnexpectedEOF, got %v", err)
		}
	})
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestWriterErrors(t *testing.T) {
	boom := errors.New("broken pipe")
	w := NewWriter[string](failWriter{boom}, codec.String{})
	if err := w.Write("x"); err != boom {
		t.Fatalf("expected writer error, got %v", err)
	}

	lw := NewWriter[string](io.Discard, codec.Limit[string]{Inner: codec.String{}, MaxEncode: 2})
	if err := lw.Write("abc"); !errors.Is(err, codec.ErrPayloadTooLarge) {
		t.Fatalf("expected ErrPayloadTooLarge, got %v", err)
	}
}
