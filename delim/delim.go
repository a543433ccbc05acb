// Package delim reads and writes streams of uvarint length-prefixed frames:
//
//	frame := uvarint(len(payload)) payload
//
// Payloads are produced and consumed by a codec.Codec. With codec.Protobuf
// the layout matches protodelim.
package delim

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/unkn0wn-root/uvarint"
	"github.com/unkn0wn-root/uvarint/codec"
)

// DefaultMaxFrame bounds payload length when NewReader is given maxFrame <= 0.
const DefaultMaxFrame = 4 << 20

var ErrFrameTooLarge = errors.New("delim: frame too large")

// Writer writes one frame per value. It does not buffer; wrap w in a
// bufio.Writer and flush it yourself when frames are small.
type Writer[V any] struct {
	w     io.Writer
	codec codec.Codec[V]
	buf   []byte
}

func NewWriter[V any](w io.Writer, c codec.Codec[V]) *Writer[V] {
	return &Writer[V]{w: w, codec: c}
}

// Write encodes v and writes its frame with a single call to the underlying
// writer.
func (w *Writer[V]) Write(v V) error {
	payload, err := w.codec.Encode(v)
	if err != nil {
		return fmt.Errorf("delim: encode frame: %w", err)
	}
	w.buf = uvarint.Append(w.buf[:0], uint64(len(payload)))
	w.buf = append(w.buf, payload...)
	n, err := w.w.Write(w.buf)
	if err != nil {
		return err
	}
	if n != len(w.buf) {
		return io.ErrShortWrite
	}
	return nil
}

// Reader reads frames written by Writer.
type Reader[V any] struct {
	br       *bufio.Reader
	codec    codec.Codec[V]
	maxFrame int
	dec      uvarint.Decoder
}

// NewReader returns a Reader over r. If r is not already a *bufio.Reader it is
// wrapped in one, so the Reader may consume bytes past the last frame it
// returned.
func NewReader[V any](r io.Reader, c codec.Codec[V], maxFrame int) *Reader[V] {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	if maxFrame <= 0 {
		maxFrame = DefaultMaxFrame
	}
	return &Reader[V]{br: br, codec: c, maxFrame: maxFrame, dec: uvarint.Decoder{Strict: true}}
}

// Read returns the next value. It returns io.EOF only when the stream ends
// exactly on a frame boundary; a stream cut inside a frame yields
// io.ErrUnexpectedEOF.
func (r *Reader[V]) Read() (V, error) {
	var zero V
	n, err := r.dec.Read(r.br)
	if err != nil {
		return zero, err
	}
	if n > uint64(r.maxFrame) {
		return zero, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, n, r.maxFrame)
	}
	buf := make([]byte, int(n))
	if _, err := io.ReadFull(r.br, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return zero, err
	}
	v, err := r.codec.Decode(buf)
	if err != nil {
		return zero, fmt.Errorf("delim: decode frame: %w", err)
	}
	return v, nil
}
