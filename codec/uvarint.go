package codec

import (
	"fmt"

	"github.com/unkn0wn-root/uvarint"
)

var strict = uvarint.Decoder{Strict: true}

// Uvarint is a Codec for a single uint64. The zero value is ready to use.
// Decode rejects overflowing 10th bytes and payloads with bytes left over.
type Uvarint struct{}

var _ Codec[uint64] = Uvarint{}

func (Uvarint) Encode(v uint64) ([]byte, error) { return uvarint.Encode(v), nil }

func (Uvarint) Decode(b []byte) (uint64, error) {
	v, n, err := strict.Decode(b)
	if err != nil {
		return 0, fmt.Errorf("codec: uvarint: %w", err)
	}
	if n != len(b) {
		return 0, ErrTrailingBytes
	}
	return v, nil
}

// Uvarints packs a []uint64 as back-to-back uvarints with no count prefix.
// An empty payload decodes to a nil slice.
type Uvarints struct{}

var _ Codec[[]uint64] = Uvarints{}

func (Uvarints) Encode(vs []uint64) ([]byte, error) {
	size := 0
	for _, v := range vs {
		size += uvarint.Len(v)
	}
	out := make([]byte, 0, size)
	for _, v := range vs {
		out = uvarint.Append(out, v)
	}
	return out, nil
}

func (Uvarints) Decode(b []byte) ([]uint64, error) {
	var out []uint64
	for off := 0; off < len(b); {
		v, n, err := strict.Decode(b[off:])
		if err != nil {
			return nil, fmt.Errorf("codec: uvarint at offset %d: %w", off, err)
		}
		out = append(out, v)
		off += n
	}
	return out, nil
}
