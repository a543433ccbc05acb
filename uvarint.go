package uvarint

import (
	"io"
	"math/bits"
)

const (
	// MaxLen64 is the maximum length of an encoded uint64.
	MaxLen64 = 10

	payloadMask = 0x7f
	contBit     = 0x80
)

// Len returns the number of bytes Encode(v) produces.
func Len(v uint64) int {
	// bits.Len64(0) == 0, and zero still takes one byte
	return 1 + (bits.Len64(v|1)-1)/7
}

// Append appends the encoding of v to dst and returns the extended slice.
func Append(dst []byte, v uint64) []byte {
	for v >= contBit {
		dst = append(dst, byte(v&payloadMask)|contBit)
		v >>= 7
	}
	return append(dst, byte(v))
}

// Encode returns the encoding of v in a new slice.
func Encode(v uint64) []byte {
	return Append(make([]byte, 0, Len(v)), v)
}

// Put encodes v into buf and returns the number of bytes written.
// buf must be at least Len(v) bytes long; Put panics otherwise.
func Put(buf []byte, v uint64) int {
	i := 0
	for v >= contBit {
		buf[i] = byte(v&payloadMask) | contBit
		v >>= 7
		i++
	}
	buf[i] = byte(v)
	return i + 1
}

// Write writes the encoding of v to w.
// Errors from w are returned unchanged; bytes already accepted by w are not
// taken back.
func Write(w io.Writer, v uint64) error {
	var buf [MaxLen64]byte
	n := Put(buf[:], v)
	m, err := w.Write(buf[:n])
	if err != nil {
		return err
	}
	if m != n {
		return io.ErrShortWrite
	}
	return nil
}
