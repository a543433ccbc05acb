package uvarint

import "io"

// Decoder decodes uvarints. The zero value accepts every terminated encoding
// of at most MaxLen64 bytes. Bits of a 10th byte beyond bit 63 are dropped and
// non-minimal encodings decode to their numeric value.
type Decoder struct {
	// Strict rejects a 10th byte whose payload does not fit in bit 63
	// (ErrOverflow).
	Strict bool
	// Canonical rejects encodings with a trailing zero group, such as
	// 80 00 for 0 (ErrNonCanonical).
	Canonical bool
}

// Read decodes one value from r using the zero Decoder.
func Read(r io.Reader) (uint64, error) {
	return Decoder{}.Read(r)
}

// Decode decodes one value from the start of b using the zero Decoder.
func Decode(b []byte) (uint64, int, error) {
	return Decoder{}.Decode(b)
}

// Read reads one value from r, one byte at a time, and stops at the first
// byte without the continuation bit. Nothing past that byte is consumed.
//
// If r implements io.ByteReader it is used directly; otherwise single-byte
// reads are issued on r. io.EOF before the first byte is returned as is;
// io.EOF after it becomes io.ErrUnexpectedEOF. Other read errors are returned
// unchanged.
func (d Decoder) Read(r io.Reader) (uint64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	var x uint64
	for i := 0; i < MaxLen64; i++ {
		b, err := br.ReadByte()
		if err != nil {
			if i > 0 && err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, err
		}
		var done bool
		x, done, err = d.fold(x, i, b)
		if done {
			return x, err
		}
	}
	return 0, ErrTooLong
}

// Decode decodes one value from the start of b and returns it with the number
// of bytes consumed. On error n is 0. An empty b yields io.EOF and a b that
// ends inside an encoding yields io.ErrUnexpectedEOF.
func (d Decoder) Decode(b []byte) (v uint64, n int, err error) {
	var x uint64
	for i := 0; i < MaxLen64; i++ {
		if i == len(b) {
			if i == 0 {
				return 0, 0, io.EOF
			}
			return 0, 0, io.ErrUnexpectedEOF
		}
		var done bool
		x, done, err = d.fold(x, i, b[i])
		if done {
			if err != nil {
				return 0, 0, err
			}
			return x, i + 1, nil
		}
	}
	return 0, 0, ErrTooLong
}

// fold ORs the payload of b, the i-th byte of an encoding, into x and reports
// whether b is the last byte. i < MaxLen64, so the shift is at most 63.
func (d Decoder) fold(x uint64, i int, b byte) (uint64, bool, error) {
	if b&contBit != 0 {
		return x | uint64(b&payloadMask)<<(7*i), false, nil
	}
	if d.Strict && i == MaxLen64-1 && b > 1 {
		return 0, true, ErrOverflow
	}
	if d.Canonical && i > 0 && b == 0 {
		return 0, true, ErrNonCanonical
	}
	return x | uint64(b)<<(7*i), true, nil
}

type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (br *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		return 0, err
	}
	return br.buf[0], nil
}
