package uvarint

import "errors"

var (
	// ErrTooLong is returned when MaxLen64 bytes were read and every one of
	// them still had the continuation bit set.
	ErrTooLong = errors.New("uvarint: encoding longer than 10 bytes")

	// ErrOverflow is returned by a Strict decoder when the 10th byte carries
	// bits beyond bit 63.
	ErrOverflow = errors.New("uvarint: value overflows 64 bits")

	// ErrNonCanonical is returned by a Canonical decoder for encodings that
	// end with a zero continuation group.
	ErrNonCanonical = errors.New("uvarint: non-minimal encoding")
)
