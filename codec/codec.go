// Package codec converts values to and from byte payloads.
//
// Uvarint and Uvarints carry uint64 values in the uvarint encoding. The
// remaining codecs (JSON, Msgpack, CBOR, Protobuf, Bytes, String) are payload
// codecs for uvarint-delimited frames (see package delim).
package codec

import "errors"

// ErrTrailingBytes is returned when a payload holds more bytes than the value
// it encodes.
var ErrTrailingBytes = errors.New("codec: trailing bytes after value")

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
