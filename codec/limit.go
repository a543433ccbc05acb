package codec

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned by Limit when a payload exceeds its bound.
var ErrPayloadTooLarge = errors.New("codec: payload too large")

// Limit wraps another codec and bounds payload sizes in both directions.
// A bound <= 0 disables that check.
//
// Typical use: refuse oversized frames coming from an untrusted peer before
// the inner codec allocates for them.
type Limit[V any] struct {
	// Inner is the wrapped codec. It must be set.
	Inner Codec[V]
	// MaxEncode bounds the length of payloads produced by Encode.
	MaxEncode int
	// MaxDecode bounds the length of payloads accepted by Decode. Inner is
	// not called for payloads over the bound.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	if c.MaxEncode > 0 && len(b) > c.MaxEncode {
		return nil, fmt.Errorf("%w: encoded %d > %d", ErrPayloadTooLarge, len(b), c.MaxEncode)
	}
	return b, nil
}

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
