package codec

import "google.golang.org/protobuf/proto"

// Protobuf encodes proto messages. New must return an empty message of the
// concrete type, e.g. func() *wrapperspb.UInt64Value { return new(wrapperspb.UInt64Value) }.
//
// Paired with delim this gives the same layout as protodelim: a uvarint
// length followed by the message bytes.
type Protobuf[T proto.Message] struct {
	New func() T
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{New: ctor}
}

func (c Protobuf[T]) Encode(m T) ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(m)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.New()
	err := proto.Unmarshal(b, m)
	return m, err
}
