package codec

// Bytes passes []byte payloads through unchanged. Use it when frames carry
// opaque bytes and only the uvarint length prefix matters.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String converts between string and []byte. It assumes UTF-8 and does not
// validate.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) { return string(b), nil }
