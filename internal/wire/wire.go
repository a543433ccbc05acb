package wire

import (
	"errors"

	"github.com/unkn0wn-root/uvarint"
)

const (
	version    byte = 1
	kindSingle byte = 1
	kindBulk   byte = 2

	// smallest bulk member: keyLen(1) | key(1) | value(1)
	minBulkItem = 3
)

var (
	ErrCorrupt  = errors.New("uvarint: corrupt entry")
	ErrEmptyKey = errors.New("uvarint: empty key in bulk")
	dec         = uvarint.Decoder{Strict: true, Canonical: true}
)

// Single: ver(1) | kind(1=single) | uvarint(value)
func EncodeSingle(v uint64) []byte {
	b := make([]byte, 0, 2+uvarint.Len(v))
	b = append(b, version, kindSingle)
	return uvarint.Append(b, v)
}

func DecodeSingle(b []byte) (uint64, error) {
	if len(b) < 3 || b[0] != version || b[1] != kindSingle {
		return 0, ErrCorrupt
	}
	v, n, err := dec.Decode(b[2:])
	if err != nil || 2+n != len(b) {
		return 0, ErrCorrupt
	}
	return v, nil
}

// Bulk:
//
//	ver(1) | kind(1=bulk) | uvarint(n)
//	uvarint(keyLen) | key(keyLen) | uvarint(value)   * n
type BulkItem struct {
	Key   string
	Value uint64
}

func EncodeBulk(items []BulkItem) ([]byte, error) {
	total := 2 + uvarint.Len(uint64(len(items)))
	for _, it := range items {
		total += uvarint.Len(uint64(len(it.Key))) + len(it.Key) + uvarint.Len(it.Value)
	}

	b := make([]byte, 0, total)
	b = append(b, version, kindBulk)
	b = uvarint.Append(b, uint64(len(items)))
	for _, it := range items {
		if it.Key == "" {
			return nil, ErrEmptyKey
		}
		b = uvarint.Append(b, uint64(len(it.Key)))
		b = append(b, it.Key...)
		b = uvarint.Append(b, it.Value)
	}
	return b, nil
}

func DecodeBulk(b []byte) ([]BulkItem, error) {
	if len(b) < 3 || b[0] != version || b[1] != kindBulk {
		return nil, ErrCorrupt
	}
	off := 2

	n, m, err := dec.Decode(b[off:])
	if err != nil {
		return nil, ErrCorrupt
	}
	off += m
	// a forged count cannot claim more members than the bytes could hold
	if n > uint64((len(b)-off)/minBulkItem) {
		return nil, ErrCorrupt
	}

	items := make([]BulkItem, 0, int(n))
	for i := uint64(0); i < n; i++ {
		klen, m, err := dec.Decode(b[off:])
		if err != nil {
			return nil, ErrCorrupt
		}
		off += m
		if klen == 0 || klen > uint64(len(b)-off) {
			return nil, ErrCorrupt
		}
		key := string(b[off : off+int(klen)])
		off += int(klen)

		v, m, err := dec.Decode(b[off:])
		if err != nil {
			return nil, ErrCorrupt
		}
		off += m

		items = append(items, BulkItem{Key: key, Value: v})
	}
	if off != len(b) {
		return nil, ErrCorrupt
	}
	return items, nil
}
