package util

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/unkn0wn-root/uvarint"
)

// Digest returns the first 16 hex chars of a SHA-256 over parts.
// Each part is hashed as uvarint(len) | bytes, so no choice of separator
// characters inside a part can make two different lists collide.
func Digest(parts ...string) string {
	h := sha256.New()
	var lb [uvarint.MaxLen64]byte
	for _, p := range parts {
		n := uvarint.Put(lb[:], uint64(len(p)))
		h.Write(lb[:n])
		h.Write([]byte(p))
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
