// Package store keeps uint64 values under namespaced keys in a byte
// Provider (ristretto, BigCache, Redis or the in-process local provider).
//
// Values are stored in a small versioned envelope around their uvarint
// encoding, so a counter below 128 costs three bytes:
//
//	uv:<ns>:<key> -> ver(1) | kind(1) | uvarint(value)
//
// Reads validate the envelope strictly. An entry that fails validation is
// deleted and reported as a miss ("self-heal"), never as an error.
//
// Export and Import move a set of values as one blob:
//
//	ver(1) | kind(2) | uvarint(n) | n * (uvarint(keyLen) | key | uvarint(value))
package store
