// Package uvarint implements the little-endian base-128 encoding of unsigned
// 64-bit integers ("uvarint").
//
// Each encoded byte carries 7 payload bits in its low bits and a continuation
// bit in its high bit (0x80 = more bytes follow). The least significant group
// comes first:
//
//	0     -> 00
//	128   -> 80 01
//	173   -> AD 01
//	2^32-1 -> FF FF FF FF 0F
//
// Encodings are always minimal and never longer than MaxLen64 (10) bytes.
//
// Write and Read work over io.Writer / io.Reader. Append, Encode and Decode
// work over byte slices. The zero Decoder accepts any terminated encoding of at
// most 10 bytes; Decoder.Strict and Decoder.Canonical add range and minimality
// checks.
//
// Functions in this package hold no state. A stream must not be shared between
// goroutines for the duration of a single call.
package uvarint
