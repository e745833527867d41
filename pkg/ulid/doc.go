// Package ulid provides a 128-bit, lexicographically sortable identifier.
//
// # Format
//
// A ULID is 16 bytes: [6 bytes ms_timestamp][10 bytes random]. The
// timestamp is written big-endian as a signed 48-bit value, so byte-wise
// comparison of two ULIDs orders them by creation time first.
//
// # Text encoding
//
// The text form is 26 Crockford base32 symbols. Bits are taken from the
// most significant end in 5-byte groups, so the final symbol carries the
// low three bits of the last byte padded with zeros. Decoding is
// case-insensitive and accepts the Crockford aliases I and L (as 1) and
// O (as 0). Encoding is lowercase by default; Upper selects the
// uppercase table.
//
// Uniqueness is probabilistic. The package does not own or lock any
// randomness source; callers pass an io.Reader.
//
// Usage
//
//	id := ulid.New()
//	s := id.String()              // "05kzbnmt1hnwhs62crxermqqaw"
//	u := id.Uppercase().String()  // "05KZBNMT1HNWHS62CRXERMQQAW"
//	back, err := ulid.Parse(s)
package ulid
