package ulid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math/big"
	"slices"
	"time"

	"lukechampine.com/uint128"
)

const (
	// Size is the length of a ULID in bytes.
	Size = 16
	// EncodedSize is the length of a ULID in base32 symbols.
	EncodedSize = 26
	// EntropySize is the length of the random section in bytes.
	EntropySize = 10

	timestampSize = Size - EntropySize
)

// ULID is a 128-bit identifier encoded as 16 bytes:
// [6 bytes ms_timestamp][10 bytes random].
type ULID [Size]byte

// Zero is the all-zero ULID.
var Zero ULID

// FromBytes wraps a 16-byte buffer.
func FromBytes(b [Size]byte) ULID { return ULID(b) }

// FromSlice copies b into a ULID. It fails unless len(b) is 16.
func FromSlice(b []byte) (ULID, error) {
	if len(b) != Size {
		return Zero, &BytesError{Expected: Size, Found: len(b)}
	}
	var u ULID
	copy(u[:], b)
	return u, nil
}

// FromMillisBytes builds a ULID from a millisecond timestamp and the random
// section. Only the low 48 bits of ms are kept; larger values wrap silently.
func FromMillisBytes(ms int64, random [EntropySize]byte) ULID {
	var u ULID
	putInt48(u[:timestampSize], ms)
	copy(u[timestampSize:], random[:])
	return u
}

// FromTimeBytes is FromMillisBytes for t.UnixMilli().
func FromTimeBytes(t time.Time, random [EntropySize]byte) ULID {
	return FromMillisBytes(t.UnixMilli(), random)
}

// FromFields concatenates five big-endian fields into a ULID. f1 and f2
// carry the timestamp, f3, f4 and f5 the random section.
func FromFields(f1 uint32, f2, f3 uint16, f4, f5 uint32) ULID {
	var u ULID
	binary.BigEndian.PutUint32(u[0:4], f1)
	binary.BigEndian.PutUint16(u[4:6], f2)
	binary.BigEndian.PutUint16(u[6:8], f3)
	binary.BigEndian.PutUint32(u[8:12], f4)
	binary.BigEndian.PutUint32(u[12:16], f5)
	return u
}

// Fields is the inverse of FromFields.
func (u ULID) Fields() (f1 uint32, f2, f3 uint16, f4, f5 uint32) {
	return binary.BigEndian.Uint32(u[0:4]),
		binary.BigEndian.Uint16(u[4:6]),
		binary.BigEndian.Uint16(u[6:8]),
		binary.BigEndian.Uint32(u[8:12]),
		binary.BigEndian.Uint32(u[12:16])
}

// Millis returns the timestamp section as a sign-extended 48-bit value.
func (u ULID) Millis() int64 {
	return readInt48(u[:timestampSize])
}

// Time returns the timestamp section as a UTC time.
func (u ULID) Time() time.Time {
	return time.UnixMilli(u.Millis()).UTC()
}

// Entropy returns a copy of the random section.
func (u ULID) Entropy() [EntropySize]byte {
	var e [EntropySize]byte
	copy(e[:], u[timestampSize:])
	return e
}

// Bytes returns a copy of the 16 raw bytes.
func (u ULID) Bytes() []byte { b := make([]byte, Size); copy(b, u[:]); return b }

// IsZero reports whether u is the all-zero ULID.
func (u ULID) IsZero() bool { return u == Zero }

// Compare returns -1, 0 or 1 based on byte-wise comparison.
func (u ULID) Compare(other ULID) int { return bytes.Compare(u[:], other[:]) }

// Sort orders ids in place, oldest first.
func Sort(ids []ULID) {
	slices.SortFunc(ids, ULID.Compare)
}

// FromUint128 reads v as the big-endian value of the 16 bytes.
func FromUint128(v uint128.Uint128) ULID {
	var u ULID
	v.PutBytesBE(u[:])
	return u
}

// Uint128 is the inverse of FromUint128.
func (u ULID) Uint128() uint128.Uint128 {
	return uint128.FromBytesBE(u[:])
}

var errUint128Range = errors.New("ulid: integer out of 128-bit unsigned range")

// Uint128FromBig converts b, which must fit in 128 unsigned bits.
// uint128.FromBig panics out of range; this returns an error instead.
func Uint128FromBig(b *big.Int) (uint128.Uint128, error) {
	if b.Sign() < 0 || b.BitLen() > 128 {
		return uint128.Zero, errUint128Range
	}
	return uint128.FromBig(b), nil
}

func putInt48(dst []byte, v int64) {
	_ = dst[5]
	dst[0] = byte(v >> 40)
	dst[1] = byte(v >> 32)
	dst[2] = byte(v >> 24)
	dst[3] = byte(v >> 16)
	dst[4] = byte(v >> 8)
	dst[5] = byte(v)
}

func readInt48(src []byte) int64 {
	_ = src[5]
	v := uint64(src[0])<<40 | uint64(src[1])<<32 | uint64(src[2])<<24 |
		uint64(src[3])<<16 | uint64(src[4])<<8 | uint64(src[5])
	return int64(v<<16) >> 16
}
