package ulid

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
)

// New returns a ULID for the current time with random bits from
// crypto/rand. It panics if crypto/rand fails.
func New() ULID {
	u, err := NewFromReader(rand.Reader)
	if err != nil {
		panic(err)
	}
	return u
}

// NewFromReader returns a ULID for the current time with random bits read
// from entropy. Callers sharing entropy across goroutines must lock it.
func NewFromReader(entropy io.Reader) (ULID, error) {
	return FromTime(time.Now(), entropy)
}

// FromTime returns a ULID for t with random bits read from entropy.
func FromTime(t time.Time, entropy io.Reader) (ULID, error) {
	return FromMillis(t.UnixMilli(), entropy)
}

// FromMillis returns a ULID for ms with random bits read from entropy.
func FromMillis(ms int64, entropy io.Reader) (ULID, error) {
	var random [EntropySize]byte
	if _, err := io.ReadFull(entropy, random[:]); err != nil {
		return Zero, fmt.Errorf("ulid: read entropy: %w", err)
	}
	return FromMillisBytes(ms, random), nil
}
