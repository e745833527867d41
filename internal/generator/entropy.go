package generator

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mathrand "math/rand/v2"
	"sync"
)

const (
	EntropyCrypto = "crypto"
	EntropySeeded = "seeded"
)

// NewEntropy returns the randomness source named by source. "seeded" is a
// ChaCha8 stream keyed by seed, so runs with the same seed and clock
// produce the same IDs.
func NewEntropy(source string, seed int64) (io.Reader, error) {
	switch source {
	case "", EntropyCrypto:
		return rand.Reader, nil
	case EntropySeeded:
		var key [32]byte
		binary.BigEndian.PutUint64(key[:8], uint64(seed))
		return mathrand.NewChaCha8(key), nil
	default:
		return nil, fmt.Errorf("unknown entropy source: %q", source)
	}
}

// lockedReader serializes reads from a source that is not safe for
// concurrent use.
type lockedReader struct {
	mu sync.Mutex
	r  io.Reader
}

func lock(r io.Reader) *lockedReader {
	if lr, ok := r.(*lockedReader); ok {
		return lr
	}
	return &lockedReader{r: r}
}

func (l *lockedReader) Read(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Read(p)
}
