package generator

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

// Options configures a ULIDGenerator. Zero values mean FormatULID,
// time.Now and crypto/rand.
type Options struct {
	Format  Format
	Clock   func() time.Time
	Entropy io.Reader
}

// ULIDGenerator generates ULIDs and renders them in one Format.
type ULIDGenerator struct {
	mu      sync.Mutex
	format  Format
	clock   func() time.Time
	entropy io.Reader
}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator(opts Options) (*ULIDGenerator, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}
	g := &ULIDGenerator{
		format:  format,
		clock:   opts.Clock,
		entropy: opts.Entropy,
	}
	if g.clock == nil {
		g.clock = time.Now
	}
	if g.entropy == nil {
		g.entropy = rand.Reader
	}
	g.entropy = lock(g.entropy)
	return g, nil
}

// Format returns the rendering this generator emits.
func (g *ULIDGenerator) Format() Format { return g.format }

// Next returns a new ULID value.
func (g *ULIDGenerator) Next() (ulid.ULID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.nextLocked()
}

func (g *ULIDGenerator) Generate() (string, error) {
	id, err := g.Next()
	if err != nil {
		return "", err
	}
	return g.format.Render(id), nil
}

func (g *ULIDGenerator) GenerateBatch(count int) ([]string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := g.nextLocked()
		if err != nil {
			return nil, err
		}
		ids = append(ids, g.format.Render(id))
	}
	return ids, nil
}

// nextLocked must be called with g.mu held.
func (g *ULIDGenerator) nextLocked() (ulid.ULID, error) {
	id, err := ulid.FromTime(g.clock(), g.entropy)
	if err != nil {
		return ulid.Zero, fmt.Errorf("failed to generate ULID: %w", err)
	}
	return id, nil
}

func (g *ULIDGenerator) Validate(id string) (bool, string) {
	if _, err := g.format.Decode(id); err != nil {
		return false, err.Error()
	}
	return true, ""
}

func (g *ULIDGenerator) Parse(id string) (*ParseResult, error) {
	parsed, err := g.format.Decode(id)
	if err != nil {
		return nil, err
	}
	return Describe(g.format, parsed), nil
}

// Describe fills a ParseResult for id as read in format f.
func Describe(f Format, id ulid.ULID) *ParseResult {
	f1, f2, f3, f4, f5 := id.Fields()
	random := id.Entropy()
	return &ParseResult{
		Format:        f,
		TimestampMs:   id.Millis(),
		Time:          id.Time(),
		Fields:        Fields{F1: f1, F2: f2, F3: f3, F4: f4, F5: f5},
		RandomPayload: hex.EncodeToString(random[:]),
		Integer:       id.Uint128().String(),
		Lower:         id.String(),
		Upper:         id.Uppercase().String(),
		UUID:          FormatUUID.Render(id),
		Canonical:     FormatCanonical.Render(id),
	}
}
