package generator

import "time"

// Generator defines the interface for ID generation, validation, and parsing.
type Generator interface {
	Generate() (string, error)
	GenerateBatch(count int) ([]string, error)
	Validate(id string) (bool, string) // (valid, reason)
	Parse(id string) (*ParseResult, error)
}

// ParseResult holds everything that can be read back from an ID.
type ParseResult struct {
	Format        Format    `json:"format"`
	TimestampMs   int64     `json:"timestamp_ms"`
	Time          time.Time `json:"time"`
	Fields        Fields    `json:"fields"`
	RandomPayload string    `json:"random_payload"` // hex-encoded 10 random bytes
	Integer       string    `json:"integer"`        // 128-bit value in decimal
	Lower         string    `json:"lower"`
	Upper         string    `json:"upper"`
	UUID          string    `json:"uuid"`
	Canonical     string    `json:"canonical"`
}

// Fields is the five-integer view of the 16 bytes.
type Fields struct {
	F1 uint32 `json:"f1"`
	F2 uint16 `json:"f2"`
	F3 uint16 `json:"f3"`
	F4 uint32 `json:"f4"`
	F5 uint32 `json:"f5"`
}
