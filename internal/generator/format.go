package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

// Format is a text rendering of the same 16 bytes.
type Format string

const (
	FormatULID      Format = "ulid"       // 26 lowercase symbols
	FormatULIDUpper Format = "ulid-upper" // 26 uppercase symbols
	FormatUUID      Format = "uuid"       // 8-4-4-4-12 hex
	FormatCanonical Format = "canonical"  // oklog/ulid text of the same bytes
)

// Formats lists every supported format in a stable order.
var Formats = []Format{FormatULID, FormatULIDUpper, FormatUUID, FormatCanonical}

// ParseFormat resolves a format name. An empty name means FormatULID.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return FormatULID, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown ID format: %q", s)
}

// WithCase returns the ulid format written in case c. Only the two ulid
// formats have a letter case.
func (f Format) WithCase(c ulid.Case) (Format, error) {
	switch f {
	case FormatULID, FormatULIDUpper:
		if c == ulid.Upper {
			return FormatULIDUpper, nil
		}
		return FormatULID, nil
	default:
		return "", fmt.Errorf("format %q has no letter case", f)
	}
}

// Render writes u in format f.
func (f Format) Render(u ulid.ULID) string {
	switch f {
	case FormatULIDUpper:
		return u.Encode(ulid.Upper)
	case FormatUUID:
		return u.UUID().String()
	case FormatCanonical:
		return u.Oklog().String()
	default:
		return u.String()
	}
}

// Decode reads s in format f. ULID text is accepted in either case for
// both ulid formats.
func (f Format) Decode(s string) (ulid.ULID, error) {
	switch f {
	case FormatUUID:
		id, err := uuid.Parse(s)
		if err != nil {
			return ulid.Zero, fmt.Errorf("invalid UUID format: %w", err)
		}
		return ulid.FromUUID(id), nil
	case FormatCanonical:
		id, err := oklog.ParseStrict(s)
		if err != nil {
			return ulid.Zero, fmt.Errorf("invalid canonical ULID format: %w", err)
		}
		return ulid.FromOklog(id), nil
	default:
		id, err := ulid.Parse(s)
		if err != nil {
			return ulid.Zero, fmt.Errorf("invalid ULID format: %w", err)
		}
		return id, nil
	}
}
