package ulid

import (
	"github.com/google/uuid"
	oklog "github.com/oklog/ulid/v2"
)

// FromUUID reinterprets the 16 bytes of a UUID. No fields are remapped.
func FromUUID(id uuid.UUID) ULID { return ULID(id) }

// UUID reinterprets u as a UUID. The version and variant bits are whatever
// the timestamp and random sections happen to hold.
func (u ULID) UUID() uuid.UUID { return uuid.UUID(u) }

// FromOklog reinterprets an oklog/ulid value. Both share the byte layout;
// the text forms differ because oklog aligns its symbols to the low end.
func FromOklog(id oklog.ULID) ULID { return ULID(id) }

// Oklog reinterprets u as an oklog/ulid value.
func (u ULID) Oklog() oklog.ULID { return oklog.ULID(u) }
