package ulid

import (
	"database/sql/driver"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// MarshalText implements encoding.TextMarshaler with the lowercase form.
func (u ULID) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Either case is accepted.
func (u *ULID) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler with the raw 16 bytes.
func (u ULID) MarshalBinary() ([]byte, error) {
	return u.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *ULID) UnmarshalBinary(data []byte) error {
	v, err := FromSlice(data)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// MarshalCBOR implements cbor.Marshaler as a 16-byte byte string.
func (u ULID) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(u[:])
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (u *ULID) UnmarshalCBOR(data []byte) error {
	var raw []byte
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ulid: decode cbor: %w", err)
	}
	return u.UnmarshalBinary(raw)
}

// Value implements driver.Valuer with the lowercase text form.
func (u ULID) Value() (driver.Value, error) {
	return u.String(), nil
}

// Scan implements sql.Scanner. It accepts a text column in either case, a
// 16-byte blob, or NULL, which leaves the zero ULID.
func (u *ULID) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*u = Zero
		return nil
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == Size {
			return u.UnmarshalBinary(v)
		}
		return u.UnmarshalText(v)
	default:
		return fmt.Errorf("ulid: unsupported scan type %T", value)
	}
}
