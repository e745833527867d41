package ulid

// Lowercase formats a ULID with the lowercase alphabet.
type Lowercase ULID

// Uppercase formats a ULID with the uppercase alphabet.
type Uppercase ULID

func (l Lowercase) String() string { return encode(Lower, l[:]) }

func (u Uppercase) String() string { return encode(Upper, u[:]) }

// Lowercase returns the lowercase adapter for u.
func (u ULID) Lowercase() Lowercase { return Lowercase(u) }

// Uppercase returns the uppercase adapter for u.
func (u ULID) Uppercase() Uppercase { return Uppercase(u) }

// Encode returns the 26-symbol text form of u in case c.
func (u ULID) Encode(c Case) string { return encode(c, u[:]) }

// String returns the lowercase text form.
func (u ULID) String() string { return encode(Lower, u[:]) }

// Parse decodes a 26-symbol string in either case.
func Parse(s string) (ULID, error) {
	if len(s) != EncodedSize {
		return Zero, &ParseError{Kind: InvalidLength, Length: len(s)}
	}
	b, err := decode(s)
	if err != nil {
		return Zero, err
	}
	return FromSlice(b)
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(s string) ULID {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}
