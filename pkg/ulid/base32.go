package ulid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	upperAlphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"
	lowerAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"
)

// crockfordInverse maps an uppercased ASCII byte minus '0' to its 5-bit
// value. It covers '0' through 'Z'; -1 marks bytes outside the alphabet.
// I and L decode as 1, O decodes as 0.
var crockfordInverse = [43]int8{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, // 0-9
	-1, -1, -1, -1, -1, -1, -1, // :;<=>?@
	10, 11, 12, 13, 14, 15, 16, 17, // A-H
	1,      // I
	18, 19, // J K
	1,      // L
	20, 21, // M N
	0,                  // O
	22, 23, 24, 25, 26, // P-T
	-1,                 // U
	27, 28, 29, 30, 31, // V-Z
}

// Case selects the symbol table used for encoding.
type Case int

const (
	Lower Case = iota
	Upper
)

// ParseCase reads "lower" or "upper", case-insensitively.
func ParseCase(s string) (Case, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lower":
		return Lower, nil
	case "upper":
		return Upper, nil
	default:
		return Lower, fmt.Errorf("ulid: unknown case %q", s)
	}
}

func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

func (c Case) alphabet() string {
	if c == Upper {
		return upperAlphabet
	}
	return lowerAlphabet
}

// encode writes data as base32 symbols, five bytes to eight symbols. A
// short final group is zero-filled and the symbols that hold only fill
// bits are dropped.
func encode(c Case, data []byte) string {
	alphabet := c.alphabet()
	out := make([]byte, 0, (len(data)+4)/5*8)

	for len(data) > 0 {
		var buf [5]byte
		n := copy(buf[:], data)
		data = data[n:]

		out = append(out,
			alphabet[(buf[0]&0xF8)>>3],
			alphabet[(buf[0]&0x07)<<2|(buf[1]&0xC0)>>6],
			alphabet[(buf[1]&0x3E)>>1],
			alphabet[(buf[1]&0x01)<<4|(buf[2]&0xF0)>>4],
			alphabet[(buf[2]&0x0F)<<1|buf[3]>>7],
			alphabet[(buf[3]&0x7C)>>2],
			alphabet[(buf[3]&0x03)<<3|(buf[4]&0xE0)>>5],
			alphabet[buf[4]&0x1F],
		)

		if n < 5 {
			extra := 8 - (n*8+4)/5
			out = out[:len(out)-extra]
		}
	}

	return string(out)
}

// decode is the inverse of encode for either case. Up to six trailing '='
// are left out of the output length. The first byte outside the alphabet
// stops decoding.
func decode(s string) ([]byte, error) {
	unpadded := len(s)
	for i := 1; i <= min(6, len(s)); i++ {
		if s[len(s)-i] != '=' {
			break
		}
		unpadded--
	}
	outLen := unpadded * 5 / 8

	out := make([]byte, 0, (len(s)+7)/8*5)
	for start := 0; start < len(s); start += 8 {
		chunk := s[start:min(start+8, len(s))]

		var buf [8]byte
		for i := 0; i < len(chunk); i++ {
			v, ok := decodeSymbol(chunk[i])
			if !ok {
				return nil, &ParseError{
					Kind:   InvalidCharacter,
					Char:   rune(chunk[i]),
					Index:  i,
					Offset: start + i,
				}
			}
			buf[i] = v
		}

		out = append(out,
			buf[0]<<3|buf[1]>>2,
			buf[1]<<6|buf[2]<<1|buf[3]>>4,
			buf[3]<<4|buf[4]>>1,
			buf[4]<<7|buf[5]<<2|buf[6]>>3,
			buf[6]<<5|buf[7],
		)
	}

	return out[:outLen], nil
}

func decodeSymbol(c byte) (byte, bool) {
	if c >= utf8.RuneSelf {
		return 0, false
	}
	if 'a' <= c && c <= 'z' {
		c -= 'a' - 'A'
	}
	i := c - '0'
	if int(i) >= len(crockfordInverse) {
		return 0, false
	}
	v := crockfordInverse[i]
	if v < 0 {
		return 0, false
	}
	return byte(v), true
}
