// Package textenc converts entry names and contents into the UTF-8 byte
// sequences embedded in archive records.
//
// The encoder walks code points and performs the UTF-8 bit-packing itself,
// covering all four encoded lengths. Input that is not valid UTF-8 (which
// is where unpaired surrogates surface in Go strings) fails fast rather
// than being silently replaced or truncated.
package textenc

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrUnsupportedCharacter is returned when a string contains a byte
// sequence that has no UTF-8 encoding.
var ErrUnsupportedCharacter = errors.New("unsupported character")

// EncodeString returns the UTF-8 byte sequence for s.
// Pure; the returned slice is freshly allocated.
func EncodeString(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r == utf8.RuneError {
			// Distinguish a literal U+FFFD in the input from the
			// replacement the range loop substitutes for bad bytes.
			if _, size := utf8.DecodeRuneInString(s[i:]); size <= 1 {
				return nil, fmt.Errorf("%w: invalid byte sequence at index %d", ErrUnsupportedCharacter, i)
			}
		}
		out = appendRune(out, r)
	}
	return out, nil
}

// appendRune packs r into its shortest UTF-8 form.
func appendRune(dst []byte, r rune) []byte {
	c := uint32(r)
	switch {
	case c < 0x80:
		return append(dst, byte(c))
	case c < 0x800:
		return append(dst, 0xC0|byte(c>>6), 0x80|byte(c&0x3F))
	case c < 0x10000:
		return append(dst, 0xE0|byte(c>>12), 0x80|byte(c>>6&0x3F), 0x80|byte(c&0x3F))
	default:
		return append(dst, 0xF0|byte(c>>18), 0x80|byte(c>>12&0x3F), 0x80|byte(c>>6&0x3F), 0x80|byte(c&0x3F))
	}
}
