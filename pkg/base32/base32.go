package base32

import (
	"fmt"

	"github.com/grid9geo/grid9/pkg"
)

// InvalidCharacterError reports a character outside the 32-symbol alphabet.
type InvalidCharacterError struct {
	Char byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q in encoded string", e.Char)
}

// charToValue maps an ASCII byte to its alphabet index, -1 for bytes outside
// the alphabet. Both cases map to the same index. Built once, never mutated.
var charToValue = buildLookupTable()

func buildLookupTable() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(pkg.ALPHABET); i++ {
		c := pkg.ALPHABET[i]
		table[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			table[c+('a'-'A')] = int8(i)
		}
	}
	return table
}

// Encode converts a 45-bit unsigned value to a 9-character base32 string,
// most significant digit first. Bits above 45 are masked off.
func Encode(value uint64) string {
	value &= (uint64(1) << pkg.PACKED_BITS) - 1

	var buf [pkg.CODE_LENGTH]byte
	for i := pkg.CODE_LENGTH - 1; i >= 0; i-- {
		buf[i] = pkg.ALPHABET[value&0x1F]
		value >>= 5
	}
	return string(buf[:])
}

// Decode converts a 9-character base32 string back to its 45-bit value.
// Input is case-insensitive.
func Decode(encoded string) (uint64, error) {
	if len(encoded) != pkg.CODE_LENGTH {
		return 0, fmt.Errorf("encoded string must be exactly %d characters, got %d", pkg.CODE_LENGTH, len(encoded))
	}

	var value uint64
	for i := 0; i < len(encoded); i++ {
		idx := charToValue[encoded[i]]
		if idx < 0 {
			return 0, &InvalidCharacterError{Char: encoded[i]}
		}
		value = value<<5 | uint64(idx)
	}
	return value, nil
}
