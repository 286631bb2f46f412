package codec

import (
	"fmt"
	"strings"

	"github.com/grid9geo/grid9/pkg"
)

// FormatError reports a code of the wrong length or with misplaced dashes.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("code %q must be %d characters or %d-character XXX-XXX-XXX",
		e.Input, pkg.CODE_LENGTH, pkg.FORMATTED_CODE_LENGTH)
}

// normalize strips the human-readable form down to the 9-character compact
// code. Dashes must sit exactly at positions 3 and 7.
func normalize(encoded string) (string, error) {
	if len(encoded) == pkg.FORMATTED_CODE_LENGTH {
		if encoded[3] != '-' || encoded[7] != '-' {
			return "", &FormatError{Input: encoded}
		}
		return strings.ReplaceAll(encoded, "-", ""), nil
	}
	if len(encoded) != pkg.CODE_LENGTH {
		return "", &FormatError{Input: encoded}
	}
	return encoded, nil
}

// FormatForHumans renders a 9-character code as XXX-XXX-XXX.
func FormatForHumans(code string) (string, error) {
	if len(code) != pkg.CODE_LENGTH {
		return "", &FormatError{Input: code}
	}
	return code[0:3] + "-" + code[3:6] + "-" + code[6:9], nil
}

// RemoveFormatting strips the dashes from a human-readable code. A compact
// 9-character code passes through unchanged.
func RemoveFormatting(formatted string) (string, error) {
	if len(formatted) == pkg.CODE_LENGTH {
		return formatted, nil
	}
	return normalize(formatted)
}

// IsFormattedForHumans reports whether the code is in XXX-XXX-XXX form.
func IsFormattedForHumans(code string) bool {
	return len(code) == pkg.FORMATTED_CODE_LENGTH && code[3] == '-' && code[7] == '-'
}
