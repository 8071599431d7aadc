// Package si parses and formats engineering-notation magnitudes
// ("100M", "1p", "1.5k") the way they are typed into circuit tools.
//
// Suffix matching is case-sensitive: "1m" is one millivolt-scale
// magnitude (1e-3) while "1M" is one mega (1e6). The one lowercase
// exception is "meg", kept for SPICE compatibility.
package si

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ParseError reports an input that matched no numeric form.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse value %q", e.Input)
}

// IsParseError returns true if the error is a ParseError.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// suffixes is ordered longest-first so "2meg" resolves against "meg"
// before the bare milli "m" gets a chance to match.
var suffixes = []struct {
	suffix string
	factor float64
}{
	{"meg", 1e6},  // mega (SPICE spelling)
	{"G", 1e9},    // giga
	{"M", 1e6},    // mega
	{"k", 1e3},    // kilo
	{"m", 1e-3},   // milli
	{"u", 1e-6},   // micro
	{"n", 1e-9},   // nano
	{"p", 1e-12},  // pico
	{"f", 1e-15},  // femto
}

// Parse converts an engineering-notation string into a float64.
// Bare numbers and scientific notation ("1e-6") parse directly; otherwise
// the string must end in a recognized SI suffix with a numeric mantissa.
// The micro sign (U+00B5) and Greek mu (U+03BC) are both accepted as "u".
func Parse(s string) (float64, error) {
	// NFKC folds the micro sign into Greek mu, which then maps to ASCII.
	cleaned := strings.TrimSpace(norm.NFKC.String(s))
	cleaned = strings.ReplaceAll(cleaned, "μ", "u")

	if v, err := strconv.ParseFloat(cleaned, 64); err == nil {
		return v, nil
	}

	for _, c := range suffixes {
		if !strings.HasSuffix(cleaned, c.suffix) {
			continue
		}
		mantissa := strings.TrimSuffix(cleaned, c.suffix)
		v, err := strconv.ParseFloat(mantissa, 64)
		if err != nil {
			// A later, shorter suffix may still yield a valid mantissa.
			continue
		}
		return v * c.factor, nil
	}

	return 0, &ParseError{Input: s}
}
