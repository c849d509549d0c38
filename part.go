package vercmp

import (
	"math"
	"strconv"
	"strings"
)

// Part is one atomic token of a version string: either a maximal run of
// digits or a maximal run of text characters. Separator characters between
// tokens are discarded during parsing and never become parts.
type Part struct {
	numeric bool
	value   int64
	wide    bool   // digit run exceeds the int64 range
	str     string // source token, leading zeros included for numeric parts
}

// NumericPart creates a numeric part with the given value.
// Version parts are never negative; value must be >= 0.
func NumericPart(value int64) Part {
	return Part{numeric: true, value: value, str: strconv.FormatInt(value, 10)}
}

// TextPart creates a text part with the given value.
func TextPart(value string) Part {
	return Part{str: value}
}

// newNumericPart creates a numeric part from a run of digits. Runs that
// exceed the int64 range are kept as wide parts and compared by their
// digits, so large version numbers never overflow silently.
func newNumericPart(digits string) Part {
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Part{numeric: true, value: math.MaxInt64, wide: true, str: digits}
	}
	return Part{numeric: true, value: value, str: digits}
}

// IsNumeric reports whether the part is a run of digits.
func (p Part) IsNumeric() bool {
	return p.numeric
}

// IsText reports whether the part is a run of text characters.
func (p Part) IsText() bool {
	return !p.numeric
}

// Value returns the numeric value of a numeric part. It returns 0 for text
// parts. For digit runs beyond the int64 range the value saturates to
// math.MaxInt64; Compare remains exact for such parts.
func (p Part) Value() int64 {
	if !p.numeric {
		return 0
	}
	return p.value
}

// String returns the source token of the part, unmodified.
func (p Part) String() string {
	return p.str
}

// Compare returns -1, 0 or 1 if the part is less than, equal to or greater
// than the other part. Numeric parts compare by value, text parts compare
// lexicographically, and a numeric part outranks a text part.
func (p Part) Compare(other Part) int {
	switch {
	case p.numeric && other.numeric:
		return compareNumeric(p, other)
	case p.numeric:
		return 1
	case other.numeric:
		return -1
	default:
		return strings.Compare(p.str, other.str)
	}
}

func compareNumeric(a, b Part) int {
	if a.wide || b.wide {
		return compareDigits(a.str, b.str)
	}
	switch {
	case a.value < b.value:
		return -1
	case a.value > b.value:
		return 1
	default:
		return 0
	}
}

// compareDigits compares two digit runs by magnitude without parsing them.
func compareDigits(a, b string) int {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

func trimLeadingZeros(s string) string {
	trimmed := strings.TrimLeft(s, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
