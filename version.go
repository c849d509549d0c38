package vercmp

import "unicode"

// Version is a parsed version string: an ordered sequence of parts plus the
// original source string. The part order is the encounter order in the
// source and is significant for comparison. A Version is immutable after
// construction.
type Version struct {
	source string
	parts  []Part
}

// Character classes recognized by the scanner. Any rune that is neither an
// ASCII digit nor a letter or digit in the Unicode sense is a separator,
// matching the permissive grammar of version strings in the wild.
const (
	classSep = iota
	classDigit
	classText
)

func classify(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return classDigit
	case unicode.IsLetter(r) || unicode.IsDigit(r):
		return classText
	default:
		return classSep
	}
}

// Parse parses a version string into a Version. Parsing is tolerant and
// never fails: malformed input, input consisting only of separators and the
// empty string all produce a valid, comparable Version. An empty or
// all-separator input yields a Version with zero parts.
//
// The scanner walks the input left to right. Maximal runs of digits become
// numeric parts (a leading minus is a separator, so "-32" parses as the
// number 32), maximal runs of other letters and digits become text parts,
// and separator runs are discarded as pure boundaries.
func Parse(input string) *Version {
	return ParseWithManifest(input, nil)
}

// ParseWithManifest parses a version string honoring the given manifest.
// A nil manifest is equivalent to Parse.
func ParseWithManifest(input string, m *Manifest) *Version {
	v := &Version{source: input}

	start, cls := 0, classSep
	for i, r := range input {
		c := classify(r)
		if c == cls {
			continue
		}
		if cls != classSep {
			v.appendPart(cls, input[start:i], m)
		}
		start, cls = i, c
	}
	if cls != classSep {
		v.appendPart(cls, input[start:], m)
	}

	return v
}

func (v *Version) appendPart(cls int, token string, m *Manifest) {
	if m.HasMaxDepth() && len(v.parts) >= m.MaxDepth {
		return
	}
	if cls == classDigit {
		v.parts = append(v.parts, newNumericPart(token))
		return
	}
	if m != nil && m.IgnoreText {
		return
	}
	v.parts = append(v.parts, TextPart(token))
}

// String returns the original source string, unmodified.
func (v *Version) String() string {
	return v.source
}

// Parts returns the decomposed form of the version as a copy of its part
// sequence, in source order.
func (v *Version) Parts() []Part {
	parts := make([]Part, len(v.parts))
	copy(parts, v.parts)
	return parts
}

// Part returns the part at the given index, and whether the index is in
// range.
func (v *Version) Part(index int) (Part, bool) {
	if index < 0 || index >= len(v.parts) {
		return Part{}, false
	}
	return v.parts[index], true
}

// PartCount returns the number of parts in the version.
func (v *Version) PartCount() int {
	return len(v.parts)
}

// zeroPart stands in for a missing position when two versions of uneven
// length are compared, making "1.2", "1.2.0" and "1.2.0.0" equal.
var zeroPart = Part{numeric: true, str: "0"}

// Compare compares the version to another, returning -1, 0 or 1 if the
// version is less than, equal to or greater than the other.
//
// Both part sequences are walked in parallel by position. Numeric parts
// compare by value, text parts compare lexicographically, and a numeric
// part outranks a text part at the same position. The first unequal
// position decides the result. When one version runs out of parts, the
// missing positions count as the number zero; a trailing text part
// therefore ranks below its numeric truncation, so "1.0" is greater than
// "1.0.alpha".
func (v *Version) Compare(other *Version) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		a, b := zeroPart, zeroPart
		if i < len(v.parts) {
			a = v.parts[i]
		}
		if i < len(other.parts) {
			b = other.parts[i]
		}
		if cmp := a.Compare(b); cmp != 0 {
			return cmp
		}
	}
	return 0
}

// CompareTo compares the version to another and reports whether the result
// satisfies the given operator.
func (v *Version) CompareTo(other *Version, op Op) bool {
	return op.Match(v.Compare(other))
}
