// Package vercmp compares version numbers in any format.
//
// Version strings in the wild rarely follow a single grammar, so the parser
// is tolerant by design: any input, including empty strings and undefined
// formats, parses into a comparable Version. Two versions are compared
// positionally, part by part, with semver-aware rules for uneven lengths
// and mixed numeric/text segments.
//
// Quick Start:
//
//	// Compare two version strings
//	vercmp.Compare("1.2", "1.5.1") // -1
//
//	// Test a comparison against an operator
//	vercmp.CompareTo("1.2", "1.5.1", vercmp.OpLe) // true
//
//	// Parse once, compare many times
//	v := vercmp.Parse("1.2.3")
//	v.Compare(vercmp.Parse("1.2.4")) // -1
//
//	// Check if a version satisfies a constraint
//	c, _ := vercmp.ParseConstraint(">=1.2.3")
//	c.Satisfies("1.5.0") // true
//
// Formats parsed successfully include "1", "3.10.4.1", "1.2.alpha",
// "1.2.dev.4", "" (empty) and " .   -32 . 1" (undefined formats).
package vercmp

import "sort"

// LibraryVersion is the version of this library. The name Version belongs
// to the parsed-version type.
const LibraryVersion = "0.1.0"

// Compare compares two version strings.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
//
// Both sides are parsed tolerantly, so comparison never fails.
func Compare(a, b string) int {
	return Parse(a).Compare(Parse(b))
}

// CompareTo compares two version strings and reports whether the result
// satisfies the given operator.
func CompareTo(a, b string, op Op) bool {
	return op.Match(Compare(a, b))
}

// Sort sorts version strings in place, in ascending version order.
// The sort is stable: versions that compare equal, such as "1.2" and
// "1.2.0", keep their relative order.
func Sort(versions []string) {
	parsed := make([]*Version, len(versions))
	for i, s := range versions {
		parsed[i] = Parse(s)
	}
	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].Compare(parsed[j]) < 0
	})
	for i, v := range parsed {
		versions[i] = v.String()
	}
}

// Latest returns the greatest of the given version strings, or the empty
// string if none are given. Of versions that compare equal, the first wins.
func Latest(versions ...string) string {
	if len(versions) == 0 {
		return ""
	}
	best := Parse(versions[0])
	for _, s := range versions[1:] {
		if v := Parse(s); v.Compare(best) > 0 {
			best = v
		}
	}
	return best.String()
}

// Oldest returns the smallest of the given version strings, or the empty
// string if none are given. Of versions that compare equal, the first wins.
func Oldest(versions ...string) string {
	if len(versions) == 0 {
		return ""
	}
	best := Parse(versions[0])
	for _, s := range versions[1:] {
		if v := Parse(s); v.Compare(best) < 0 {
			best = v
		}
	}
	return best.String()
}
