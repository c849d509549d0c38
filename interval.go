package vercmp

import "fmt"

// Interval represents a mathematical interval of versions.
// For example, [1.0.0, 2.0.0) represents versions from 1.0.0 (inclusive)
// to 2.0.0 (exclusive). A nil bound means the interval is unbounded on
// that side. Bounds are parsed versions, so containment checks never
// re-parse them.
type Interval struct {
	Min          *Version
	Max          *Version
	MinInclusive bool
	MaxInclusive bool
}

// NewInterval creates a new interval with the given bounds.
func NewInterval(min, max string, minInclusive, maxInclusive bool) Interval {
	i := Interval{MinInclusive: minInclusive, MaxInclusive: maxInclusive}
	if min != "" {
		i.Min = Parse(min)
	}
	if max != "" {
		i.Max = Parse(max)
	}
	return i
}

// EmptyInterval creates an interval that matches no versions.
func EmptyInterval() Interval {
	return Interval{Min: Parse("1"), Max: Parse("0"), MinInclusive: true, MaxInclusive: true}
}

// UnboundedInterval creates an interval that matches all versions.
func UnboundedInterval() Interval {
	return Interval{}
}

// ExactInterval creates an interval that matches exactly one version.
func ExactInterval(version *Version) Interval {
	return Interval{Min: version, Max: version, MinInclusive: true, MaxInclusive: true}
}

// GreaterThanInterval creates an interval for versions greater than the
// given version.
func GreaterThanInterval(version *Version, inclusive bool) Interval {
	return Interval{Min: version, MinInclusive: inclusive}
}

// LessThanInterval creates an interval for versions less than the given
// version.
func LessThanInterval(version *Version, inclusive bool) Interval {
	return Interval{Max: version, MaxInclusive: inclusive}
}

// IsEmpty returns true if this interval matches no versions.
func (i Interval) IsEmpty() bool {
	if i.Min != nil && i.Max != nil {
		cmp := i.Min.Compare(i.Max)
		if cmp > 0 {
			return true
		}
		if cmp == 0 && (!i.MinInclusive || !i.MaxInclusive) {
			return true
		}
	}
	return false
}

// IsUnbounded returns true if this interval matches all versions.
func (i Interval) IsUnbounded() bool {
	return i.Min == nil && i.Max == nil
}

// Contains checks if the interval contains the given version.
func (i Interval) Contains(v *Version) bool {
	if i.IsEmpty() {
		return false
	}
	if i.IsUnbounded() {
		return true
	}

	if i.Min != nil {
		cmp := v.Compare(i.Min)
		if i.MinInclusive {
			if cmp < 0 {
				return false
			}
		} else {
			if cmp <= 0 {
				return false
			}
		}
	}

	if i.Max != nil {
		cmp := v.Compare(i.Max)
		if i.MaxInclusive {
			if cmp > 0 {
				return false
			}
		} else {
			if cmp >= 0 {
				return false
			}
		}
	}

	return true
}

// Intersect returns the intersection of two intervals.
func (i Interval) Intersect(other Interval) Interval {
	if i.IsEmpty() || other.IsEmpty() {
		return EmptyInterval()
	}

	result := Interval{}

	// Determine new minimum
	if i.Min != nil && other.Min != nil {
		cmp := i.Min.Compare(other.Min)
		if cmp > 0 {
			result.Min = i.Min
			result.MinInclusive = i.MinInclusive
		} else if cmp < 0 {
			result.Min = other.Min
			result.MinInclusive = other.MinInclusive
		} else {
			result.Min = i.Min
			result.MinInclusive = i.MinInclusive && other.MinInclusive
		}
	} else if i.Min != nil {
		result.Min = i.Min
		result.MinInclusive = i.MinInclusive
	} else if other.Min != nil {
		result.Min = other.Min
		result.MinInclusive = other.MinInclusive
	}

	// Determine new maximum
	if i.Max != nil && other.Max != nil {
		cmp := i.Max.Compare(other.Max)
		if cmp < 0 {
			result.Max = i.Max
			result.MaxInclusive = i.MaxInclusive
		} else if cmp > 0 {
			result.Max = other.Max
			result.MaxInclusive = other.MaxInclusive
		} else {
			result.Max = i.Max
			result.MaxInclusive = i.MaxInclusive && other.MaxInclusive
		}
	} else if i.Max != nil {
		result.Max = i.Max
		result.MaxInclusive = i.MaxInclusive
	} else if other.Max != nil {
		result.Max = other.Max
		result.MaxInclusive = other.MaxInclusive
	}

	return result
}

// Overlaps returns true if the two intervals overlap.
func (i Interval) Overlaps(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}
	return !i.Intersect(other).IsEmpty()
}

// Adjacent returns true if the two intervals are adjacent (can be merged).
func (i Interval) Adjacent(other Interval) bool {
	if i.IsEmpty() || other.IsEmpty() {
		return false
	}

	if i.Max != nil && other.Min != nil && i.Max.Compare(other.Min) == 0 {
		return (i.MaxInclusive && !other.MinInclusive) || (!i.MaxInclusive && other.MinInclusive)
	}

	if i.Min != nil && other.Max != nil && i.Min.Compare(other.Max) == 0 {
		return (i.MinInclusive && !other.MaxInclusive) || (!i.MinInclusive && other.MaxInclusive)
	}

	return false
}

// Union returns the union of two intervals, or nil if they cannot be
// merged into a single interval.
func (i Interval) Union(other Interval) *Interval {
	if i.IsEmpty() {
		return &other
	}
	if other.IsEmpty() {
		return &i
	}

	if !i.Overlaps(other) && !i.Adjacent(other) {
		return nil
	}

	result := Interval{}

	// Determine new minimum (take the smaller one, nil means unbounded)
	if i.Min == nil || other.Min == nil {
		// Either side is unbounded below, so the union is too
		result.Min = nil
		result.MinInclusive = false
	} else {
		cmp := i.Min.Compare(other.Min)
		if cmp < 0 {
			result.Min = i.Min
			result.MinInclusive = i.MinInclusive
		} else if cmp > 0 {
			result.Min = other.Min
			result.MinInclusive = other.MinInclusive
		} else {
			result.Min = i.Min
			result.MinInclusive = i.MinInclusive || other.MinInclusive
		}
	}

	// Determine new maximum (take the larger one, nil means unbounded)
	if i.Max == nil || other.Max == nil {
		// Either side is unbounded above, so the union is too
		result.Max = nil
		result.MaxInclusive = false
	} else {
		cmp := i.Max.Compare(other.Max)
		if cmp > 0 {
			result.Max = i.Max
			result.MaxInclusive = i.MaxInclusive
		} else if cmp < 0 {
			result.Max = other.Max
			result.MaxInclusive = other.MaxInclusive
		} else {
			result.Max = i.Max
			result.MaxInclusive = i.MaxInclusive || other.MaxInclusive
		}
	}

	return &result
}

// String returns a string representation of the interval.
func (i Interval) String() string {
	if i.IsEmpty() {
		return "empty"
	}
	if i.IsUnbounded() {
		return "(-inf,+inf)"
	}

	minBracket := "("
	if i.MinInclusive {
		minBracket = "["
	}
	maxBracket := ")"
	if i.MaxInclusive {
		maxBracket = "]"
	}

	minStr := "-inf"
	if i.Min != nil {
		minStr = i.Min.String()
	}
	maxStr := "+inf"
	if i.Max != nil {
		maxStr = i.Max.String()
	}

	return fmt.Sprintf("%s%s,%s%s", minBracket, minStr, maxStr, maxBracket)
}
