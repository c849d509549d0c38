package vercmp

import (
	"fmt"
	"regexp"
	"strings"
)

var operatorRegex = regexp.MustCompile(`^(==|!=|>=|<=|[<>=])`)

// Constraint represents a single version constraint (e.g. ">=1.2.3").
// The bound version is parsed once at construction and reused for every
// check.
type Constraint struct {
	op      Op
	version *Version
}

// NewConstraint creates a constraint from an operator and an already
// parsed bound version.
func NewConstraint(op Op, version *Version) *Constraint {
	return &Constraint{op: op, version: version}
}

// ParseConstraint parses a constraint string into a Constraint. A missing
// operator means an exact match, so "1.2.3" is equivalent to "==1.2.3".
//
// Unlike version parsing, constraint parsing can fail: an empty string or
// an operator without a version is a user error, not a version format.
func ParseConstraint(s string) (*Constraint, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("empty constraint")
	}

	op := OpEq
	if sign := operatorRegex.FindString(trimmed); sign != "" {
		op, _ = ParseOp(sign)
		trimmed = strings.TrimSpace(trimmed[len(sign):])
		if trimmed == "" {
			return nil, fmt.Errorf("invalid constraint format: %q", s)
		}
	}

	// A leftover operator character means a typo'd operator, e.g. "=>1.0"
	// reading as "==" with version ">1.0". The tolerant version parser
	// would silently discard it, so reject it here instead.
	if strings.ContainsAny(trimmed[:1], "<>=!") {
		return nil, fmt.Errorf("invalid comparison operator in constraint: %q", s)
	}

	return &Constraint{op: op, version: Parse(trimmed)}, nil
}

// Op returns the constraint's comparison operator.
func (c *Constraint) Op() Op {
	return c.op
}

// Version returns the constraint's bound version.
func (c *Constraint) Version() *Version {
	return c.version
}

// IsExclusion returns true if this is an exclusion constraint (!=).
func (c *Constraint) IsExclusion() bool {
	return c.op == OpNe
}

// ToInterval converts this constraint to an interval. Exclusion
// constraints (!=) have no interval form and return false; ranges handle
// them as exclusions instead.
func (c *Constraint) ToInterval() (Interval, bool) {
	switch c.op {
	case OpEq:
		return ExactInterval(c.version), true
	case OpGt:
		return GreaterThanInterval(c.version, false), true
	case OpGe:
		return GreaterThanInterval(c.version, true), true
	case OpLt:
		return LessThanInterval(c.version, false), true
	case OpLe:
		return LessThanInterval(c.version, true), true
	default:
		return Interval{}, false
	}
}

// Satisfies checks if a version string satisfies this constraint.
func (c *Constraint) Satisfies(version string) bool {
	return c.SatisfiesVersion(Parse(version))
}

// SatisfiesVersion checks if a parsed version satisfies this constraint.
func (c *Constraint) SatisfiesVersion(v *Version) bool {
	return c.op.Match(v.Compare(c.version))
}

// String returns the constraint as a string.
func (c *Constraint) String() string {
	return c.op.Sign() + c.version.String()
}
