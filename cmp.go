package vercmp

import "fmt"

// Op is a comparison operator. It carries no comparison logic of its own;
// it only maps a three-way comparison result to a boolean via Match.
type Op int

// Supported comparison operators.
const (
	OpEq Op = iota // ==
	OpNe           // !=
	OpLt           // <
	OpLe           // <=
	OpGe           // >=
	OpGt           // >
)

// Match reports whether a three-way comparison result (-1, 0 or 1, as
// returned by Compare) satisfies the operator.
func (op Op) Match(cmp int) bool {
	switch op {
	case OpEq:
		return cmp == 0
	case OpNe:
		return cmp != 0
	case OpLt:
		return cmp < 0
	case OpLe:
		return cmp <= 0
	case OpGe:
		return cmp >= 0
	case OpGt:
		return cmp > 0
	default:
		return false
	}
}

// Invert returns the inverted operator, using the bidirectional rules
// Eq<->Ne, Lt<->Ge and Le<->Gt. An operator and its inverse never match
// the same comparison result.
func (op Op) Invert() Op {
	switch op {
	case OpEq:
		return OpNe
	case OpNe:
		return OpEq
	case OpLt:
		return OpGe
	case OpLe:
		return OpGt
	case OpGe:
		return OpLt
	default:
		return OpLe
	}
}

// Opposite returns the opposite operator, using the bidirectional rules
// Eq<->Ne, Lt<->Gt and Le<->Ge.
func (op Op) Opposite() Op {
	switch op {
	case OpEq:
		return OpNe
	case OpNe:
		return OpEq
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGe:
		return OpLe
	default:
		return OpLt
	}
}

// Flip returns the flipped operator, using the bidirectional rules Lt<->Gt
// and Le<->Ge. Other operators are returned as is. Flipping is useful when
// the two operands of a comparison swap places.
func (op Op) Flip() Op {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGe:
		return OpLe
	case OpGt:
		return OpLt
	default:
		return op
	}
}

// Sign returns the textual sign for the operator, e.g. ">=" for OpGe.
func (op Op) Sign() string {
	switch op {
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpGt:
		return ">"
	default:
		return ""
	}
}

func (op Op) String() string {
	return op.Sign()
}

// ParseOp parses a textual comparison operator sign into an Op.
// "=" is accepted as an alias for "==".
func ParseOp(s string) (Op, error) {
	switch s {
	case "==", "=":
		return OpEq, nil
	case "!=":
		return OpNe, nil
	case "<":
		return OpLt, nil
	case "<=":
		return OpLe, nil
	case ">=":
		return OpGe, nil
	case ">":
		return OpGt, nil
	default:
		return 0, fmt.Errorf("invalid comparison operator: %q", s)
	}
}
