package goap

import "fmt"

// Kind identifies which variant of Datum is populated.
type Kind uint8

const (
	// KindBool holds a boolean value.
	KindBool Kind = iota
	// KindI64 holds a signed integer value.
	KindI64
	// KindF64 holds a floating point value.
	KindF64
	// KindEnum holds a non-negative ordinal for a user-defined enum.
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindI64:
		return "i64"
	case KindF64:
		return "f64"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Datum is a tagged scalar value that inhabits a State. Exactly one field
// is meaningful, selected by Kind.
type Datum struct {
	Kind Kind
	B    bool
	I    int64
	F    float64
	E    uint64
}

// Bool constructs a boolean Datum.
func Bool(v bool) Datum { return Datum{Kind: KindBool, B: v} }

// I64 constructs an integer Datum.
func I64(v int64) Datum { return Datum{Kind: KindI64, I: v} }

// F64 constructs a floating point Datum.
func F64(v float64) Datum { return Datum{Kind: KindF64, F: v} }

// Enum constructs an enum ordinal Datum.
func Enum(v uint64) Datum { return Datum{Kind: KindEnum, E: v} }

// Equal reports whether two datums hold the same tag and value.
//
// Cross-tag comparisons are a programming error in the calling code; this
// kernel treats them as "not equal" rather than panicking, so a stray
// mismatched-type comparison fails a precondition instead of crashing the
// planner outright. Implementers of other cores MAY choose to panic
// instead — this repo pins "not equal" and tests it.
func (d Datum) Equal(other Datum) bool {
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case KindBool:
		return d.B == other.B
	case KindI64:
		return d.I == other.I
	case KindF64:
		return d.F == other.F
	case KindEnum:
		return d.E == other.E
	default:
		return false
	}
}

// Less reports whether d orders strictly before other within the same Kind.
// Cross-tag comparisons return false, consistent with Equal's "not equal"
// policy for mismatched tags.
func (d Datum) Less(other Datum) bool {
	if d.Kind != other.Kind {
		return false
	}
	switch d.Kind {
	case KindI64:
		return d.I < other.I
	case KindF64:
		return d.F < other.F
	case KindEnum:
		return d.E < other.E
	case KindBool:
		return !d.B && other.B
	default:
		return false
	}
}

// GreaterThanEquals reports d >= other within the same Kind.
func (d Datum) GreaterThanEquals(other Datum) bool {
	return d.Equal(other) || other.Less(d)
}

// LessThanEquals reports d <= other within the same Kind.
func (d Datum) LessThanEquals(other Datum) bool {
	return d.Equal(other) || d.Less(other)
}

// Distance is the heuristic's per-requirement estimate of how far d is
// from target: numeric types use the absolute difference (cast to a
// non-negative integer, saturating at 0), and bool/enum use 0/1 for
// equal/unequal.
func (d Datum) Distance(target Datum) uint64 {
	if d.Kind != target.Kind {
		// Cross-tag: a fixed distance of 1, like an unequal bool or enum.
		return 1
	}
	switch d.Kind {
	case KindI64:
		diff := d.I - target.I
		if diff < 0 {
			diff = -diff
		}
		return uint64(diff)
	case KindF64:
		diff := d.F - target.F
		if diff < 0 {
			diff = -diff
		}
		return uint64(diff)
	case KindBool:
		if d.B == target.B {
			return 0
		}
		return 1
	case KindEnum:
		if d.E == target.E {
			return 0
		}
		return 1
	default:
		return 0
	}
}

// String renders the Datum for logs and diagnostics.
func (d Datum) String() string {
	switch d.Kind {
	case KindBool:
		return fmt.Sprintf("%t", d.B)
	case KindI64:
		return fmt.Sprintf("%d", d.I)
	case KindF64:
		return fmt.Sprintf("%g", d.F)
	case KindEnum:
		return fmt.Sprintf("enum(%d)", d.E)
	default:
		return "<invalid datum>"
	}
}
