package goap

// CompareOp identifies which comparison a Compare performs.
type CompareOp uint8

const (
	// OpEquals tests for equality.
	OpEquals CompareOp = iota
	// OpNotEquals tests for inequality.
	OpNotEquals
	// OpGreaterThanEquals tests value >= target.
	OpGreaterThanEquals
	// OpLessThanEquals tests value <= target.
	OpLessThanEquals
)

// Compare is a comparison predicate applied to a single Datum: one of
// Equals, NotEquals, GreaterThanEquals, LessThanEquals against a target
// value.
type Compare struct {
	Op     CompareOp
	Target Datum
}

// Equals builds an Equals comparison.
func Equals(target Datum) Compare { return Compare{Op: OpEquals, Target: target} }

// NotEquals builds a NotEquals comparison.
func NotEquals(target Datum) Compare { return Compare{Op: OpNotEquals, Target: target} }

// GreaterThanEquals builds a GreaterThanEquals comparison.
func GreaterThanEquals(target Datum) Compare {
	return Compare{Op: OpGreaterThanEquals, Target: target}
}

// LessThanEquals builds a LessThanEquals comparison.
func LessThanEquals(target Datum) Compare {
	return Compare{Op: OpLessThanEquals, Target: target}
}

// Evaluate applies the comparison to value.
func (c Compare) Evaluate(value Datum) bool {
	switch c.Op {
	case OpEquals:
		return value.Equal(c.Target)
	case OpNotEquals:
		return !value.Equal(c.Target)
	case OpGreaterThanEquals:
		return value.GreaterThanEquals(c.Target)
	case OpLessThanEquals:
		return value.LessThanEquals(c.Target)
	default:
		return false
	}
}

// compareValues is the package-level equivalent of dogoap's
// compare_values(comparison, value) free function, kept alongside the
// method for callers translating straight from the Rust source.
func compareValues(comparison Compare, value Datum) bool {
	return comparison.Evaluate(value)
}
