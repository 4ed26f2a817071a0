package goap

// MutatorOp identifies which transformation a Mutator performs.
type MutatorOp uint8

const (
	// MutatorSet overwrites (or creates) a key with a value.
	MutatorSet MutatorOp = iota
	// MutatorIncrement adds a value to an existing key.
	MutatorIncrement
	// MutatorDecrement subtracts a value from an existing key.
	MutatorDecrement
)

// Mutator is a single-key transformation to a State: Set, Increment, or
// Decrement. Set creates the key if it's absent. Increment and Decrement
// are no-ops if the key is absent — arithmetic mutators require the key
// to pre-exist, matching dogoap's apply_mutator, which only mutates
// through data.get_mut and silently skips a missing key.
type Mutator struct {
	Op    MutatorOp
	Key   string
	Value Datum
}

// Set builds a Set mutator.
func Set(key string, value Datum) Mutator { return Mutator{Op: MutatorSet, Key: key, Value: value} }

// Increment builds an Increment mutator.
func Increment(key string, value Datum) Mutator {
	return Mutator{Op: MutatorIncrement, Key: key, Value: value}
}

// Decrement builds a Decrement mutator.
func Decrement(key string, value Datum) Mutator {
	return Mutator{Op: MutatorDecrement, Key: key, Value: value}
}

// Apply executes the mutator against state, in place.
func (m Mutator) Apply(state State) {
	switch m.Op {
	case MutatorSet:
		state.Set(m.Key, m.Value)
	case MutatorIncrement:
		if current, ok := state.Get(m.Key); ok {
			state.Set(m.Key, addDatum(current, m.Value))
		}
	case MutatorDecrement:
		if current, ok := state.Get(m.Key); ok {
			state.Set(m.Key, subDatum(current, m.Value))
		}
	}
}

func addDatum(a, b Datum) Datum {
	switch a.Kind {
	case KindI64:
		return I64(a.I + b.I)
	case KindF64:
		return F64(a.F + b.F)
	case KindEnum:
		return Enum(a.E + b.E)
	default:
		return a
	}
}

func subDatum(a, b Datum) Datum {
	switch a.Kind {
	case KindI64:
		return I64(a.I - b.I)
	case KindF64:
		return F64(a.F - b.F)
	case KindEnum:
		if b.E > a.E {
			return Enum(0)
		}
		return Enum(a.E - b.E)
	default:
		return a
	}
}

// applyMutator is the free-function equivalent of dogoap's
// apply_mutator(data, mutator), for callers that prefer it.
func applyMutator(state State, m Mutator) { m.Apply(state) }
