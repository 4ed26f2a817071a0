package goap

// Effect is a named bundle of mutators plus a cost and the resulting
// state. ResultingState is only meaningful inside a search node, where it
// stores the state after applying Mutators to the predecessor's state;
// an Action's template effect carries an empty ResultingState.
type Effect struct {
	ActionName     string
	Mutators       []Mutator
	ResultingState State
	Cost           uint64
}

// NewEffect creates an effect template for the given action name, cost 1,
// and no mutators yet.
func NewEffect(actionName string) Effect {
	return Effect{ActionName: actionName, Mutators: nil, ResultingState: nil, Cost: 1}
}

// WithMutator appends a mutator and returns the effect, for fluent
// construction.
func (e Effect) WithMutator(m Mutator) Effect {
	e.Mutators = append(e.Mutators, m)
	return e
}

// WithCost sets the effect's cost and returns the effect.
func (e Effect) WithCost(cost uint64) Effect {
	e.Cost = cost
	return e
}

// apply runs the effect's mutators against a clone of predecessor and
// returns a new Effect carrying that resulting state, leaving predecessor
// untouched.
func (e Effect) apply(predecessor State) Effect {
	next := predecessor.Clone()
	for _, m := range e.Mutators {
		m.Apply(next)
	}
	return Effect{
		ActionName:     e.ActionName,
		Mutators:       e.Mutators,
		ResultingState: next,
		Cost:           e.Cost,
	}
}
