package goap

// This file mirrors dogoap/src/simple.rs: small convenience constructors
// for the common case of a single-mutator, no-precondition action. They
// stay in the core package rather than a separate ergonomics layer
// because dogoap ships them the same way — inside the crate, not behind
// a derive macro.

// NewSetAction builds an action named name whose sole effect sets key to
// value, cost 1.
func NewSetAction(name, key string, value Datum) Action {
	return NewAction(name).WithMutator(Set(key, value))
}

// NewIncrementAction builds an action named name whose sole effect
// increments key by value, cost 1.
func NewIncrementAction(name, key string, value Datum) Action {
	return NewAction(name).WithMutator(Increment(key, value))
}

// NewDecrementAction builds an action named name whose sole effect
// decrements key by value, cost 1.
func NewDecrementAction(name, key string, value Datum) Action {
	return NewAction(name).WithMutator(Decrement(key, value))
}

// NewMultiSetAction builds an action named name that sets every key in
// sets to its paired value in a single effect, cost 1, matching dogoap's
// simple_multi_mutate_action.
func NewMultiSetAction(name string, sets ...KeyDatum) Action {
	effect := NewEffect(name)
	for _, kd := range sets {
		effect = effect.WithMutator(Set(kd.Key, kd.Value))
	}
	return Action{Key: name, Effects: []Effect{effect}}
}
