package goap

// Node is either the initial State a search started from, or the State
// reached by applying an Effect. Node.State always returns the state
// to inspect, regardless of which variant it is.
type Node struct {
	effect *Effect // nil for the Initial node
	state  State
}

// InitialNode wraps a starting state as the first node of a path.
func InitialNode(state State) Node {
	return Node{state: state}
}

// AppliedNode wraps an effect as a non-initial node of a path.
func AppliedNode(effect Effect) Node {
	return Node{effect: &effect, state: effect.ResultingState}
}

// IsInitial reports whether this node is the path's starting state.
func (n Node) IsInitial() bool {
	return n.effect == nil
}

// State returns the state this node represents.
func (n Node) State() State {
	return n.state
}

// Effect returns the effect that produced this node and true, or the
// zero Effect and false if this is the Initial node.
func (n Node) Effect() (Effect, bool) {
	if n.effect == nil {
		return Effect{}, false
	}
	return *n.effect, true
}
