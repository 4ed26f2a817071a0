package goap

import "fmt"

// Requirement pairs a state key with the Compare a Goal needs satisfied.
type Requirement struct {
	Key     string
	Compare Compare
}

// Goal is an ordered set of (key, Compare) requirements a State must
// satisfy. The order of Requirements doesn't affect whether a state
// satisfies the goal, but goals themselves are tried in the order a
// Planner lists them (see Planner.Goals), and that ordering is load
// bearing: the first goal with a plan wins, there is no cross-goal
// cost comparison. This mirrors dogoap's Goal, whose requirements are a
// BTreeMap — ordered for determinism, not for priority.
type Goal struct {
	Name         string
	Requirements []Requirement
}

// NewGoal creates an empty, named goal.
func NewGoal(name string) Goal {
	return Goal{Name: name}
}

// WithRequirement appends a requirement and returns the goal.
func (g Goal) WithRequirement(key string, cmp Compare) Goal {
	g.Requirements = append(g.Requirements, Requirement{Key: key, Compare: cmp})
	return g
}

// FromRequirements builds a Goal from a ready-made requirement list,
// matching dogoap's Goal::from_reqs.
func FromRequirements(name string, reqs ...Requirement) Goal {
	return Goal{Name: name, Requirements: append([]Requirement(nil), reqs...)}
}

// IsSatisfied reports whether every requirement holds against state. A
// requirement referencing a key absent from state is a programming
// error and panics identifying the key, matching dogoap's is_goal.
func (g *Goal) IsSatisfied(state State) bool {
	for _, req := range g.Requirements {
		if !req.Compare.Evaluate(state.mustGet(req.Key)) {
			return false
		}
	}
	return true
}

// Distance is the heuristic estimate of how far state is from satisfying
// g: the sum, over every requirement, of the Datum distance from
// state's value to the requirement's target, with a penalty of 1 for
// each requirement whose key is absent from state.
func (g *Goal) Distance(state State) uint64 {
	return state.distanceTo(g)
}

func (g Goal) String() string {
	return fmt.Sprintf("Goal(%s, %d requirements)", g.Name, len(g.Requirements))
}
