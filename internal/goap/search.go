package goap

import "container/heap"

// Strategy selects the search algorithm make_plan_with_strategy runs. Only
// StrategyStartToGoal exists today; the type is kept extensible because
// dogoap's own PlanningStrategy enum is, but this repo implements exactly
// the one variant the spec requires.
type Strategy uint8

const (
	// StrategyStartToGoal begins at the current state and finds the
	// lowest-cost path to a state satisfying the goal.
	StrategyStartToGoal Strategy = iota
)

// Search runs the default strategy (StartToGoal). It is the convenience
// entry point most callers want; SearchWithStrategy is the one that takes
// an explicit Strategy.
func Search(start State, actions []Action, goal *Goal) (path []Node, cost uint64, ok bool) {
	return SearchWithStrategy(StrategyStartToGoal, start, actions, goal)
}

// SearchWithStrategy is A* over the state space reachable from start by
// applying actions, searching for a state satisfying goal. The returned
// path's first node is always the Initial node wrapping start; its last
// node's state satisfies goal. cost is the sum of the costs of every
// Applied node on the path. ok is false when no plan exists.
//
// The heuristic sums, per goal requirement, the Datum distance from a
// node's state to the requirement's target (see Goal.Distance); it is
// admissible only when every action's cost is at least 1 per unit of
// numeric progress it makes toward a numeric goal, and is always
// monotonic for bool/enum requirements. Under that regime the returned
// path is cost-optimal; otherwise it is best-effort, exactly as
// spec section 4.1 describes.
func SearchWithStrategy(strategy Strategy, start State, actions []Action, goal *Goal) (path []Node, cost uint64, ok bool) {
	switch strategy {
	case StrategyStartToGoal:
		return searchStartToGoal(start, actions, goal)
	default:
		return nil, 0, false
	}
}

type searchNode struct {
	path     []Node
	gCost    uint64
	hCost    uint64
	sequence int // insertion order, for stable tie-breaking
	index    int // heap.Interface bookkeeping
}

func (n *searchNode) fCost() uint64 {
	return n.gCost + n.hCost
}

func (n *searchNode) state() State {
	return n.path[len(n.path)-1].State()
}

type openSet []*searchNode

func (os openSet) Len() int { return len(os) }

func (os openSet) Less(i, j int) bool {
	fi, fj := os[i].fCost(), os[j].fCost()
	if fi != fj {
		return fi < fj
	}
	return os[i].sequence < os[j].sequence
}

func (os openSet) Swap(i, j int) {
	os[i], os[j] = os[j], os[i]
	os[i].index = i
	os[j].index = j
}

func (os *openSet) Push(x any) {
	n := x.(*searchNode)
	n.index = len(*os)
	*os = append(*os, n)
}

func (os *openSet) Pop() any {
	old := *os
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	*os = old[:last]
	return n
}

func searchStartToGoal(start State, actions []Action, goal *Goal) (path []Node, cost uint64, ok bool) {
	startPath := []Node{InitialNode(start.Clone())}

	if goal.IsSatisfied(start) {
		return startPath, 0, true
	}

	var sequence int
	nextSequence := func() int {
		sequence++
		return sequence
	}

	pq := &openSet{}
	heap.Init(pq)
	heap.Push(pq, &searchNode{
		path:     startPath,
		gCost:    0,
		hCost:    goal.Distance(start),
		sequence: nextSequence(),
	})

	visited := make(map[string]bool)

	for pq.Len() > 0 {
		current := heap.Pop(pq).(*searchNode)
		key := current.state().String()
		if visited[key] {
			continue
		}
		visited[key] = true

		if goal.IsSatisfied(current.state()) {
			return current.path, current.gCost, true
		}

		for _, action := range actions {
			if len(action.Effects) == 0 {
				continue
			}
			if !action.preconditionsHold(current.state()) {
				continue
			}

			applied := action.Effects[0].apply(current.state())
			newKey := applied.ResultingState.String()
			if visited[newKey] {
				continue
			}

			newPath := make([]Node, len(current.path)+1)
			copy(newPath, current.path)
			newPath[len(current.path)] = AppliedNode(applied)

			heap.Push(pq, &searchNode{
				path:     newPath,
				gCost:    current.gCost + applied.Cost,
				hCost:    goal.Distance(applied.ResultingState),
				sequence: nextSequence(),
			})
		}
	}

	return nil, 0, false
}

// GetEffectsFromPlan extracts, in order, the Effect carried by every
// Applied node on path — the Initial node contributes nothing. Used to
// turn a search path into the ordered list of action names a Planner
// queues up, matching dogoap's get_effects_from_plan.
func GetEffectsFromPlan(path []Node) []Effect {
	effects := make([]Effect, 0, len(path))
	for _, node := range path {
		if effect, ok := node.Effect(); ok {
			effects = append(effects, effect)
		}
	}
	return effects
}
