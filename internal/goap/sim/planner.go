package sim

import "upside-down-research.com/oss/goap-core/internal/goap"

// Planner is the per-entity planning state: the symbolic view of an
// entity mirrored from its simulation data, the goals it pursues in
// order, the catalogue of actions it may plan with, and the plan (if
// any) it is currently working through. It is the sim package's
// equivalent of bevy_dogoap's Planner component.
type Planner struct {
	Entity EntityID

	// State is kept current by StateSync, reading from Mirrors.
	State goap.State
	// Goals are tried in order; the first one Search can satisfy wins.
	// There is no cross-goal cost comparison — see goap.Goal's doc.
	Goals []goap.Goal

	// Actions is the flattened list passed to goap.Search. Catalogue
	// holds the host-side descriptor for each of those actions, keyed
	// by name, for CurrentPlan dispatch.
	Actions   []goap.Action
	Catalogue map[string]ActionDescriptor

	// Mirrors sync into State every tick; StateSync errors if empty.
	Mirrors []DatumMirror

	// CurrentAction is the action the entity is presently attempting,
	// or nil if none. CurrentPlan is the remaining queue of action
	// names, CurrentAction (if set) having already been popped off it.
	CurrentAction *goap.Action
	CurrentPlan   []string

	// actionAttached mirrors whether CurrentAction's ActionDescriptor is
	// presently attached to Entity — the Go stand-in for a host query
	// testing "does this entity have an ActionComponent". PlanStep only
	// pops the next queued action once this is false; the host clears
	// it via CompleteCurrentAction when it decides the action is done.
	actionAttached bool

	// byName indexes Actions by Key, for CurrentPlan dispatch without a
	// linear scan each tick.
	byName map[string]goap.Action

	// job is non-nil while an async planning request is outstanding,
	// standing in for bevy_dogoap's IsPlanning marker plus its
	// PlanReceiver component: both are attached and removed together.
	job *planJob

	// sequence increments every time a freshly returned plan is
	// adopted, so callers (tests, diagnostics) can observe whether a
	// given PlanCollector pass actually changed anything.
	sequence uint64
}

// NewPlanner builds a Planner for entity from its mirrors, goals, and
// action catalogue. State starts populated from the mirrors' current
// values, matching bevy_dogoap's Planner::new.
func NewPlanner(entity EntityID, mirrors []DatumMirror, goals []goap.Goal, catalogue map[string]ActionDescriptor, actions []goap.Action) *Planner {
	byName := make(map[string]goap.Action, len(actions))
	for _, a := range actions {
		byName[a.Key] = a
	}

	p := &Planner{
		Entity:    entity,
		State:     goap.NewState(),
		Goals:     goals,
		Actions:   actions,
		Catalogue: catalogue,
		Mirrors:   mirrors,
		byName:    byName,
	}
	for _, m := range mirrors {
		p.State.Set(m.Key(), m.Value())
	}
	return p
}

// CompleteCurrentAction tells the planner that whatever is executing
// CurrentAction has finished, so PlanStep is free to dequeue the next
// step (or re-attach the same action if the plan hasn't advanced past
// it). It does not itself detach the action's marker — the host does
// that as part of deciding the action is complete.
func (p *Planner) CompleteCurrentAction() {
	p.actionAttached = false
}

// IsPlanning reports whether an async planning job is outstanding for
// this entity.
func (p *Planner) IsPlanning() bool {
	return p.job != nil
}

// Sequence is the number of plans adopted so far.
func (p *Planner) Sequence() uint64 {
	return p.sequence
}
