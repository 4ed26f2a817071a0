package sim

import "upside-down-research.com/oss/goap-core/internal/goap"

// DatumMirror copies one piece of simulation state (a component field, a
// resource, whatever the host models) into the planner's symbolic State
// each tick. A Planner is built from a set of these; StateSync re-reads
// them every tick so the planner never searches against stale data.
type DatumMirror interface {
	// Key is the state key this mirror owns. Two mirrors on the same
	// Planner must not share a key.
	Key() string
	// Value reads the current value to mirror into state.
	Value() goap.Datum
}

// ActionDescriptor is the host-side counterpart of a goap.Action: it
// knows how to mark an entity as "currently attempting this action" and
// how to clear that marker, however the host represents that (a
// component, a flag, a running goroutine). The catalogue a Planner is
// built with must have one ActionDescriptor per Action name the planner
// can ever plan with.
type ActionDescriptor interface {
	// Name is the Action.Key this descriptor executes.
	Name() string
	// Attach marks entity as now attempting this action.
	Attach(entity EntityID)
	// Detach clears that marker. Safe to call when not attached.
	Detach(entity EntityID)
}

// Plan is the signal type naming an entity to plan for. Nothing in this
// package consumes it; RequestPlan is called with the Planner directly.
type Plan struct {
	Entity EntityID
}
