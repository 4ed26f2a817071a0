package sim

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// StepPlan dequeues the next action from planner's current plan and
// attaches its marker, the way execute_plan inserts an ActionComponent.
// If an action marker is already attached, StepPlan does nothing — the
// entity is still executing it. If the plan is empty, StepPlan logs and
// does nothing, matching execute_plan's "Seems there is nothing to be
// done" branch.
//
// An action name on the plan with no matching catalogue entry is a
// wiring bug — the plan was built from Actions but Catalogue doesn't
// cover them — and panics identifying the name, matching execute_plan's
// own unwrap_or_else(|| panic!(...)).
func StepPlan(planner *Planner) {
	if planner.actionAttached {
		return
	}

	if len(planner.CurrentPlan) == 0 {
		log.Debug("nothing to be done", "entity", planner.Entity)
		return
	}

	name := planner.CurrentPlan[0]
	planner.CurrentPlan = planner.CurrentPlan[1:]

	descriptor, ok := planner.Catalogue[name]
	if !ok {
		panic(fmt.Sprintf("sim: action %q not registered in planner's catalogue", name))
	}
	action, ok := planner.byName[name]
	if !ok {
		panic(fmt.Sprintf("sim: action %q not registered in planner's action list", name))
	}

	if planner.CurrentAction != nil && planner.CurrentAction.Key != name {
		// We were working towards a different action; detach every
		// descriptor rather than just the previous one, conservatively
		// avoiding a race with a marker the host hasn't cleared yet —
		// the same tradeoff execute_plan documents with its own WARN.
		for _, d := range planner.Catalogue {
			d.Detach(planner.Entity)
		}
	}

	descriptor.Attach(planner.Entity)
	planner.CurrentAction = &action
	planner.actionAttached = true
}
