package sim

import (
	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/goap-core/internal/goap"
)

// RequestPlan kicks off an async search for planner, the way triggering
// a Plan event does in bevy_dogoap. If planner is already planning, the
// request is ignored — bevy_dogoap's create_planner_tasks achieves the
// same thing via a Without<PlanReceiver> query filter; here it's an
// explicit check since there's no ECS query to filter with.
//
// Submitting snapshots a copy of planner's state, actions, and goals so
// the search the pool runs never observes a concurrent StateSync write.
func RequestPlan(planner *Planner, pool *WorkerPool) {
	if planner.IsPlanning() {
		log.Debug("planner already computing a plan, ignoring request", "entity", planner.Entity)
		return
	}

	snapshot := planSnapshot{
		entity:  planner.Entity,
		state:   planner.State.Clone(),
		actions: append([]goap.Action(nil), planner.Actions...),
		goals:   append([]goap.Goal(nil), planner.Goals...),
	}

	planner.job = pool.Submit(snapshot)
	plansInFlight.Inc()
}
