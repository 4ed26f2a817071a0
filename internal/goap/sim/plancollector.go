package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/goap-core/internal/goap"
)

// CollectPlans polls every planner with an outstanding job, exactly
// once, without blocking — the Go equivalent of handle_planner_tasks
// draining a crossbeam Receiver with try_recv. A planner with no
// outstanding job is skipped entirely; this function never calls
// RequestPlan itself.
//
// Adoption keeps the current plan's object identity (and, by extension,
// planner.CurrentAction) untouched when the new result names the exact
// same action sequence already queued, so PlanStep never sees spurious
// churn from a planner re-confirming work it already decided to do —
// the same continuity handle_planner_tasks preserves by only clearing
// current_plan when it actually differs.
func CollectPlans(planners map[EntityID]*Planner) error {
	for id, p := range planners {
		if !p.IsPlanning() {
			continue
		}

		select {
		case result, ok := <-p.job.result:
			if !ok {
				return fmt.Errorf("sim: plan channel disconnected for entity %s", id)
			}
			p.job = nil
			plansInFlight.Dec()
			adopt(p, result)
		default:
			// Not ready yet; leave the job attached and try again next tick.
		}
	}
	return nil
}

func adopt(p *Planner, result PlanResult) {
	if !result.Found {
		log.Warn("didn't find any plan for entity's goals", "entity", p.Entity)
		p.CurrentAction = nil
		p.CurrentPlan = nil
		plansCleared.Inc()
		return
	}

	names := actionNames(result.Effects)
	if sameNames(p.CurrentPlan, names) {
		return
	}

	log.Debug("current plan changed", "entity", p.Entity, "steps", len(names))
	p.CurrentPlan = names
	p.sequence++
	plansAdopted.Inc()
}

func actionNames(effects []goap.Effect) []string {
	names := make([]string, len(effects))
	for i, e := range effects {
		names[i] = e.ActionName
	}
	return names
}

func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
