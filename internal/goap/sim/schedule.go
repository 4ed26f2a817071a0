package sim

import (
	"time"

	channerics "github.com/niceyeti/channerics/channels"
)

// Scheduler drives the four-phase tick — StateSync, then a host-supplied
// RequestGoals callback (deciding which entities need RequestPlan this
// tick), then CollectPlans, then StepPlan for every planner — at a fixed
// resolution, stopping when done is closed. It is this repo's stand-in
// for Bevy's own system schedule, minus the ECS: callers who want finer
// control should just call StateSync/RequestPlan/CollectPlans/StepPlan
// themselves instead of using a Scheduler.
type Scheduler struct {
	planners map[EntityID]*Planner
	pool     *WorkerPool
	// RequestGoals is invoked once per tick, before CollectPlans, so the
	// host can call RequestPlan on whichever planners it decides need a
	// fresh plan this tick (idle entities, entities whose current plan
	// emptied out, and so on).
	RequestGoals func(planners map[EntityID]*Planner, pool *WorkerPool)
}

// NewScheduler creates a Scheduler over planners, submitting planning
// jobs to pool.
func NewScheduler(planners map[EntityID]*Planner, pool *WorkerPool) *Scheduler {
	return &Scheduler{planners: planners, pool: pool}
}

// Run ticks every resolution until done is closed, returning the first
// error any phase reports.
func (s *Scheduler) Run(done <-chan struct{}, resolution time.Duration) error {
	ticker := channerics.NewTicker(done, resolution)
	for {
		select {
		case <-done:
			return nil
		case <-ticker:
			if err := s.Tick(); err != nil {
				return err
			}
		}
	}
}

// Tick runs one pass of the schedule: sync, request, collect, step.
func (s *Scheduler) Tick() error {
	if err := StateSync(s.planners); err != nil {
		return err
	}
	if s.RequestGoals != nil {
		s.RequestGoals(s.planners, s.pool)
	}
	if err := CollectPlans(s.planners); err != nil {
		return err
	}
	for _, p := range s.planners {
		StepPlan(p)
	}
	return nil
}
