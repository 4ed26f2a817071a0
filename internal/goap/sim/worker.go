package sim

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"upside-down-research.com/oss/goap-core/internal/goap"
)

// slowPlanThreshold mirrors bevy_dogoap's own 10ms warning threshold in
// create_planner_tasks: search is usually sub-millisecond, but a large
// action set or deep plan can take long enough to be worth flagging.
const slowPlanThreshold = 10 * time.Millisecond

// planJob is the async handle standing in for bevy_dogoap's paired
// IsPlanning marker and PlanReceiver component: while it's attached to a
// Planner, a search is running somewhere off-thread, and result is a
// single-slot channel the search result lands on exactly once.
type planJob struct {
	result chan PlanResult
}

// PlanResult is what a search attempt against a planner's goal list
// produces: the ordered effects of the first goal Search could satisfy,
// or Found=false if none of the planner's goals were reachable.
type PlanResult struct {
	Effects []goap.Effect
	Found   bool
}

// planSnapshot is the immutable copy of planner state a worker searches
// against, taken at request time so the search never races a concurrent
// StateSync write.
type planSnapshot struct {
	entity  EntityID
	state   goap.State
	actions []goap.Action
	goals   []goap.Goal
}

// WorkerPool runs planning searches off the simulation's tick thread,
// bounding how many run concurrently. It is this repo's equivalent of
// bevy_dogoap's AsyncComputeTaskPool path: a bounded, asynchronous,
// non-blocking-to-the-caller job runner, minus the Bevy task scheduler.
type WorkerPool struct {
	sem   *semaphore.Weighted
	group *errgroup.Group
	ctx   context.Context
}

// NewWorkerPool creates a pool allowing at most capacity concurrent
// searches. Once ctx is cancelled, a job still waiting for a free slot
// gives up and reports no plan; a search already running is not
// interrupted.
func NewWorkerPool(ctx context.Context, capacity int64) *WorkerPool {
	group, groupCtx := errgroup.WithContext(ctx)
	return &WorkerPool{
		sem:   semaphore.NewWeighted(capacity),
		group: group,
		ctx:   groupCtx,
	}
}

// Submit starts a search for snapshot's goals, in order, returning
// immediately with a job handle whose result channel receives exactly
// one PlanResult once the search completes. The caller is responsible
// for polling it (see PlanCollector) rather than blocking on it.
func (wp *WorkerPool) Submit(snapshot planSnapshot) *planJob {
	job := &planJob{result: make(chan PlanResult, 1)}

	wp.group.Go(func() error {
		if err := wp.sem.Acquire(wp.ctx, 1); err != nil {
			job.result <- PlanResult{Found: false}
			return nil
		}
		defer wp.sem.Release(1)

		start := time.Now()
		for _, goal := range snapshot.goals {
			path, _, ok := goap.Search(snapshot.state, snapshot.actions, &goal)
			if !ok {
				continue
			}
			if elapsed := time.Since(start); elapsed > slowPlanThreshold {
				log.Warn("planning duration exceeded threshold",
					"entity", snapshot.entity,
					"goal", goal.Name,
					"duration", elapsed,
					"steps", len(path),
				)
			}
			observePlanDuration(time.Since(start))
			job.result <- PlanResult{Effects: goap.GetEffectsFromPlan(path), Found: true}
			return nil
		}
		observePlanDuration(time.Since(start))
		job.result <- PlanResult{Found: false}
		return nil
	})

	return job
}

// Wait blocks until every job ever submitted to the pool has finished.
// Intended for clean shutdown, not for per-job synchronization.
func (wp *WorkerPool) Wait() error {
	return wp.group.Wait()
}
