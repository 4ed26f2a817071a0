// Command goap-demo runs a small multi-resource planning scenario
// through the sim package's tick loop, logging every plan adoption and
// action attempt so the planner/search kernel in internal/goap can be
// watched end to end.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"upside-down-research.com/oss/goap-core/internal/config"
	"upside-down-research.com/oss/goap-core/internal/goap"
	"upside-down-research.com/oss/goap-core/internal/goap/sim"
)

var CLI struct {
	Scenario string `help:"Path to a scenario YAML file; omit to run the built-in default." type:"path"`
	Ticks    int    `help:"Override the scenario's tick count (0 keeps the scenario's own value)."`
	Verbose  bool   `help:"Enable debug logging." short:"v"`
}

func main() {
	log.SetLevel(log.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("goap-demo"),
		kong.Description("Runs a GOAP planning scenario through the sim tick loop."),
		kong.UsageOnError(),
	)

	if CLI.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	scenario, err := config.LoadScenario(CLI.Scenario)
	if err != nil {
		log.Error("failed to load scenario", "error", err)
		os.Exit(1)
	}
	if CLI.Ticks > 0 {
		scenario.Ticks = CLI.Ticks
	}

	if err := run(scenario); err != nil {
		log.Error("demo run failed", "error", err)
		os.Exit(1)
	}
}

// worldEntity bundles one entity's planner with the live goap.State it
// both plans against and executes actions against — this demo has no
// separate "real" component store, so StateSync just mirrors a state
// back onto itself.
type worldEntity struct {
	id      sim.EntityID
	world   goap.State
	planner *sim.Planner
}

// identityMirror reads a single key straight out of an entity's live
// world state, making StateSync a no-op refresh for this demo host.
type identityMirror struct {
	key   string
	world goap.State
}

func (m identityMirror) Key() string { return m.key }

func (m identityMirror) Value() goap.Datum {
	v, _ := m.world.Get(m.key)
	return v
}

// instantAction applies its goap.Action's effect directly to the
// entity's world state the moment it's attached, then immediately tells
// the planner the action is complete. Real hosts would instead run a
// multi-tick system while the marker is attached and call
// CompleteCurrentAction only once the work finishes; this demo's
// actions are instantaneous so there's no reason to stretch that out.
type instantAction struct {
	action goap.Action
	we     *worldEntity
}

func (a *instantAction) Name() string { return a.action.Key }

func (a *instantAction) Attach(entity sim.EntityID) {
	log.Info("executing action", "entity", entity, "action", a.action.Key)
	if len(a.action.Effects) > 0 {
		for _, m := range a.action.Effects[0].Mutators {
			m.Apply(a.we.world)
		}
	}
	a.we.planner.CompleteCurrentAction()
}

func (a *instantAction) Detach(entity sim.EntityID) {}

func run(scenario *config.Scenario) error {
	if len(scenario.Entities) == 0 {
		return fmt.Errorf("scenario has no entities")
	}

	planners := make(map[sim.EntityID]*sim.Planner, len(scenario.Entities))
	worlds := make(map[sim.EntityID]*worldEntity, len(scenario.Entities))

	for _, spec := range scenario.Entities {
		id := sim.NewEntityID()
		world := goap.NewState()
		for key, datumSpec := range spec.Datums {
			datum, err := datumSpec.ToDatum()
			if err != nil {
				return fmt.Errorf("entity %q: %w", spec.Name, err)
			}
			world.Set(key, datum)
		}

		goals := make([]goap.Goal, 0, len(spec.Goals))
		for _, g := range spec.Goals {
			goal, err := g.ToGoal()
			if err != nil {
				return fmt.Errorf("entity %q: %w", spec.Name, err)
			}
			goals = append(goals, goal)
		}

		actions := make([]goap.Action, 0, len(spec.Actions))
		for _, a := range spec.Actions {
			action, err := a.ToAction()
			if err != nil {
				return fmt.Errorf("entity %q: %w", spec.Name, err)
			}
			actions = append(actions, action)
		}

		mirrors := make([]sim.DatumMirror, 0, len(spec.Datums))
		for key := range spec.Datums {
			mirrors = append(mirrors, identityMirror{key: key, world: world})
		}

		we := &worldEntity{id: id, world: world}
		catalogue := make(map[string]sim.ActionDescriptor, len(actions))
		for _, a := range actions {
			catalogue[a.Key] = &instantAction{action: a, we: we}
		}

		planner := sim.NewPlanner(id, mirrors, goals, catalogue, actions)
		we.planner = planner
		planners[id] = planner
		worlds[id] = we

		log.Info("registered entity", "name", spec.Name, "entity", id, "goals", len(goals), "actions", len(actions))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	capacity := scenario.WorkerCapacity
	if capacity <= 0 {
		capacity = 1
	}
	pool := sim.NewWorkerPool(ctx, capacity)

	scheduler := sim.NewScheduler(planners, pool)
	scheduler.RequestGoals = func(planners map[sim.EntityID]*sim.Planner, pool *sim.WorkerPool) {
		for _, p := range planners {
			if !p.IsPlanning() && len(p.CurrentPlan) == 0 && p.CurrentAction == nil {
				sim.RequestPlan(p, pool)
			}
		}
	}

	resolution := time.Duration(scenario.TickResolutionMS) * time.Millisecond
	if resolution <= 0 {
		resolution = 50 * time.Millisecond
	}

	for i := 0; i < scenario.Ticks; i++ {
		if ctx.Err() != nil {
			break
		}
		if err := scheduler.Tick(); err != nil {
			return fmt.Errorf("tick %d: %w", i, err)
		}
		time.Sleep(resolution)
	}

	cancel()
	if err := pool.Wait(); err != nil {
		log.Warn("worker pool reported an error during shutdown", "error", err)
	}

	for id, we := range worlds {
		log.Info("final state", "entity", id, "state", we.world.String())
	}
	return nil
}
