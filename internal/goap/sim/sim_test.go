package sim

import (
	"context"
	"testing"

	"upside-down-research.com/oss/goap-core/internal/goap"
)

type fakeMirror struct {
	key   string
	value goap.Datum
}

func (f fakeMirror) Key() string      { return f.key }
func (f fakeMirror) Value() goap.Datum { return f.value }

type fakeAction struct {
	name     string
	attached map[EntityID]bool
}

func newFakeAction(name string) *fakeAction {
	return &fakeAction{name: name, attached: make(map[EntityID]bool)}
}

func (f *fakeAction) Name() string              { return f.name }
func (f *fakeAction) Attach(entity EntityID)     { f.attached[entity] = true }
func (f *fakeAction) Detach(entity EntityID)     { delete(f.attached, entity) }
func (f *fakeAction) isAttached(e EntityID) bool { return f.attached[e] }

func TestStateSyncRequiresMirrors(t *testing.T) {
	entity := NewEntityID()
	planner := NewPlanner(entity, nil, nil, nil, nil)
	planners := map[EntityID]*Planner{entity: planner}

	if err := StateSync(planners); err == nil {
		t.Fatal("expected an error for a planner with no datum mirrors")
	}
}

func TestStateSyncMirrorsValues(t *testing.T) {
	entity := NewEntityID()
	mirror := fakeMirror{key: "energy", value: goap.I64(42)}
	planner := NewPlanner(entity, []DatumMirror{mirror}, nil, nil, nil)
	planners := map[EntityID]*Planner{entity: planner}

	if err := StateSync(planners); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := planner.State.Get("energy")
	if !ok || !v.Equal(goap.I64(42)) {
		t.Errorf("expected energy=42 after sync, got %v (ok=%v)", v, ok)
	}
}

func TestPlanStepMarkerDispatch(t *testing.T) {
	entity := NewEntityID()
	actA := goap.NewSetAction("a", "k", goap.I64(1))
	actB := goap.NewSetAction("b", "k", goap.I64(2))
	descA := newFakeAction("a")
	descB := newFakeAction("b")
	catalogue := map[string]ActionDescriptor{"a": descA, "b": descB}

	planner := NewPlanner(entity, nil, nil, catalogue, []goap.Action{actA, actB})
	planner.CurrentPlan = []string{"a", "b"}

	StepPlan(planner)
	if planner.CurrentAction == nil || planner.CurrentAction.Key != "a" {
		t.Fatalf("expected current action 'a', got %+v", planner.CurrentAction)
	}
	if !descA.isAttached(entity) {
		t.Error("expected action 'a' descriptor to be attached")
	}
	if len(planner.CurrentPlan) != 1 || planner.CurrentPlan[0] != "b" {
		t.Fatalf("expected remaining plan ['b'], got %v", planner.CurrentPlan)
	}

	// Stepping again while 'a' is still attached must be a no-op.
	StepPlan(planner)
	if len(planner.CurrentPlan) != 1 {
		t.Fatalf("expected plan to stay at 1 step while action still attached, got %v", planner.CurrentPlan)
	}

	// Once the host signals completion, the next step should detach
	// every descriptor (conservatively) before attaching 'b'.
	planner.CompleteCurrentAction()
	StepPlan(planner)

	if descA.isAttached(entity) {
		t.Error("expected action 'a' descriptor to be detached once the plan moved on")
	}
	if !descB.isAttached(entity) {
		t.Error("expected action 'b' descriptor to be attached")
	}
	if planner.CurrentAction == nil || planner.CurrentAction.Key != "b" {
		t.Fatalf("expected current action 'b', got %+v", planner.CurrentAction)
	}
	if len(planner.CurrentPlan) != 0 {
		t.Fatalf("expected plan to be drained, got %v", planner.CurrentPlan)
	}
}

func TestPlanStepUnknownActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for an action missing from the catalogue")
		}
	}()
	entity := NewEntityID()
	planner := NewPlanner(entity, nil, nil, map[string]ActionDescriptor{}, nil)
	planner.CurrentPlan = []string{"ghost"}
	StepPlan(planner)
}

func TestPlanCollectorContinuity(t *testing.T) {
	entity := NewEntityID()
	planner := NewPlanner(entity, nil, nil, nil, nil)
	planner.CurrentPlan = []string{"eat"}

	job := &planJob{result: make(chan PlanResult, 1)}
	job.result <- PlanResult{
		Effects: []goap.Effect{{ActionName: "eat"}},
		Found:   true,
	}
	planner.job = job

	planners := map[EntityID]*Planner{entity: planner}
	if err := CollectPlans(planners); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if seq := planner.Sequence(); seq != 0 {
		t.Errorf("expected sequence to stay at 0 when the adopted plan is unchanged, got %d", seq)
	}
	if len(planner.CurrentPlan) != 1 || planner.CurrentPlan[0] != "eat" {
		t.Errorf("expected current plan to remain ['eat'], got %v", planner.CurrentPlan)
	}
	if planner.IsPlanning() {
		t.Error("expected the job handle to be cleared after collection")
	}
}

func TestPlanCollectorClearsOnNoPlan(t *testing.T) {
	entity := NewEntityID()
	planner := NewPlanner(entity, nil, nil, nil, nil)
	planner.CurrentPlan = []string{"eat"}
	actA := goap.NewSetAction("eat", "k", goap.I64(1))
	planner.CurrentAction = &actA

	job := &planJob{result: make(chan PlanResult, 1)}
	job.result <- PlanResult{Found: false}
	planner.job = job

	planners := map[EntityID]*Planner{entity: planner}
	if err := CollectPlans(planners); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if planner.CurrentAction != nil {
		t.Error("expected current action to be cleared when no plan is found")
	}
	if len(planner.CurrentPlan) != 0 {
		t.Error("expected current plan to be cleared when no plan is found")
	}
}

func TestRequestPlanIgnoresDuplicateWithinATick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	entity := NewEntityID()
	mirror := fakeMirror{key: "gold", value: goap.I64(0)}
	goal := goap.NewGoal("rich").WithRequirement("gold", goap.Equals(goap.I64(1)))
	earn := goap.NewIncrementAction("earn", "gold", goap.I64(1))

	planner := NewPlanner(entity, []DatumMirror{mirror}, []goap.Goal{goal}, nil, []goap.Action{earn})
	pool := NewWorkerPool(ctx, 2)

	RequestPlan(planner, pool)
	if !planner.IsPlanning() {
		t.Fatal("expected planner to be marked as planning after the first request")
	}
	firstJob := planner.job

	RequestPlan(planner, pool)
	if planner.job != firstJob {
		t.Error("expected a second request in the same tick to be ignored, not start a new job")
	}
}
