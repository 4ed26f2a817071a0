// Package config loads the YAML scenario definitions that drive
// cmd/goap-demo: the entities, their starting datums, goals, and action
// catalogues for a single run of the simulation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"upside-down-research.com/oss/goap-core/internal/goap"
)

// Scenario is the full description of a demo run: how often to tick, how
// many workers may plan concurrently, and the entities to simulate.
type Scenario struct {
	Ticks            int          `yaml:"ticks"`
	TickResolutionMS int          `yaml:"tick_resolution_ms"`
	WorkerCapacity   int64        `yaml:"worker_capacity"`
	Entities         []EntitySpec `yaml:"entities"`
}

// EntitySpec describes one simulated entity's starting datums, the
// goals it pursues in order, and the actions it may plan with.
type EntitySpec struct {
	Name    string               `yaml:"name"`
	Datums  map[string]DatumSpec `yaml:"datums"`
	Goals   []GoalSpec           `yaml:"goals"`
	Actions []ActionSpec         `yaml:"actions"`
}

// DatumSpec is the YAML form of a goap.Datum: Kind selects which of the
// value fields is meaningful.
type DatumSpec struct {
	Kind string  `yaml:"kind"` // bool, i64, f64, enum
	Bool bool    `yaml:"bool,omitempty"`
	I64  int64   `yaml:"i64,omitempty"`
	F64  float64 `yaml:"f64,omitempty"`
	Enum uint64  `yaml:"enum,omitempty"`
}

// ToDatum converts the spec to a goap.Datum.
func (d DatumSpec) ToDatum() (goap.Datum, error) {
	switch d.Kind {
	case "bool":
		return goap.Bool(d.Bool), nil
	case "i64":
		return goap.I64(d.I64), nil
	case "f64":
		return goap.F64(d.F64), nil
	case "enum":
		return goap.Enum(d.Enum), nil
	default:
		return goap.Datum{}, fmt.Errorf("config: unknown datum kind %q", d.Kind)
	}
}

// CompareSpec is the YAML form of a goap.Compare.
type CompareSpec struct {
	Op     string    `yaml:"op"` // eq, neq, gte, lte
	Target DatumSpec `yaml:"target"`
}

// ToCompare converts the spec to a goap.Compare.
func (c CompareSpec) ToCompare() (goap.Compare, error) {
	target, err := c.Target.ToDatum()
	if err != nil {
		return goap.Compare{}, err
	}
	switch c.Op {
	case "eq":
		return goap.Equals(target), nil
	case "neq":
		return goap.NotEquals(target), nil
	case "gte":
		return goap.GreaterThanEquals(target), nil
	case "lte":
		return goap.LessThanEquals(target), nil
	default:
		return goap.Compare{}, fmt.Errorf("config: unknown compare op %q", c.Op)
	}
}

// RequirementSpec is the YAML form of a goap.Requirement.
type RequirementSpec struct {
	Key     string      `yaml:"key"`
	Compare CompareSpec `yaml:"compare"`
}

// GoalSpec is the YAML form of a goap.Goal.
type GoalSpec struct {
	Name         string            `yaml:"name"`
	Requirements []RequirementSpec `yaml:"requirements"`
}

// ToGoal converts the spec to a goap.Goal.
func (g GoalSpec) ToGoal() (goap.Goal, error) {
	goal := goap.NewGoal(g.Name)
	for _, r := range g.Requirements {
		cmp, err := r.Compare.ToCompare()
		if err != nil {
			return goap.Goal{}, fmt.Errorf("config: goal %q requirement %q: %w", g.Name, r.Key, err)
		}
		goal = goal.WithRequirement(r.Key, cmp)
	}
	return goal, nil
}

// MutatorSpec is the YAML form of a goap.Mutator.
type MutatorSpec struct {
	Op    string    `yaml:"op"` // set, increment, decrement
	Key   string    `yaml:"key"`
	Value DatumSpec `yaml:"value"`
}

// ToMutator converts the spec to a goap.Mutator.
func (m MutatorSpec) ToMutator() (goap.Mutator, error) {
	value, err := m.Value.ToDatum()
	if err != nil {
		return goap.Mutator{}, err
	}
	switch m.Op {
	case "set":
		return goap.Set(m.Key, value), nil
	case "increment":
		return goap.Increment(m.Key, value), nil
	case "decrement":
		return goap.Decrement(m.Key, value), nil
	default:
		return goap.Mutator{}, fmt.Errorf("config: unknown mutator op %q", m.Op)
	}
}

// PreconditionSpec is the YAML form of a goap.Precondition.
type PreconditionSpec struct {
	Key     string      `yaml:"key"`
	Compare CompareSpec `yaml:"compare"`
}

// ActionSpec is the YAML form of a goap.Action.
type ActionSpec struct {
	Name          string             `yaml:"name"`
	Cost          uint64             `yaml:"cost"`
	Preconditions []PreconditionSpec `yaml:"preconditions"`
	Mutators      []MutatorSpec      `yaml:"mutators"`
}

// ToAction converts the spec to a goap.Action.
func (a ActionSpec) ToAction() (goap.Action, error) {
	action := goap.NewAction(a.Name)
	for _, p := range a.Preconditions {
		cmp, err := p.Compare.ToCompare()
		if err != nil {
			return goap.Action{}, fmt.Errorf("config: action %q precondition %q: %w", a.Name, p.Key, err)
		}
		action = action.WithPrecondition(p.Key, cmp)
	}
	for _, m := range a.Mutators {
		mut, err := m.ToMutator()
		if err != nil {
			return goap.Action{}, fmt.Errorf("config: action %q mutator %q: %w", a.Name, m.Key, err)
		}
		action = action.WithMutator(mut)
	}
	if a.Cost > 0 {
		action = action.WithCost(a.Cost)
	}
	return action, nil
}

// DefaultScenario returns a small, self-contained scenario: one entity
// balancing hunger and energy to earn gold, the same shape as the
// long-plan multiple-resources scenario the kernel's own tests exercise.
func DefaultScenario() *Scenario {
	return &Scenario{
		Ticks:            40,
		TickResolutionMS: 50,
		WorkerCapacity:   4,
		Entities: []EntitySpec{
			{
				Name: "villager",
				Datums: map[string]DatumSpec{
					"energy": {Kind: "i64", I64: 30},
					"hunger": {Kind: "i64", I64: 70},
					"gold":   {Kind: "i64", I64: 0},
				},
				Goals: []GoalSpec{
					{
						Name: "earn_gold",
						Requirements: []RequirementSpec{
							{Key: "gold", Compare: CompareSpec{Op: "eq", Target: DatumSpec{Kind: "i64", I64: 7}}},
						},
					},
				},
				Actions: []ActionSpec{
					{
						Name:     "sleep",
						Mutators: []MutatorSpec{{Op: "increment", Key: "energy", Value: DatumSpec{Kind: "i64", I64: 10}}},
					},
					{
						Name: "eat",
						Preconditions: []PreconditionSpec{
							{Key: "energy", Compare: CompareSpec{Op: "gte", Target: DatumSpec{Kind: "i64", I64: 25}}},
						},
						Mutators: []MutatorSpec{{Op: "decrement", Key: "hunger", Value: DatumSpec{Kind: "i64", I64: 10}}},
					},
					{
						Name: "rob",
						Preconditions: []PreconditionSpec{
							{Key: "hunger", Compare: CompareSpec{Op: "lte", Target: DatumSpec{Kind: "i64", I64: 50}}},
							{Key: "energy", Compare: CompareSpec{Op: "gte", Target: DatumSpec{Kind: "i64", I64: 50}}},
						},
						Mutators: []MutatorSpec{
							{Op: "increment", Key: "gold", Value: DatumSpec{Kind: "i64", I64: 1}},
							{Op: "decrement", Key: "energy", Value: DatumSpec{Kind: "i64", I64: 5}},
							{Op: "increment", Key: "hunger", Value: DatumSpec{Kind: "i64", I64: 5}},
						},
					},
				},
			},
		},
	}
}

// LoadScenario loads a scenario from a YAML file. An empty path, or a
// path that doesn't exist, yields DefaultScenario rather than an error.
func LoadScenario(path string) (*Scenario, error) {
	if path == "" {
		return DefaultScenario(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultScenario(), nil
		}
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	scenario := &Scenario{}
	if err := yaml.Unmarshal([]byte(expanded), scenario); err != nil {
		return nil, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	return scenario, nil
}

// SaveScenario writes scenario to path as YAML, creating parent
// directories as needed.
func SaveScenario(scenario *Scenario, path string) error {
	data, err := yaml.Marshal(scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create scenario directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// ExampleScenario returns a commented example scenario file.
func ExampleScenario() string {
	return `# goap-demo scenario file
# Priority: CLI flag path > this file's contents > DefaultScenario.

ticks: 40
tick_resolution_ms: 50
worker_capacity: 4

entities:
  - name: villager
    datums:
      energy: {kind: i64, i64: 30}
      hunger: {kind: i64, i64: 70}
      gold: {kind: i64, i64: 0}
    goals:
      - name: earn_gold
        requirements:
          - key: gold
            compare: {op: eq, target: {kind: i64, i64: 7}}
    actions:
      - name: sleep
        mutators:
          - {op: increment, key: energy, value: {kind: i64, i64: 10}}
      - name: eat
        preconditions:
          - key: energy
            compare: {op: gte, target: {kind: i64, i64: 25}}
        mutators:
          - {op: decrement, key: hunger, value: {kind: i64, i64: 10}}
      - name: rob
        preconditions:
          - key: hunger
            compare: {op: lte, target: {kind: i64, i64: 50}}
          - key: energy
            compare: {op: gte, target: {kind: i64, i64: 50}}
        mutators:
          - {op: increment, key: gold, value: {kind: i64, i64: 1}}
          - {op: decrement, key: energy, value: {kind: i64, i64: 5}}
          - {op: increment, key: hunger, value: {kind: i64, i64: 5}}
`
}
