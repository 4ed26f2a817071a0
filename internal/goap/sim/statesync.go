package sim

import "fmt"

// StateSync re-reads every DatumMirror attached to each planner and
// writes the result into that planner's State, the way
// update_planner_local_state re-reads DatumComponents into LocalState
// every frame in bevy_dogoap. It runs once per tick, before any
// planning decision is made, so Search always sees the latest data.
//
// A planner with no mirrors is almost certainly a wiring bug (a
// planner built without registering the components it should read) and
// StateSync reports it rather than silently planning against an empty
// state, matching update_planner_local_state's own behavior of erroring
// when the DatumComponent query comes back empty.
func StateSync(planners map[EntityID]*Planner) error {
	for id, p := range planners {
		if len(p.Mirrors) == 0 {
			return fmt.Errorf("sim: planner %s has no datum mirrors registered", id)
		}
		for _, m := range p.Mirrors {
			p.State.Set(m.Key(), m.Value())
		}
	}
	return nil
}
