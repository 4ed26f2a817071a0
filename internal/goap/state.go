package goap

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// State is a key-ordered mapping of string keys to Datums. It has no
// schema: keys are introduced by whichever action/mutator first writes
// them, and readers that miss a key treat it as absent. Ordering is
// lexicographic on keys; insertion order never affects equality or
// hashing, matching dogoap's LocalState, which is backed by a
// BTreeMap<String, Datum> for exactly this reason.
type State map[string]Datum

// NewState creates a new empty State.
func NewState() State {
	return make(State)
}

// NewStateFromSeed creates a State pre-populated from a seed list, in
// order, later entries winning on key collision.
func NewStateFromSeed(seed ...KeyDatum) State {
	s := NewState()
	for _, kd := range seed {
		s.Set(kd.Key, kd.Value)
	}
	return s
}

// KeyDatum pairs a key with a Datum, used to seed a State or to list the
// sets of a NewMultiSetAction.
type KeyDatum struct {
	Key   string
	Value Datum
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	clone := make(State, len(s))
	for k, v := range s {
		clone[k] = v
	}
	return clone
}

// Set inserts or overwrites key with value.
func (s State) Set(key string, value Datum) {
	s[key] = value
}

// Get retrieves the Datum for key. The second return reports presence.
func (s State) Get(key string) (Datum, bool) {
	v, ok := s[key]
	return v, ok
}

// Has reports whether key is present.
func (s State) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// SortedKeys returns the state's keys in lexicographic order.
func (s State) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether two states hold the same (key, Datum) multiset,
// independent of insertion order.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// Hash returns a hash that agrees for any two states satisfying Equal,
// regardless of insertion order, by hashing over the lexicographically
// sorted key/value pairs. The search's closed set does not use it; it
// keys visited states by String().
func (s State) Hash() uint64 {
	h := fnv.New64a()
	for _, k := range s.SortedKeys() {
		v := s[k]
		fmt.Fprintf(h, "%s=%d:%d:%d:%d;", k, v.Kind, v.I, v.E, int64(v.F*1e9))
		if v.B {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return h.Sum64()
}

// distanceTo sums, for each requirement in goal, the Datum distance from
// this state's value to the requirement's target; a missing key is
// penalized by 1, matching dogoap's distance_to_goal.
func (s State) distanceTo(goal *Goal) uint64 {
	var total uint64
	for _, req := range goal.Requirements {
		value, ok := s[req.Key]
		if !ok {
			total++
			continue
		}
		total += value.Distance(req.Compare.Target)
	}
	return total
}

// mustGet returns the Datum for key or panics identifying the missing
// key. Used by precondition and goal evaluation, where a missing key is
// a programming error (the action catalogue and goal disagree about
// which keys the state carries) rather than something to estimate
// around, unlike distanceTo's heuristic penalty.
func (s State) mustGet(key string) Datum {
	v, ok := s[key]
	if !ok {
		panic(fmt.Sprintf("goap: missing key %q in state", key))
	}
	return v
}

// String renders the state for logs, in sorted key order.
func (s State) String() string {
	if len(s) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(s))
	for _, k := range s.SortedKeys() {
		parts = append(parts, fmt.Sprintf("%s: %s", k, s[k]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
