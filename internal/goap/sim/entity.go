// Package sim is the execution-integration layer: it ties the pure
// planning kernel in internal/goap to a per-entity, per-tick simulation
// loop, the way bevy_dogoap ties dogoap to a Bevy World. Nothing in this
// package does A* search itself; it only decides when to ask for a plan,
// whether to adopt what comes back, and which action an entity should be
// attempting right now.
package sim

import "github.com/google/uuid"

// EntityID names one simulated actor. The zero value is never a valid
// entity; use NewEntityID.
type EntityID uuid.UUID

// NewEntityID allocates a fresh, random entity identifier.
func NewEntityID() EntityID {
	return EntityID(uuid.New())
}

func (id EntityID) String() string {
	return uuid.UUID(id).String()
}
