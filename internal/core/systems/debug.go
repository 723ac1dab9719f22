package systems

import "hearth-ecs/internal/core/ecs"

// DebugCountSystem requires no components and simply counts the entities
// it is dispatched against, matching on tags alone. Models spec §8
// scenario 4's "DebugNonStore (no component requirement, None{Store})".
type DebugCountSystem struct {
	ecs.BaseSystem
	Count int
}

// NewDebugCountSystem builds a DebugCountSystem under the given tag mask.
func NewDebugCountSystem(tags ecs.TagMask) *DebugCountSystem {
	return &DebugCountSystem{BaseSystem: ecs.NewBaseSystem(nil, tags)}
}

// Once resets the running count before each dispatch.
func (d *DebugCountSystem) Once(dt float64) { d.Count = 0 }

// ForEach tallies the matching entity; it carries no per-entity behavior.
func (d *DebugCountSystem) ForEach(r *ecs.Registry, e *ecs.Entity, dt float64) {
	d.Count++
}
