// Package systems provides example Systems exercising the ecs scheduler:
// movement, health regeneration, and a tag-filtered debug counter —
// adapted from the teacher's internal/core/systems package (movement.go,
// physics.go, base_system.go) to the new ecs.System interface.
package systems

import (
	"hearth-ecs/internal/core/ecs"
	"hearth-ecs/internal/core/ecs/components"
)

// MovementSystem advances every Transform-carrying entity tagged with
// every bit in Runner (and none of Store) along the X axis. It models
// spec §8 scenario 4's "MoveRunners (Transform, All{Runner}, None{Store})".
type MovementSystem struct {
	ecs.BaseSystem
	SpeedPerTick float64
}

// NewMovementSystem builds a MovementSystem requiring Transform and the
// given tag mask.
func NewMovementSystem(tags ecs.TagMask, speedPerTick float64) *MovementSystem {
	return &MovementSystem{
		BaseSystem:   ecs.NewBaseSystem([]ecs.ComponentTypeID{ecs.TypeID[components.Transform]()}, tags),
		SpeedPerTick: speedPerTick,
	}
}

// ForEach advances the entity's Transform.X by SpeedPerTick.
func (m *MovementSystem) ForEach(r *ecs.Registry, e *ecs.Entity, dt float64) {
	t := ecs.GetComponent[components.Transform](e)
	t.Translate(m.SpeedPerTick, 0)
}
