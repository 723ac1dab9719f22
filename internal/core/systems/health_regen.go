package systems

import (
	"hearth-ecs/internal/core/ecs"
	"hearth-ecs/internal/core/ecs/components"
)

// HealthRegenSystem heals every Health-carrying entity matching its tag
// mask by RegenPerTick per tick. Models spec §8 scenario 4's
// "HealAnyTagged (Health, Any{Chaser, Runner})".
type HealthRegenSystem struct {
	ecs.BaseSystem
	RegenPerTick float64
}

// NewHealthRegenSystem builds a HealthRegenSystem requiring Health and the
// given tag mask.
func NewHealthRegenSystem(tags ecs.TagMask, regenPerTick float64) *HealthRegenSystem {
	return &HealthRegenSystem{
		BaseSystem:   ecs.NewBaseSystem([]ecs.ComponentTypeID{ecs.TypeID[components.Health]()}, tags),
		RegenPerTick: regenPerTick,
	}
}

// ForEach heals the entity's Health component.
func (h *HealthRegenSystem) ForEach(r *ecs.Registry, e *ecs.Entity, dt float64) {
	hp := ecs.GetComponent[components.Health](e)
	hp.Heal(h.RegenPerTick)
}
