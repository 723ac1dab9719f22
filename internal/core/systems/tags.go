package systems

import "hearth-ecs/internal/core/ecs"

// Example tag ids shared by this package's systems and their tests,
// naming the three tags spec §8's scenarios walk through: Runner and
// Chaser mark mobile entities, Store marks a stationary one.
const (
	Runner ecs.TagID = iota
	Chaser
	Store
)
