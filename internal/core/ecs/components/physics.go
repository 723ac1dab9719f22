package components

// Physics carries an entity's velocity and mass, adapted from the
// teacher's PhysicsComponent (internal/core/ecs/components/physics.go).
type Physics struct {
	VelocityX, VelocityY float64
	Mass                 float64
}
