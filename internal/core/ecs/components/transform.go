// Package components provides concrete component types exercising the ecs
// core (transform, health, physics) — the equivalent of the teacher's
// internal/core/ecs/components package, adapted to flat value structs so
// every type here is safe to pass through ecs.SnapshotComponents.
package components

// Transform holds an entity's 2D position and rotation. It is the
// position component used by the systems package and its scenario tests;
// the core package's own tests use a private tagTestTransform instead.
type Transform struct {
	X, Y     float64
	Rotation float64
}

// Translate moves the transform by (dx, dy).
func (t *Transform) Translate(dx, dy float64) {
	t.X += dx
	t.Y += dy
}
