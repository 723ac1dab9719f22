package components

// Health tracks an entity's current and maximum hit points, adapted from
// the teacher's HealthComponent (internal/core/ecs/components/health.go).
type Health struct {
	Current float64
	Max     float64
}

// Heal adds amount to Current, clamped to Max.
func (h *Health) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// IsDead reports whether Current has reached zero.
func (h *Health) IsDead() bool {
	return h.Current <= 0
}
