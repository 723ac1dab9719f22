package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Health_Heal(t *testing.T) {
	// Arrange
	h := Health{Current: 50, Max: 100}

	// Act
	h.Heal(30)

	// Assert
	assert.Equal(t, 80.0, h.Current)
}

func Test_Health_HealClampsToMax(t *testing.T) {
	// Arrange
	h := Health{Current: 90, Max: 100}

	// Act
	h.Heal(30)

	// Assert
	assert.Equal(t, 100.0, h.Current)
}

func Test_Health_IsDead(t *testing.T) {
	// Arrange
	alive := Health{Current: 1, Max: 100}
	dead := Health{Current: 0, Max: 100}
	overkill := Health{Current: -5, Max: 100}

	// Assert
	assert.False(t, alive.IsDead())
	assert.True(t, dead.IsDead())
	assert.True(t, overkill.IsDead())
}
