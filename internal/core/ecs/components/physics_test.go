package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Physics_ZeroValue(t *testing.T) {
	// Arrange & Act
	var p Physics

	// Assert
	assert.Zero(t, p.VelocityX)
	assert.Zero(t, p.VelocityY)
	assert.Zero(t, p.Mass)
}

func Test_Physics_FieldAssignment(t *testing.T) {
	// Arrange & Act
	p := Physics{VelocityX: 1.5, VelocityY: -2.0, Mass: 10}

	// Assert
	assert.Equal(t, 1.5, p.VelocityX)
	assert.Equal(t, -2.0, p.VelocityY)
	assert.Equal(t, 10.0, p.Mass)
}
