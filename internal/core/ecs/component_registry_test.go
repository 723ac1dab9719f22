package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registryTestA struct{ V int }
type registryTestB struct{ V int }

func Test_TypeID_StableAndDistinctPerType(t *testing.T) {
	// Act
	idA1 := TypeID[registryTestA]()
	idA2 := TypeID[registryTestA]()
	idB := TypeID[registryTestB]()

	// Assert
	assert.Equal(t, idA1, idA2)
	assert.NotEqual(t, idA1, idB)
}

type shapeFamily interface{ shapeFamilyMarker() }
type circleVariant struct{ Radius float64 }
type squareVariant struct{ Side float64 }

func Test_RegisterVariant_HasChildOfMatchesAnyRegisteredMember(t *testing.T) {
	// Arrange
	RegisterVariant[shapeFamily, circleVariant]()
	RegisterVariant[shapeFamily, squareVariant]()

	r := NewRegistry(DefaultConfig())
	circleEntity := r.Create(true)
	squareEntity := r.Create(true)
	plainEntity := r.Create(true)
	r.MergePending()

	AddComponent(circleEntity, circleVariant{Radius: 1})
	AddComponent(squareEntity, squareVariant{Side: 2})

	// Assert
	assert.True(t, HasChildOf[shapeFamily](circleEntity))
	assert.True(t, HasChildOf[shapeFamily](squareEntity))
	assert.False(t, HasChildOf[shapeFamily](plainEntity))

	got, ok := GetWithChild[shapeFamily](circleEntity)
	assert.True(t, ok)
	assert.Equal(t, circleVariant{Radius: 1}, got)
}
