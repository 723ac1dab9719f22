package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type storeTestComponent struct{ V int }

func Test_Store_EmplaceGetHasRemoveFor(t *testing.T) {
	// Arrange
	s := NewStore(SwapRemove)

	// Act
	Emplace[storeTestComponent](s, 1, storeTestComponent{V: 7})

	// Assert
	assert.True(t, HasIn[storeTestComponent](s, 1))
	assert.Equal(t, 7, Get[storeTestComponent](s, 1).V)

	// Act
	RemoveFor[storeTestComponent](s, 1)

	// Assert
	assert.False(t, HasIn[storeTestComponent](s, 1))
}

func Test_Store_ComponentCountAcrossPools(t *testing.T) {
	// Arrange
	s := NewStore(SwapRemove)
	Emplace[storeTestComponent](s, 1, storeTestComponent{V: 1})
	Emplace[tagTestTransform](s, 1, tagTestTransform{X: 1})
	Emplace[tagTestTransform](s, 2, tagTestTransform{X: 2})

	// Assert
	assert.Equal(t, 3, s.componentCount())
}

func Test_Store_ClearAll(t *testing.T) {
	// Arrange
	s := NewStore(SwapRemove)
	Emplace[storeTestComponent](s, 1, storeTestComponent{V: 1})

	// Act
	s.ClearAll()

	// Assert
	assert.Equal(t, 0, s.componentCount())
}
