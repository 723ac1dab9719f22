package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type poolTestComponent struct{ V int }

func Test_ComponentPool_EmplaceGetHas(t *testing.T) {
	// Arrange
	p := NewComponentPool[poolTestComponent](SwapRemove)

	// Act
	p.Emplace(1, poolTestComponent{V: 10})

	// Assert
	assert.True(t, p.Has(1))
	assert.False(t, p.Has(2))
	assert.Equal(t, 10, p.Get(1).V)
	assert.Equal(t, 1, p.Len())
}

func Test_ComponentPool_EmplaceExistingReturnsOriginal(t *testing.T) {
	// Arrange
	p := NewComponentPool[poolTestComponent](SwapRemove)
	p.Emplace(1, poolTestComponent{V: 10})

	// Act
	got := p.Emplace(1, poolTestComponent{V: 99})

	// Assert
	assert.Equal(t, 10, got.V)
	assert.Equal(t, 1, p.Len())
}

func Test_ComponentPool_SwapRemovePreservesOtherEntries(t *testing.T) {
	// Arrange: spec scenario 1's "swap-remove correctness".
	p := NewComponentPool[poolTestComponent](SwapRemove)
	p.Emplace(1, poolTestComponent{V: 10})
	p.Emplace(2, poolTestComponent{V: 20})
	p.Emplace(3, poolTestComponent{V: 30})

	// Act
	p.Remove(2)

	// Assert
	assert.False(t, p.Has(2))
	assert.Equal(t, 10, p.Get(1).V)
	assert.Equal(t, 30, p.Get(3).V)
	assert.Equal(t, 2, p.Len())
}

func Test_ComponentPool_RemoveMissingIsNoop(t *testing.T) {
	// Arrange
	p := NewComponentPool[poolTestComponent](SwapRemove)

	// Act & Assert: must not panic.
	p.Remove(42)
	assert.Equal(t, 0, p.Len())
}

func Test_ComponentPool_EndOfFrameStabilityDefersCompaction(t *testing.T) {
	// Arrange
	p := NewComponentPool[poolTestComponent](EndOfFrameStability)
	p.Emplace(1, poolTestComponent{V: 10})
	p.Emplace(2, poolTestComponent{V: 20})

	// Act
	p.Remove(1)

	// Assert: removed entry no longer reports present, but the live
	// count already reflects it while the dense array hasn't compacted.
	assert.False(t, p.Has(1))
	assert.Equal(t, 1, p.Len())

	// Act
	p.FlushEndOfFrame()

	// Assert
	assert.Equal(t, 1, p.Len())
	assert.True(t, p.Has(2))
	assert.Equal(t, 20, p.Get(2).V)
}

func Test_ComponentPool_Clear(t *testing.T) {
	// Arrange
	p := NewComponentPool[poolTestComponent](SwapRemove)
	p.Emplace(1, poolTestComponent{V: 10})
	p.Emplace(2, poolTestComponent{V: 20})

	// Act
	p.Clear()

	// Assert
	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Has(1))
}
