package ecs

// ComponentPool[T] owns every instance of component type T. It mirrors the
// teacher's storage.SparseSet (dense entity array + sparse entity->index
// map) with a parallel dense T array, generified over the component type
// (spec §4.2, §9 "Handle + dense pools").
//
// Invariant: after any operation on entity e, pool.Has(e) agrees with
// entity.components[T's cid].
type ComponentPool[T any] struct {
	sparse map[EntityID]int32 // entity -> dense index, absent = not present
	dense  []T                // dense component values
	owners []EntityID         // dense[i] is owned by owners[i]

	policy     RemovalPolicy
	tombstoned []bool // EndOfFrameStability mode: dense[i] pending compaction
	liveCount  int    // number of non-tombstoned entries (stability mode)
}

// NewComponentPool creates an empty pool using the given removal policy.
func NewComponentPool[T any](policy RemovalPolicy) *ComponentPool[T] {
	return &ComponentPool[T]{
		sparse: make(map[EntityID]int32),
		policy: policy,
	}
}

// Has reports whether a component of type T exists for entity id. O(1).
func (p *ComponentPool[T]) Has(id EntityID) bool {
	idx, ok := p.sparse[id]
	if !ok {
		return false
	}
	if p.policy == EndOfFrameStability && p.tombstoned[idx] {
		return false
	}
	return true
}

// Get returns the component for id, or nil if id has no entry in the pool;
// callers validate presence via the entity's component bitset first.
func (p *ComponentPool[T]) Get(id EntityID) *T {
	idx, ok := p.sparse[id]
	if !ok {
		return nil
	}
	return &p.dense[idx]
}

// TryGet returns the component for id, or nil if absent.
func (p *ComponentPool[T]) TryGet(id EntityID) *T {
	if !p.Has(id) {
		return nil
	}
	return p.Get(id)
}

// GetAny is erasedPool's type-erased accessor: it returns id's component
// as an any, for callers that only hold a ComponentTypeID at runtime
// (e.g. GetWithChild's family lookup).
func (p *ComponentPool[T]) GetAny(id EntityID) (any, bool) {
	if !p.Has(id) {
		return nil, false
	}
	return *p.Get(id), true
}

// Emplace constructs (or returns the existing) component for id. If id
// already has a component, it is returned unchanged (spec §4.2: emplace
// is a no-op-returns-existing operation; the duplicate-add warning lives
// one layer up in Entity.AddComponent, which is the caller that knows
// whether this is a genuine duplicate-add attempt).
func (p *ComponentPool[T]) Emplace(id EntityID, value T) *T {
	if idx, ok := p.sparse[id]; ok {
		if p.policy == EndOfFrameStability && p.tombstoned[idx] {
			p.tombstoned[idx] = false
			p.dense[idx] = value
			p.liveCount++
			return &p.dense[idx]
		}
		return &p.dense[idx]
	}

	idx := int32(len(p.dense))
	p.dense = append(p.dense, value)
	p.owners = append(p.owners, id)
	if p.policy == EndOfFrameStability {
		p.tombstoned = append(p.tombstoned, false)
		p.liveCount++
	}
	p.sparse[id] = idx
	return &p.dense[idx]
}

// Remove drops id's component. No-op if absent. Under SwapRemove the last
// dense element moves into the freed slot, invalidating any outstanding
// *T into that slot; under EndOfFrameStability the slot is tombstoned and
// compaction is deferred to FlushEndOfFrame.
func (p *ComponentPool[T]) Remove(id EntityID) {
	idx, ok := p.sparse[id]
	if !ok {
		return
	}

	if p.policy == EndOfFrameStability {
		if !p.tombstoned[idx] {
			p.tombstoned[idx] = true
			p.liveCount--
		}
		return
	}

	lastIdx := int32(len(p.dense) - 1)
	lastOwner := p.owners[lastIdx]
	p.dense[idx] = p.dense[lastIdx]
	p.owners[idx] = lastOwner
	p.sparse[lastOwner] = idx

	var zero T
	p.dense[lastIdx] = zero
	p.dense = p.dense[:lastIdx]
	p.owners = p.owners[:lastIdx]
	delete(p.sparse, id)
}

// Clear destroys all components and resets the pool.
func (p *ComponentPool[T]) Clear() {
	p.sparse = make(map[EntityID]int32)
	p.dense = nil
	p.owners = nil
	p.tombstoned = nil
	p.liveCount = 0
}

// FlushEndOfFrame compacts tombstones. No-op under SwapRemove.
func (p *ComponentPool[T]) FlushEndOfFrame() {
	if p.policy != EndOfFrameStability {
		return
	}
	newDense := make([]T, 0, p.liveCount)
	newOwners := make([]EntityID, 0, p.liveCount)
	newTombstoned := make([]bool, 0, p.liveCount)
	newSparse := make(map[EntityID]int32, p.liveCount)

	for i, owner := range p.owners {
		if p.tombstoned[i] {
			continue
		}
		newSparse[owner] = int32(len(newDense))
		newDense = append(newDense, p.dense[i])
		newOwners = append(newOwners, owner)
		newTombstoned = append(newTombstoned, false)
	}

	p.dense = newDense
	p.owners = newOwners
	p.tombstoned = newTombstoned
	p.sparse = newSparse
	p.liveCount = len(newDense)
}

// Len returns the number of live components in the pool.
func (p *ComponentPool[T]) Len() int {
	if p.policy == EndOfFrameStability {
		return p.liveCount
	}
	return len(p.dense)
}
