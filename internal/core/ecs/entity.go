package ecs

// Entity is a tagged bag of component ids plus a tag bitset and metadata
// (spec §4.6). Entities are exclusively owned by their Registry; external
// code holds only weak references (EntityID or EntityHandle). Entities
// must never be copied or moved out of registry-owned storage — callers
// always go through *Entity obtained from the Registry.
type Entity struct {
	id   EntityID
	typ  int32
	slot slotIndex

	components ComponentBitSet
	tags       TagBitSet

	cleanup   bool
	permanent bool

	store *Store // back-reference so Entity methods can route through Store
}

// ID returns the entity's identifier.
func (e *Entity) ID() EntityID { return e.id }

// Type returns the caller-defined opaque discriminator set at creation.
func (e *Entity) Type() int32 { return e.typ }

// IsMarkedForCleanup reports whether mark_for_cleanup has been called.
func (e *Entity) IsMarkedForCleanup() bool { return e.cleanup }

// IsPermanent reports whether the entity survives DeleteAll(false).
func (e *Entity) IsPermanent() bool { return e.permanent }

// Has reports whether the entity carries a component of type T. O(1)
// bitset test (spec §4.6).
func Has[T any](e *Entity) bool {
	return e.components.Has(TypeID[T]())
}

// HasChildOf reports whether the entity carries any component registered
// (via RegisterVariant) as a member of family Family — the Go rendering
// of spec §4.6's dynamic_cast-based has_child_of<T>.
func HasChildOf[Family any](e *Entity) bool {
	members := variantMembers[Family]()
	for cid := range members {
		if e.components.Has(cid) {
			return true
		}
	}
	return false
}

// AddComponent sets the presence bit and emplaces value in the entity's
// pool for T. If the entity already has T, this is a no-op that returns
// the existing component and logs a warning (spec §7: DuplicateComponent).
func AddComponent[T any](e *Entity, value T) *T {
	cid := TypeID[T]()
	if e.components.Has(cid) {
		warnf("duplicate add_component<%T> on entity %d; keeping existing value", value, e.id)
		return Get[T](e.store, e.id)
	}
	e.components = e.components.Set(cid)
	return Emplace[T](e.store, e.id, value)
}

// RemoveComponent clears the presence bit and drops the component from
// its pool. No-op if the entity doesn't have T.
func RemoveComponent[T any](e *Entity) {
	cid := TypeID[T]()
	if !e.components.Has(cid) {
		return
	}
	e.components = e.components.Clear(cid)
	RemoveFor[T](e.store, e.id)
}

// GetComponent returns the entity's component of type T. Logs a warning
// and returns the pool's result, nil, if absent; callers are
// responsible for checking Has[T] first (spec §7: MissingComponent).
func GetComponent[T any](e *Entity) *T {
	cid := TypeID[T]()
	if !e.components.Has(cid) {
		warnf("get<%T> on entity %d without a prior has<%T> check", *new(T), e.id, *new(T))
	}
	return Get[T](e.store, e.id)
}

// GetWithChild returns the matching instance of a component on the entity
// that is a registered member of family Family, or (nil, false) if none
// matches (spec §4.6's get_with_child<T>, returning the component itself
// rather than merely its type id). When the entity carries several
// members of the family, which one is returned is not defined.
func GetWithChild[Family any](e *Entity) (any, bool) {
	members := variantMembers[Family]()
	for cid := range members {
		if e.components.Has(cid) {
			return e.store.GetAny(cid, e.id)
		}
	}
	return nil, false
}

// ==============================================
// Tags
// ==============================================

// EnableTag sets a bit in the entity's tag bitset. Out-of-range ids are
// ignored.
func (e *Entity) EnableTag(tag TagID) { e.tags = e.tags.Set(tag) }

// DisableTag clears a bit in the entity's tag bitset.
func (e *Entity) DisableTag(tag TagID) { e.tags = e.tags.Clear(tag) }

// HasTag tests a single tag bit.
func (e *Entity) HasTag(tag TagID) bool { return e.tags.Has(tag) }

// HasAllTags reports whether the entity carries every tag in mask.
func (e *Entity) HasAllTags(mask TagBitSet) bool { return e.tags.HasAll(mask) }

// HasAnyTag reports whether the entity carries any tag in mask. A zero
// mask reports true.
func (e *Entity) HasAnyTag(mask TagBitSet) bool { return e.tags.HasAny(mask) }

// HasNoTags reports whether the entity carries none of the tags in mask.
func (e *Entity) HasNoTags(mask TagBitSet) bool { return e.tags.HasNone(mask) }

// Tags returns the entity's full tag bitset (used by the snapshot surface).
func (e *Entity) Tags() TagBitSet { return e.tags }
