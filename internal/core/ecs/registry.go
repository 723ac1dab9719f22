package ecs

// Registry owns every entity it creates: it separates a live set (visible
// to queries and systems) from a pending set (created but not yet merged),
// and provides creation, deferred cleanup, singleton registration, and
// id/handle lookup (spec §4.5). A Registry is not safe for concurrent use
// from multiple goroutines; spec §5's worker-set pattern binds one
// Registry per thread.
type Registry struct {
	cfg Config

	live    []*Entity
	pending []*Entity
	byID    map[EntityID]*Entity

	handles *handleSlotTable
	store   *Store

	nextID EntityID

	singletons map[ComponentTypeID]EntityID
}

// NewRegistry creates an empty Registry using cfg. Pass DefaultConfig()
// for the spec's defaults (128 component types, 64 tags, 120Hz fixed tick).
func NewRegistry(cfg Config) *Registry {
	if cfg.MaxComponentTypes > 0 {
		SetComponentTypeCap(cfg.MaxComponentTypes)
	}
	return &Registry{
		cfg:        cfg,
		byID:       make(map[EntityID]*Entity),
		handles:    newHandleSlotTable(),
		store:      NewStore(cfg.RemovalPolicy),
		singletons: make(map[ComponentTypeID]EntityID),
	}
}

// Store returns the registry's component store, for callers that need
// direct pool access (systems iterating a component array).
func (r *Registry) Store() *Store { return r.store }

// ==============================================
// Creation & merge (spec §4.5)
// ==============================================

// Create returns a new entity appended to the pending set. Its handle
// slot is unassigned until MergePending runs. transient=false marks the
// entity permanent, surviving DeleteAll(includePermanent=false).
func (r *Registry) Create(transient bool) *Entity {
	return r.CreateTyped(transient, 0)
}

// CreateTyped is Create with an explicit caller-defined type discriminator.
func (r *Registry) CreateTyped(transient bool, typ int32) *Entity {
	e := &Entity{
		id:        r.nextID,
		typ:       typ,
		slot:      invalidSlot,
		store:     r.store,
		permanent: !transient,
	}
	r.nextID++
	r.pending = append(r.pending, e)
	r.byID[e.id] = e
	return e
}

// MergePending promotes every pending entity into the live set: each gets
// an allocated handle slot bound to its id and current generation, and
// joins the live vector in pending order (spec §5: "entities are visited
// in live-set insertion order"). Idempotent if pending is empty.
func (r *Registry) MergePending() {
	if len(r.pending) == 0 {
		return
	}
	for _, e := range r.pending {
		s := r.handles.alloc()
		r.handles.bind(s, e.id)
		e.slot = s
		r.live = append(r.live, e)
	}
	r.pending = r.pending[:0]
}

// PendingCount returns the number of entities created but not yet merged.
func (r *Registry) PendingCount() int { return len(r.pending) }

// ==============================================
// Lookup (spec §4.5)
// ==============================================

// Get returns the entity for id, or (nil, false) if it doesn't exist or
// was already cleaned up.
func (r *Registry) Get(id EntityID) (*Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// GetEnforce returns the entity for id, logging a warning on a miss
// (spec §4.5: get_enforce "logs/fails on miss").
func (r *Registry) GetEnforce(id EntityID) (*Entity, bool) {
	e, ok := r.byID[id]
	if !ok {
		warnf("get_enforce: entity %d not found", id)
	}
	return e, ok
}

// LiveEntities returns the live set in insertion (merge) order. The
// returned slice is the registry's own backing array and must not be
// mutated or retained across a MergePending/Cleanup call.
func (r *Registry) LiveEntities() []*Entity { return r.live }

// ==============================================
// Handles (spec §4.4, §4.5)
// ==============================================

// HandleFor returns the stable handle for e, or EmptyHandle if e has not
// yet been merged (slot unassigned).
func (r *Registry) HandleFor(e *Entity) EntityHandle {
	if e.slot == invalidSlot {
		return EmptyHandle
	}
	return EntityHandle{slot: e.slot, gen: r.handles.slots[e.slot].gen}
}

// Resolve resolves a handle to its entity, or (nil, false) if the handle
// is stale or empty.
func (r *Registry) Resolve(h EntityHandle) (*Entity, bool) {
	id, ok := r.handles.resolve(h)
	if !ok {
		return nil, false
	}
	return r.Get(id)
}

// ==============================================
// Singletons (spec §4.5)
// ==============================================

// RegisterSingleton records e as the canonical owner of component type T.
// Only one entity per type may be registered; re-registering overwrites
// the previous owner and logs a warning.
func RegisterSingleton[T any](r *Registry, e *Entity) {
	cid := TypeID[T]()
	if prev, ok := r.singletons[cid]; ok && prev != e.id {
		warnf("singleton for %T re-registered: entity %d replaces entity %d", *new(T), e.id, prev)
	}
	r.singletons[cid] = e.id
}

// dummyEntity builds a fresh, component-free sentinel "no singleton
// registered" entity on every call (spec §4.5, §7: SingletonMissing).
func (r *Registry) dummyEntity() *Entity {
	return &Entity{id: InvalidEntityID, slot: invalidSlot, store: r.store}
}

// GetSingleton returns the entity registered for T, or a dummy entity
// with Has[T] == false if none was registered.
func GetSingleton[T any](r *Registry) *Entity {
	cid := TypeID[T]()
	id, ok := r.singletons[cid]
	if !ok {
		return r.dummyEntity()
	}
	e, ok := r.Get(id)
	if !ok {
		return r.dummyEntity()
	}
	return e
}

// HasSingleton reports whether T has a registered singleton whose entity
// still exists.
func HasSingleton[T any](r *Registry) bool {
	cid := TypeID[T]()
	id, ok := r.singletons[cid]
	if !ok {
		return false
	}
	_, ok = r.Get(id)
	return ok
}

// GetSingletonComponent is a convenience accessor equivalent to
// GetSingleton[T](r) then GetComponent[T] if present.
func GetSingletonComponent[T any](r *Registry) *T {
	e := GetSingleton[T](r)
	if !Has[T](e) {
		return nil
	}
	return GetComponent[T](e)
}

// ==============================================
// Cleanup (spec §4.5)
// ==============================================

// MarkForCleanup sets id's cleanup flag. The entity remains reachable via
// id lookup, handle resolution, and queries until Cleanup runs.
func (r *Registry) MarkForCleanup(id EntityID) {
	if e, ok := r.byID[id]; ok {
		e.cleanup = true
	}
}

// Cleanup destroys every live or pending entity whose cleanup flag is
// set: drops its components from every pool, invalidates its handle slot
// (bumping the generation), removes it from the id map, and erases it
// from the live/pending vectors. Safe to call with nothing flagged.
func (r *Registry) Cleanup() {
	r.pending = filterEntities(r.pending, func(e *Entity) bool {
		if !e.cleanup {
			return true
		}
		r.destroy(e)
		return false
	})
	r.live = filterEntities(r.live, func(e *Entity) bool {
		if !e.cleanup {
			return true
		}
		r.destroy(e)
		return false
	})
}

func (r *Registry) destroy(e *Entity) {
	r.store.removeByID(e, e.id)
	if e.slot != invalidSlot {
		r.handles.invalidate(e.slot)
	}
	delete(r.byID, e.id)
	for cid, owner := range r.singletons {
		if owner == e.id {
			delete(r.singletons, cid)
		}
	}
}

func filterEntities(in []*Entity, keep func(*Entity) bool) []*Entity {
	out := in[:0]
	for _, e := range in {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

// DeleteAll destroys entities. If includePermanent is false, entities
// created with Create(transient=false) are preserved.
func (r *Registry) DeleteAll(includePermanent bool) {
	mark := func(e *Entity) {
		if includePermanent || !e.permanent {
			e.cleanup = true
		}
	}
	for _, e := range r.live {
		mark(e)
	}
	for _, e := range r.pending {
		mark(e)
	}
	r.Cleanup()
}

// EntityCount returns the number of live entities.
func (r *Registry) EntityCount() int { return len(r.live) }
