package ecs

import (
	"reflect"
	"sync"
)

// Component is the minimal constraint on anything stored in a
// ComponentPool. Go generics cannot reproduce C++'s "T : BaseComponent"
// compile-time inheritance check (spec §4.2 edge case), so the
// requirement is relaxed to "any concrete, comparable-by-identity struct
// type" and enforced instead by TypeID's one-id-per-reflect.Type cache.
type Component any

// typeRegistry is the process-global, monotonic ComponentTypeID allocator
// (spec §4.1). Allocation is single-threaded from the caller's point of
// view but guarded by a mutex since multiple Registries may run on
// separate goroutines per the worker-set binding in spec §5.
type typeRegistry struct {
	mu    sync.Mutex
	ids   map[reflect.Type]ComponentTypeID
	next  ComponentTypeID
	limit ComponentTypeID
}

var globalTypeRegistry = &typeRegistry{
	ids:   make(map[reflect.Type]ComponentTypeID),
	limit: 128,
}

// SetComponentTypeCap overrides the default 128-type cap (spec §3:
// "Cap: 128 distinct types by default (configurable)"). Intended to be
// called once during process startup, before any TypeID[T] calls.
func SetComponentTypeCap(max int) {
	globalTypeRegistry.mu.Lock()
	defer globalTypeRegistry.mu.Unlock()
	globalTypeRegistry.limit = ComponentTypeID(max)
}

// TypeID returns the stable ComponentTypeID for T, assigning one on first
// use. The id is monotonic and stable for the lifetime of the process; it
// must never be persisted or compared across processes.
func TypeID[T any]() ComponentTypeID {
	var zero T
	rt := reflect.TypeOf(zero)
	return typeIDFor(rt)
}

func typeIDFor(rt reflect.Type) ComponentTypeID {
	r := globalTypeRegistry
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.ids[rt]; ok {
		return id
	}
	if r.next >= r.limit {
		fatalf("component type cap exceeded: %d types already registered (cap=%d), tried to register %v",
			r.next, r.limit, rt)
	}
	id := r.next
	r.ids[rt] = id
	r.next++
	return id
}

// ==============================================
// Derived-component "child of" support (spec §9)
// ==============================================

// variantTable records, for each "family" marker type, the set of
// concrete component ComponentTypeIDs that belong to it. This replaces
// the C++ source's dynamic_cast-based has_child_of<T>/get_with_child<T>
// with a precomputed subset check over concrete variant tags.
var variantTable = struct {
	mu       sync.Mutex
	families map[reflect.Type]map[ComponentTypeID]bool
}{families: make(map[reflect.Type]map[ComponentTypeID]bool)}

// RegisterVariant declares that concrete component type Derived is a
// member of the abstract family Family (e.g. RegisterVariant[Shape,
// Circle]()). Entity.HasChildOf[Family] and GetWithChild[Family] then
// match any entity carrying any registered Derived.
func RegisterVariant[Family any, Derived any]() {
	familyType := reflect.TypeOf((*Family)(nil)).Elem()
	derivedID := TypeID[Derived]()

	variantTable.mu.Lock()
	defer variantTable.mu.Unlock()
	set, ok := variantTable.families[familyType]
	if !ok {
		set = make(map[ComponentTypeID]bool)
		variantTable.families[familyType] = set
	}
	set[derivedID] = true
}

func variantMembers[Family any]() map[ComponentTypeID]bool {
	familyType := reflect.TypeOf((*Family)(nil)).Elem()

	variantTable.mu.Lock()
	defer variantTable.mu.Unlock()
	return variantTable.families[familyType]
}
