package ecs

// EntityRecord is a pointer-free projection of one live entity, produced
// by the read-only snapshot surface (spec §6.8).
type EntityRecord struct {
	Handle  EntityHandle
	Type    int32
	Tags    TagBitSet
	Cleanup bool
}

// ComponentRecord pairs a value-type component with the handle of the
// entity that owns it.
type ComponentRecord[T any] struct {
	Handle EntityHandle
	Value  T
}

// SnapshotEntities iterates every live entity, producing pointer-free
// records. Intended for read-only consumers (e.g. a serializer) that must
// not hold live *Entity references.
func (r *Registry) SnapshotEntities() []EntityRecord {
	live := r.LiveEntities()
	out := make([]EntityRecord, 0, len(live))
	for _, e := range live {
		out = append(out, EntityRecord{
			Handle:  r.HandleFor(e),
			Type:    e.typ,
			Tags:    e.tags,
			Cleanup: e.cleanup,
		})
	}
	return out
}

// SnapshotComponents iterates every live entity carrying a component of
// type T, producing (handle, value) records.
//
// Spec §6.8 asks for a compile-time reject of pointer-like component
// types; Go generics cannot express a "T has no pointer/slice/map field"
// constraint, so this is enforced only by convention (component types in
// this repo are flat value structs); neither the compiler nor any runtime
// check rejects a T that holds a pointer, slice or map.
func SnapshotComponents[T any](r *Registry) []ComponentRecord[T] {
	live := r.LiveEntities()
	out := make([]ComponentRecord[T], 0, len(live))
	for _, e := range live {
		if !Has[T](e) {
			continue
		}
		out = append(out, ComponentRecord[T]{
			Handle: r.HandleFor(e),
			Value:  *GetComponent[T](e),
		})
	}
	return out
}
