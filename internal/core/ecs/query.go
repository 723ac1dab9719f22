package ecs

import (
	"math/rand"
	"sort"
)

// Query is a lazy, composable filter pipeline over a Registry's live
// entity set (spec §4.7). Filters are collected as closures and applied
// per-entity in registration order so that first/existence terminal ops
// can short-circuit (spec §9: "the short-circuit path must evaluate
// predicates per-entity, not per-filter across the whole set").
type Query struct {
	r *Registry

	predicates []func(*Entity) bool
	orderBy    func(a, b *Entity) bool
	orderSet   bool
	limit      int // -1 = unbounded

	forceMerge        bool
	ignoreTempWarning bool

	cached    []*Entity
	hasCached bool
}

// NewQuery constructs a query over r. Registry.Query is the usual entry
// point; NewQuery is exposed for callers building queries outside method
// chains.
func NewQuery(r *Registry) *Query {
	return &Query{r: r, limit: -1}
}

// Query returns a new query over the registry's live entity set.
func (r *Registry) Query() *Query { return NewQuery(r) }

// ==============================================
// Visibility modifiers
// ==============================================

// ForceMerge makes the query merge pending entities before evaluating, so
// entities created earlier this frame are immediately visible.
func (q *Query) ForceMerge() *Query {
	q.forceMerge = true
	return q
}

// IgnoreTempWarning suppresses the "pending entities invisible" warning
// that otherwise fires when pending is non-empty and ForceMerge was not
// requested.
func (q *Query) IgnoreTempWarning() *Query {
	q.ignoreTempWarning = true
	return q
}

// ==============================================
// Filter predicates (spec §4.7)
// ==============================================

func (q *Query) pred(p func(*Entity) bool) *Query {
	q.predicates = append(q.predicates, p)
	return q
}

// WhereID keeps only the entity with the given id.
func (q *Query) WhereID(id EntityID) *Query {
	return q.pred(func(e *Entity) bool { return e.id == id })
}

// WhereNotID excludes the entity with the given id.
func (q *Query) WhereNotID(id EntityID) *Query {
	return q.pred(func(e *Entity) bool { return e.id != id })
}

// WhereHasComponent keeps only entities carrying a component of type T.
func WhereHasComponent[T any](q *Query) *Query {
	return q.pred(func(e *Entity) bool { return Has[T](e) })
}

// WhereMissingComponent keeps only entities lacking a component of type T.
func WhereMissingComponent[T any](q *Query) *Query {
	return q.pred(func(e *Entity) bool { return !Has[T](e) })
}

// WhereMarkedForCleanup keeps only entities with the cleanup flag set.
func (q *Query) WhereMarkedForCleanup() *Query {
	return q.pred(func(e *Entity) bool { return e.cleanup })
}

// WhereNotMarkedForCleanup keeps only entities without the cleanup flag.
func (q *Query) WhereNotMarkedForCleanup() *Query {
	return q.pred(func(e *Entity) bool { return !e.cleanup })
}

// WhereHasTag keeps only entities carrying the given tag.
func (q *Query) WhereHasTag(tag TagID) *Query {
	return q.pred(func(e *Entity) bool { return e.HasTag(tag) })
}

// WhereHasAllTags keeps only entities whose tag bitset contains every bit
// in mask.
func (q *Query) WhereHasAllTags(mask TagBitSet) *Query {
	return q.pred(func(e *Entity) bool { return e.HasAllTags(mask) })
}

// WhereHasAnyTag keeps only entities whose tag bitset intersects mask. A
// zero mask keeps every entity.
func (q *Query) WhereHasAnyTag(mask TagBitSet) *Query {
	return q.pred(func(e *Entity) bool { return e.HasAnyTag(mask) })
}

// WhereHasNoTags keeps only entities whose tag bitset shares no bit with
// mask.
func (q *Query) WhereHasNoTags(mask TagBitSet) *Query {
	return q.pred(func(e *Entity) bool { return e.HasNoTags(mask) })
}

// Where keeps only entities for which predicate returns true.
func (q *Query) Where(predicate func(*Entity) bool) *Query {
	return q.pred(predicate)
}

// Take caps the number of accepted results at n.
func (q *Query) Take(n int) *Query {
	q.limit = n
	return q
}

// First is shorthand for Take(1).
func (q *Query) First() *Query {
	return q.Take(1)
}

// OrderBy attaches a sort comparator. At most one ordering may be
// attached to a query; a second call is ignored and logs a warning
// (spec §7: RedundantOrderBy).
func (q *Query) OrderBy(less func(a, b *Entity) bool) *Query {
	if q.orderSet {
		warnf("order_by called twice on the same query; ignoring the second attachment")
		return q
	}
	q.orderBy = less
	q.orderSet = true
	return q
}

// ==============================================
// Evaluation
// ==============================================

func (q *Query) matches(e *Entity) bool {
	for _, p := range q.predicates {
		if !p(e) {
			return false
		}
	}
	return true
}

func (q *Query) prepare() {
	if q.forceMerge {
		q.r.MergePending()
		return
	}
	if !q.ignoreTempWarning && q.r.PendingCount() > 0 {
		warnPendingVisibility(q.r)
	}
}

func warnPendingVisibility(r *Registry) {
	n := len(r.pending)
	listed := n
	if listed > 10 {
		listed = 10
	}
	ids := make([]EntityID, listed)
	for i := 0; i < listed; i++ {
		ids[i] = r.pending[i].id
	}
	warnf("query built without force_merge or ignore_temp_warning while %d entities are pending (first %d: %v)", n, listed, ids)
}

// ==============================================
// Terminal operations (spec §4.7)
// ==============================================

// Gen runs the pipeline and returns all matching entities. The result is
// cached: subsequent calls on the same Query return the same slice
// without re-evaluating, satisfying query idempotence (spec §8).
func (q *Query) Gen() []*Entity {
	if q.hasCached {
		return q.cached
	}
	q.prepare()

	var result []*Entity
	for _, e := range q.r.LiveEntities() {
		if q.matches(e) {
			result = append(result, e)
			if q.orderBy == nil && q.limit >= 0 && len(result) >= q.limit {
				break
			}
		}
	}

	if q.orderBy != nil {
		sort.SliceStable(result, func(i, j int) bool { return q.orderBy(result[i], result[j]) })
		if q.limit >= 0 && len(result) > q.limit {
			result = result[:q.limit]
		}
	}

	q.cached = result
	q.hasCached = true
	return result
}

// GenFirst returns the first match, or (nil, false) if none. It
// short-circuits entity-by-entity evaluation when no ordering is
// attached (spec §8 "Short-circuit" law); an attached ordering requires
// materializing and sorting the full result set first.
func (q *Query) GenFirst() (*Entity, bool) {
	if q.hasCached {
		if len(q.cached) == 0 {
			return nil, false
		}
		return q.cached[0], true
	}
	if q.orderBy != nil {
		res := q.Gen()
		if len(res) == 0 {
			return nil, false
		}
		return res[0], true
	}

	q.prepare()
	for _, e := range q.r.LiveEntities() {
		if q.matches(e) {
			return e, true
		}
	}
	return nil, false
}

// GenFirstEnforce is GenFirst but logs a warning when the query is empty.
func (q *Query) GenFirstEnforce() (*Entity, bool) {
	e, ok := q.GenFirst()
	if !ok {
		warnf("gen_first_enforce: query returned no results")
	}
	return e, ok
}

// HasValues reports whether the query matches at least one entity.
// Short-circuits via GenFirst.
func (q *Query) HasValues() bool {
	_, ok := q.GenFirst()
	return ok
}

// IsEmpty is the negation of HasValues.
func (q *Query) IsEmpty() bool { return !q.HasValues() }

// GenCount returns the number of matches.
func (q *Query) GenCount() int { return len(q.Gen()) }

// GenIds returns the ids of every match.
func (q *Query) GenIds() []EntityID {
	res := q.Gen()
	ids := make([]EntityID, len(res))
	for i, e := range res {
		ids[i] = e.id
	}
	return ids
}

// GenHandles returns stable handles for every match.
func (q *Query) GenHandles() []EntityHandle {
	res := q.Gen()
	handles := make([]EntityHandle, len(res))
	for i, e := range res {
		handles[i] = q.r.HandleFor(e)
	}
	return handles
}

// GenFirstHandle returns the first match's handle, or EmptyHandle if
// there is no match or the match has no assigned slot yet.
func (q *Query) GenFirstHandle() EntityHandle {
	e, ok := q.GenFirst()
	if !ok {
		return EmptyHandle
	}
	return q.r.HandleFor(e)
}

// GenRandom returns a uniform-at-random match. Pass rng to make the
// selection deterministic for tests; pass nil to use the package-level
// math/rand source.
func (q *Query) GenRandom(rng *rand.Rand) (*Entity, bool) {
	res := q.Gen()
	if len(res) == 0 {
		return nil, false
	}
	var idx int
	if rng != nil {
		idx = rng.Intn(len(res))
	} else {
		idx = rand.Intn(len(res))
	}
	return res[idx], true
}

// GenAs projects every match to its component of type C, skipping
// matches that (unexpectedly) lack one.
func GenAs[C any](q *Query) []*C {
	res := q.Gen()
	out := make([]*C, 0, len(res))
	for _, e := range res {
		if Has[C](e) {
			out = append(out, GetComponent[C](e))
		}
	}
	return out
}
