package silo

import "iter"

// Cursor walks the entities matching a Query, archetype by archetype, row
// by row. While a Cursor is live it holds a lock bit on its World: any
// structural mutation attempted during that window (spawn, despawn,
// add/remove component) panics with WorldLockedError rather than silently
// invalidating the cursor's row indices. The lock releases automatically
// once iteration is exhausted; call Release explicitly if you stop early,
// and defer it around any loop body that can panic — Release is idempotent,
// so a deferred call composes safely with the automatic release on
// exhaustion. Query1/Query2/Query3 already defer it internally.
type Cursor struct {
	world      *World
	query      Query
	archetypes []*archetype
	archIdx    int
	row        int
	arch       *archetype
	matched    int
	lockBit    uint32
	locked     bool
}

// NewCursor snapshots the archetypes currently matching q and locks world
// against structural mutation for the cursor's lifetime.
func NewCursor(w *World, q Query) *Cursor {
	c := &Cursor{world: w, query: q}
	c.Initialize()
	return c
}

// Initialize (re)snapshots the matching archetype set and (re)acquires the
// lock, as if the cursor had just been constructed. Use after structural
// changes you know invalidate a previous snapshot.
func (c *Cursor) Initialize() {
	c.release()
	c.archetypes = matchingArchetypes(c.world, c.query)
	c.archIdx = -1
	c.row = -1
	c.arch = nil
	c.matched = 0
	for _, a := range c.archetypes {
		c.matched += a.Len()
	}
	c.lockBit = c.world.lock()
	c.locked = true
}

// Reset rewinds to the first match without re-snapshotting archetypes,
// re-acquiring the lock if a previous iteration had exhausted and released
// it.
func (c *Cursor) Reset() {
	c.archIdx = -1
	c.row = -1
	c.arch = nil
	if !c.locked {
		c.lockBit = c.world.lock()
		c.locked = true
	}
}

// Next advances to the next matching row, returning false once exhausted.
// Idiomatic use is `for cur.Next() { ... }`.
func (c *Cursor) Next() bool {
	for {
		if c.arch == nil || c.row+1 >= c.arch.Len() {
			c.archIdx++
			if c.archIdx >= len(c.archetypes) {
				c.release()
				return false
			}
			c.arch = c.archetypes[c.archIdx]
			c.row = -1
			continue
		}
		c.row++
		return true
	}
}

// CurrentEntity returns the entity at the cursor's current position. Only
// valid after a Next call that returned true.
func (c *Cursor) CurrentEntity() Entity {
	return c.arch.entityAt(c.row)
}

// TotalMatched returns the number of entities matched at the last
// Initialize, independent of how far iteration has progressed.
func (c *Cursor) TotalMatched() int {
	return c.matched
}

// Release drops the cursor's lock on World early, before Next has returned
// false. Safe to call multiple times.
func (c *Cursor) Release() {
	c.release()
}

func (c *Cursor) release() {
	if c.locked {
		c.world.unlock(c.lockBit)
		c.locked = false
	}
}

// Query1 iterates every entity carrying component A, yielding a pointer
// that aliases the live column slot. Each range over the sequence opens its
// own cursor; breaking out of the range early, or a panic unwinding
// through it, releases that cursor's world lock.
func Query1[A any](w *World, ca ComponentType[A]) iter.Seq2[Entity, *A] {
	q := NewQuery(ca.key)
	return func(yield func(Entity, *A) bool) {
		cur := NewCursor(w, q)
		defer cur.Release()
		for cur.Next() {
			if !yield(cur.CurrentEntity(), ca.GetFromCursor(cur)) {
				return
			}
		}
	}
}

// Query2 invokes fn once for every entity carrying both A and B, stopping
// early if fn returns false. Go's range-over-func only binds 0, 1, or 2
// yielded values, which rules out a rangeable iterator once an entity
// handle is zipped with two component pointers — so arity two and up use
// this callback shape instead, the same for_each style the original
// QueryMut::for_each used. The deferred Release covers a panic inside fn
// just as it covers early return or exhaustion, so a system that panics
// mid-tick never leaves the world permanently locked.
func Query2[A, B any](w *World, ca ComponentType[A], cb ComponentType[B], fn func(Entity, *A, *B) bool) {
	q := NewQuery(ca.key, cb.key)
	cur := NewCursor(w, q)
	defer cur.Release()
	for cur.Next() {
		va := ca.GetFromCursor(cur)
		vb := cb.GetFromCursor(cur)
		if !fn(cur.CurrentEntity(), va, vb) {
			return
		}
	}
}

// Query3 is the three-component counterpart of Query2.
func Query3[A, B, C any](w *World, ca ComponentType[A], cb ComponentType[B], cc ComponentType[C], fn func(Entity, *A, *B, *C) bool) {
	q := NewQuery(ca.key, cb.key, cc.key)
	cur := NewCursor(w, q)
	defer cur.Release()
	for cur.Next() {
		va := ca.GetFromCursor(cur)
		vb := cb.GetFromCursor(cur)
		vc := cc.GetFromCursor(cur)
		if !fn(cur.CurrentEntity(), va, vb, vc) {
			return
		}
	}
}
