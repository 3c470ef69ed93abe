package silo

import (
	"sort"

	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
)

type location struct {
	archetype archetypeID
	row       int
}

// World owns every archetype, the entity -> (archetype, row) index, the
// archetype-by-signature lookup, and the resource map. It is the only
// aggregate with global invariants; every structural operation below keeps
// them (see spec.md §8).
type World struct {
	entities   *entityManager
	archetypes []*archetype
	byMask     map[mask.Mask]archetypeID
	locations  map[Entity]location
	resources  resources

	lockBits     mask.Mask256
	nextLockBit  uint32
	freeLockBits []uint32

	events WorldEvents
}

// NewWorld creates an empty World with its distinguished empty archetype
// (signature = ∅) already interned at index 0.
func NewWorld() *World {
	w := &World{
		entities:  newEntityManager(),
		byMask:    make(map[mask.Mask]archetypeID),
		locations: make(map[Entity]location),
		resources: newResources(),
		events:    defaultWorldEvents(),
	}
	empty := newArchetype(0, mask.Mask{}, nil)
	w.archetypes = append(w.archetypes, empty)
	w.byMask[mask.Mask{}] = 0
	return w
}

// Spawn allocates a fresh entity into the empty archetype and returns a
// builder for chaining component attachment.
func (w *World) Spawn() *EntityBuilder {
	w.panicIfLocked()
	e := w.entities.create()
	row := w.archetypes[0].pushEntity(e)
	w.locations[e] = location{archetype: 0, row: row}
	if w.events.OnEntitySpawned != nil {
		w.events.OnEntitySpawned(e)
	}
	return &EntityBuilder{world: w, entity: e}
}

// Despawn removes e from its archetype and recycles its index. Any other
// entity swapped into e's old row is reindexed. Despawning an unknown or
// already-despawned entity is a programmer error.
func (w *World) Despawn(e Entity) {
	w.panicIfLocked()
	loc, ok := w.locations[e]
	if !ok || !w.entities.isAlive(e) {
		panic(bark.AddTrace(EntityNotFoundError{Entity: e}))
	}
	arch := w.archetypes[loc.archetype]
	for _, t := range arch.types {
		arch.columns[t].swapRemove(loc.row)
	}
	if swapped, had := arch.swapRemoveEntity(loc.row); had {
		w.locations[swapped] = location{archetype: loc.archetype, row: loc.row}
	}
	delete(w.locations, e)
	w.entities.destroy(e)
	if w.events.OnEntityDestroyed != nil {
		w.events.OnEntityDestroyed(e)
	}
}

// Alive reports whether e currently identifies a live entity in w.
func (w *World) Alive(e Entity) bool {
	_, ok := w.locations[e]
	return ok && w.entities.isAlive(e)
}

// addComponentBoxed attaches value (which must satisfy key's registered
// type) to e, migrating archetypes if e does not already carry key. Adding
// an already-present component overwrites the stored value in place — the
// spec's chosen policy; ComponentExistsError is never returned.
func (w *World) addComponentBoxed(e Entity, key TypeKey, value any) {
	w.panicIfLocked()
	loc, ok := w.locations[e]
	if !ok || !w.entities.isAlive(e) {
		panic(bark.AddTrace(EntityNotFoundError{Entity: e}))
	}
	arch := w.archetypes[loc.archetype]

	if col, has := arch.columns[key]; has {
		col.set(loc.row, value)
		return
	}

	newTypes := append(append([]TypeKey{}, arch.types...), key)
	sortTypeKeys(newTypes)
	dst := w.intern(newTypes)

	swapped, hadSwap := arch.moveTo(dst, loc.row)
	if hadSwap {
		w.locations[swapped] = location{archetype: loc.archetype, row: loc.row}
	}
	dst.columns[key].pushBoxed(value)
	newRow := dst.Len() - 1
	w.locations[e] = location{archetype: dst.id, row: newRow}
}

func (w *World) removeComponentBoxed(e Entity, key TypeKey) {
	w.panicIfLocked()
	loc, ok := w.locations[e]
	if !ok || !w.entities.isAlive(e) {
		panic(bark.AddTrace(EntityNotFoundError{Entity: e}))
	}
	arch := w.archetypes[loc.archetype]
	if !arch.Contains(key) {
		return
	}

	newTypes := make([]TypeKey, 0, len(arch.types)-1)
	for _, t := range arch.types {
		if t != key {
			newTypes = append(newTypes, t)
		}
	}
	dst := w.intern(newTypes)

	swapped, hadSwap := arch.moveTo(dst, loc.row)
	if hadSwap {
		w.locations[swapped] = location{archetype: loc.archetype, row: loc.row}
	}
	newRow := dst.Len() - 1
	w.locations[e] = location{archetype: dst.id, row: newRow}
}

// componentColumn returns the column and row backing key on e, and whether
// e's archetype carries key. Panics with EntityNotFoundError if e is not a
// live entity.
func (w *World) componentColumn(e Entity, key TypeKey) (col column, row int, ok bool) {
	loc, found := w.locations[e]
	if !found || !w.entities.isAlive(e) {
		panic(bark.AddTrace(EntityNotFoundError{Entity: e}))
	}
	arch := w.archetypes[loc.archetype]
	c, has := arch.columns[key]
	if !has {
		return nil, 0, false
	}
	return c, loc.row, true
}

// intern returns the archetype indexing the given canonical (sorted,
// deduplicated) signature, creating it on first use. Two callers that
// intern the same type set, regardless of insertion order, always receive
// the same archetype.
func (w *World) intern(types []TypeKey) *archetype {
	var m mask.Mask
	for _, t := range types {
		m.Mark(uint32(t))
	}
	if id, ok := w.byMask[m]; ok {
		return w.archetypes[id]
	}
	id := archetypeID(len(w.archetypes))
	arch := newArchetype(id, m, types)
	w.archetypes = append(w.archetypes, arch)
	w.byMask[m] = id
	if w.events.OnArchetypeCreated != nil {
		w.events.OnArchetypeCreated(arch.ID(), types)
	}
	return arch
}

// InsertResource stores value as the singleton resource of type T,
// overwriting any prior value of that type.
func InsertResource[T any](w *World, value T) {
	w.resources.insert(keyOf[T](), &value)
}

// GetResource returns the world's singleton resource of type T. The
// returned pointer aliases the stored value, so it serves as both the
// spec's get_resource and get_resource_mut — Go has no separate mutable
// borrow to express. ok is false if no value of type T was inserted.
func GetResource[T any](w *World) (value *T, ok bool) {
	v, found := w.resources.get(keyOf[T]())
	if !found {
		return nil, false
	}
	return v.(*T), true
}

// RemoveResource deletes and returns the world's singleton resource of type
// T, if present.
func RemoveResource[T any](w *World) (value T, ok bool) {
	v, found := w.resources.remove(keyOf[T]())
	if !found {
		var zero T
		return zero, false
	}
	return *(v.(*T)), true
}

// ContainsResource reports whether a resource of type T is currently
// stored.
func ContainsResource[T any](w *World) bool {
	return w.resources.contains(keyOf[T]())
}

// Locked reports whether any Cursor currently holds an iteration lock on w.
func (w *World) Locked() bool {
	return !w.lockBits.IsEmpty()
}

func (w *World) panicIfLocked() {
	if w.Locked() {
		panic(bark.AddTrace(WorldLockedError{}))
	}
}

// lock reserves a bit in the iteration lock bitset and returns it, reusing a
// bit freed by a prior unlock when one is available rather than growing
// nextLockBit without bound — the same free-list reuse entityManager uses
// for entity indices, applied to the fixed-size Mask256 backing store.
func (w *World) lock() uint32 {
	if n := len(w.freeLockBits); n > 0 {
		bit := w.freeLockBits[n-1]
		w.freeLockBits = w.freeLockBits[:n-1]
		w.lockBits.Mark(bit)
		return bit
	}
	bit := w.nextLockBit
	w.nextLockBit++
	w.lockBits.Mark(bit)
	return bit
}

func (w *World) unlock(bit uint32) {
	w.lockBits.Unmark(bit)
	w.freeLockBits = append(w.freeLockBits, bit)
}

func sortTypeKeys(keys []TypeKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
}
