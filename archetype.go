package silo

import "github.com/TheBitDrifter/mask"

type archetypeID uint32

// archetype is a row-major collection of entities that share an identical
// component-type set — one column per type in the signature, one entity
// slot per row. Row r identifies the same entity across entities and every
// column.
type archetype struct {
	id       archetypeID
	sig      mask.Mask
	types    []TypeKey // sorted ascending, canonical
	columns  map[TypeKey]column
	entities []Entity
}

// newArchetype builds an archetype for the given canonical (sorted,
// deduplicated) signature, eagerly cloning each type's prototype column.
func newArchetype(id archetypeID, sig mask.Mask, types []TypeKey) *archetype {
	columns := make(map[TypeKey]column, len(types))
	for _, t := range types {
		columns[t] = prototypeFor(t).cloneEmpty()
	}
	return &archetype{
		id:      id,
		sig:     sig,
		types:   types,
		columns: columns,
	}
}

func (a *archetype) ID() uint32      { return uint32(a.id) }
func (a *archetype) Len() int        { return len(a.entities) }
func (a *archetype) Signature() mask.Mask { return a.sig }

func (a *archetype) Contains(key TypeKey) bool {
	_, ok := a.columns[key]
	return ok
}

// pushEntity appends e as a new row with no column data yet populated;
// callers must push a value onto every one of a's columns before the
// archetype's invariants (columns.len == entities.len) hold again.
func (a *archetype) pushEntity(e Entity) int {
	a.entities = append(a.entities, e)
	return len(a.entities) - 1
}

// swapRemoveEntity removes row from entities only (columns are the caller's
// responsibility, mirroring moveTo's column-then-entity ordering). Returns
// the entity that was swapped into row, if any.
func (a *archetype) swapRemoveEntity(row int) (moved Entity, ok bool) {
	last := len(a.entities) - 1
	if row != last {
		a.entities[row] = a.entities[last]
		moved, ok = a.entities[row], true
	}
	a.entities = a.entities[:last]
	return moved, ok
}

// moveTo migrates the entity at row from a to dst: for every TypeKey shared
// between both signatures the value is moved (boxed) across; for types a
// has but dst lacks, the value is dropped via swapRemove. The entity handle
// itself is appended to dst's entity list as part of this same step — every
// column push below and this append land at the same new row in dst.
// Column operations happen before a's entity-vector swap-remove so row
// indices stay valid throughout, per spec's documented ordering. Returns
// the entity swapped into row in a, if any, so the world can reindex it.
func (a *archetype) moveTo(dst *archetype, row int) (swapped Entity, hadSwap bool) {
	e := a.entityAt(row)
	for _, t := range a.types {
		src := a.columns[t]
		if dstCol, ok := dst.columns[t]; ok {
			dstCol.pushBoxed(src.moveOutBoxed(row))
		} else {
			src.swapRemove(row)
		}
	}
	dst.pushEntity(e)
	return a.swapRemoveEntity(row)
}

func (a *archetype) entityAt(row int) Entity { return a.entities[row] }
