package silo

import "github.com/TheBitDrifter/bark"

// Component identifies a registered component type independent of its
// storage. Most callers use ComponentType[T] directly instead of this
// interface; it exists so EntityBuilder.With can accept any component kind
// uniformly.
type Component interface {
	componentKey() TypeKey
}

// ComponentType[T] is the typed handle through which callers add, remove,
// and read component T on entities. Obtain one with NewComponentType and
// reuse it — it is stateless beyond the TypeKey it wraps.
type ComponentType[T any] struct {
	key TypeKey
}

// NewComponentType registers T (if not already registered) and returns its
// handle.
func NewComponentType[T any]() ComponentType[T] {
	return ComponentType[T]{key: keyOf[T]()}
}

func (c ComponentType[T]) componentKey() TypeKey { return c.key }

// Key returns the TypeKey backing this component type, for callers that
// build queries or signatures directly.
func (c ComponentType[T]) Key() TypeKey { return c.key }

// Add attaches value as e's T component, migrating e to a new archetype if
// it doesn't already carry T, or overwriting in place if it does.
func (c ComponentType[T]) Add(w *World, e Entity, value T) {
	w.addComponentBoxed(e, c.key, value)
}

// Remove detaches T from e. A no-op if e doesn't carry T.
func (c ComponentType[T]) Remove(w *World, e Entity) {
	w.removeComponentBoxed(e, c.key)
}

// Get returns a pointer to e's T component and true, or (nil, false) if e
// doesn't carry T. The pointer aliases the archetype column directly — it
// is invalidated by any subsequent structural mutation of e's archetype
// (see Cursor's lock-bit contract, which exists specifically to prevent
// that invalidation during iteration).
func (c ComponentType[T]) Get(w *World, e Entity) (*T, bool) {
	col, row, ok := w.componentColumn(e, c.key)
	if !ok {
		return nil, false
	}
	return &columnSlice[T](col)[row], true
}

// MustGet returns a pointer to e's T component, panicking with
// ComponentNotFoundError if e doesn't carry it. Use when the caller's own
// invariants already guarantee the component is present.
func (c ComponentType[T]) MustGet(w *World, e Entity) *T {
	v, ok := c.Get(w, e)
	if !ok {
		panic(bark.AddTrace(ComponentNotFoundError{Key: c.key}))
	}
	return v
}

// GetFromCursor returns a pointer to T on the entity the cursor currently
// points at. Panics via ComponentNotFoundError if the cursor's current
// archetype doesn't carry T — callers should only request components that
// are part of the cursor's own query, where this can't happen.
func (c ComponentType[T]) GetFromCursor(cur *Cursor) *T {
	v, ok := c.GetFromCursorSafe(cur)
	if !ok {
		panic(bark.AddTrace(ComponentNotFoundError{Key: c.key}))
	}
	return v
}

// GetFromCursorSafe is GetFromCursor without the panic: it reports whether
// the cursor's current archetype carries T.
func (c ComponentType[T]) GetFromCursorSafe(cur *Cursor) (*T, bool) {
	col, ok := cur.arch.columns[c.key]
	if !ok {
		return nil, false
	}
	return &columnSlice[T](col)[cur.row], true
}

// CheckCursor reports whether the cursor's current archetype carries T,
// without dereferencing anything.
func (c ComponentType[T]) CheckCursor(cur *Cursor) bool {
	return cur.arch.Contains(c.key)
}
