package silo

import "fmt"

// WorldLockedError is raised when a structural mutation (spawn, despawn,
// add/remove component) is attempted while a Cursor holds an iteration lock.
// Spec classifies this as a programmer error: fail loudly rather than
// silently corrupt cursor state.
type WorldLockedError struct{}

func (e WorldLockedError) Error() string {
	return "silo: world is locked by an active query"
}

// EntityNotFoundError is raised by any operation addressed at an entity
// handle that is not currently live (never spawned, or despawned and its
// generation since recycled).
type EntityNotFoundError struct {
	Entity Entity
}

func (e EntityNotFoundError) Error() string {
	return fmt.Sprintf("silo: entity %v is not live", e.Entity)
}

// ComponentExistsError documents the rejected alternative to spec's chosen
// overwrite policy for re-adding an already-present component. silo never
// returns this error — AddComponent overwrites — but the type is kept so
// the policy decision is visible and testable.
type ComponentExistsError struct {
	Key TypeKey
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("silo: component %s already present on entity", typeNameFor(e.Key))
}

// ComponentNotFoundError is raised (as a panic) by operations that need an existing
// component and find the entity's archetype lacking it, in request paths
// where the caller asked for a required component explicitly (as opposed to
// the ok-pattern Get, which just returns false).
type ComponentNotFoundError struct {
	Key TypeKey
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("silo: component %s not present on entity", typeNameFor(e.Key))
}

// TypeMismatchError is raised when a boxed value, or a typed column view,
// disagrees with a column's declared element type.
type TypeMismatchError struct {
	Key   TypeKey
	Value any
}

func (e TypeMismatchError) Error() string {
	return fmt.Sprintf("silo: value %T does not match component type %s", e.Value, typeNameFor(e.Key))
}

// UnknownTypeKeyError is raised when a TypeKey is used that was never
// produced by this process's type registry — a stale or cross-process key.
type UnknownTypeKeyError struct {
	Key TypeKey
}

func (e UnknownTypeKeyError) Error() string {
	return fmt.Sprintf("silo: type key %d was never registered", e.Key)
}

// CacheFullError is returned by SimpleCache.Register once capacity is
// exhausted.
type CacheFullError struct {
	Capacity int
}

func (e CacheFullError) Error() string {
	return fmt.Sprintf("silo: cache at maximum capacity (%d)", e.Capacity)
}

// CacheIndexError is raised by SimpleCache.GetItem/GetItem32 when given an
// index that was never returned by Register (including the reserved 0
// sentinel).
type CacheIndexError struct {
	Index int
	Len   int
}

func (e CacheIndexError) Error() string {
	return fmt.Sprintf("silo: cache index %d out of range (len %d)", e.Index, e.Len)
}
