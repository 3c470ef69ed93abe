package silo

import (
	"reflect"
	"sync"

	"github.com/TheBitDrifter/bark"
)

// TypeKey is a process-stable identity token for a component or resource
// type. It doubles as the bit position used by signature masks, so no
// separate row-index translation is needed between a type and its mask bit.
type TypeKey uint32

type typeInfo struct {
	key       TypeKey
	typ       reflect.Type
	prototype column
}

var typeRegistry = struct {
	mu     sync.Mutex
	byType map[reflect.Type]*typeInfo
	byKey  []*typeInfo
}{
	byType: make(map[reflect.Type]*typeInfo),
}

// keyOf returns the TypeKey for T, registering it on first use. Registration
// also mints the type's prototype column, the template every archetype that
// hosts T clones via column.cloneEmpty.
func keyOf[T any]() TypeKey {
	t := reflect.TypeOf((*T)(nil)).Elem()

	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if info, ok := typeRegistry.byType[t]; ok {
		return info.key
	}

	key := TypeKey(len(typeRegistry.byKey))
	info := &typeInfo{
		key:       key,
		typ:       t,
		prototype: newTypedColumn[T](key),
	}
	typeRegistry.byType[t] = info
	typeRegistry.byKey = append(typeRegistry.byKey, info)
	return info.key
}

// prototypeFor returns the registered prototype column for key. Panics if
// key was never produced by keyOf, which would indicate a stale or
// out-of-process TypeKey — a programmer error.
func prototypeFor(key TypeKey) column {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if int(key) >= len(typeRegistry.byKey) {
		panic(bark.AddTrace(UnknownTypeKeyError{Key: key}))
	}
	return typeRegistry.byKey[key].prototype
}

// typeNameFor returns the short Go type name for key, used only for debug
// formatting (Entity.ComponentsAsString-equivalent).
func typeNameFor(key TypeKey) string {
	typeRegistry.mu.Lock()
	defer typeRegistry.mu.Unlock()

	if int(key) >= len(typeRegistry.byKey) {
		return "?"
	}
	return typeRegistry.byKey[key].typ.String()
}
