package silo

// Factory groups the package's constructors behind a single value, mirroring
// TheBitDrifter-warehouse's Factory pattern. It carries no state; Factory{}
// and the package-level DefaultFactory variable are interchangeable.
type Factory struct{}

// DefaultFactory is the conventional entry point, e.g. silo.DefaultFactory.NewWorld().
var DefaultFactory = Factory{}

// NewWorld returns a new, empty World.
func (Factory) NewWorld() *World {
	return NewWorld()
}

// NewScheduler returns a new, empty Scheduler.
func (Factory) NewScheduler() *Scheduler {
	return NewScheduler()
}

// NewQuery returns a leaf Query matching archetypes carrying every given
// component key.
func (Factory) NewQuery(keys ...TypeKey) Query {
	return NewQuery(keys...)
}

// NewCursor returns a Cursor over q's current matches in w.
func (Factory) NewCursor(w *World, q Query) *Cursor {
	return NewCursor(w, q)
}

// FactoryNewComponent registers T and returns its ComponentType handle.
// Generic functions can't be methods in Go, so this lives at package scope
// rather than on Factory itself — the teacher's FactoryNewComponent[T]()
// free-function naming is kept to signal it's part of the same family.
func FactoryNewComponent[T any]() ComponentType[T] {
	return NewComponentType[T]()
}

// FactoryNewCache returns an empty SimpleCache[T] with the given capacity.
func FactoryNewCache[T any](capacity int) *SimpleCache[T] {
	return NewSimpleCache[T](capacity)
}
