package silo

import "sync"

// WorldEvents are optional lifecycle hooks a World invokes as entities and
// archetypes come and go. All fields are optional; a nil hook is simply
// not called. Grounded on TheBitDrifter-warehouse's Config.SetTableEvents,
// generalized from table-row creation events to the archetype/entity
// lifecycle this package actually has.
type WorldEvents struct {
	// OnEntitySpawned fires after a new entity is placed into the empty
	// archetype, before any component is attached.
	OnEntitySpawned func(e Entity)
	// OnEntityDestroyed fires after an entity has been fully removed and
	// its index released for reuse.
	OnEntityDestroyed func(e Entity)
	// OnArchetypeCreated fires the first time a given component-type set is
	// interned, with the archetype's id and sorted type list.
	OnArchetypeCreated func(archetypeID uint32, types []TypeKey)
}

var config = struct {
	mu            sync.Mutex
	defaultEvents WorldEvents
}{}

// SetDefaultWorldEvents installs events as the hooks every subsequently
// constructed World starts with. Existing Worlds are unaffected; use
// World.SetEvents to change an existing one.
func SetDefaultWorldEvents(events WorldEvents) {
	config.mu.Lock()
	defer config.mu.Unlock()
	config.defaultEvents = events
}

func defaultWorldEvents() WorldEvents {
	config.mu.Lock()
	defer config.mu.Unlock()
	return config.defaultEvents
}

// SetEvents replaces w's lifecycle hooks.
func (w *World) SetEvents(events WorldEvents) {
	w.events = events
}
