package silo

import "testing"

func TestWorldSpawnAndGet(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()

	e := w.Spawn().With(position, Position{X: 1, Y: 2}).Build()
	if !w.Alive(e) {
		t.Fatal("spawned entity should be alive")
	}
	pos, ok := position.Get(w, e)
	if !ok || pos.X != 1 || pos.Y != 2 {
		t.Fatalf("expected Position{1,2}, got %v ok=%v", pos, ok)
	}
}

func TestWorldAddComponentMigratesArchetype(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	velocity := NewComponentType[Velocity]()

	e := w.Spawn().With(position, Position{X: 1, Y: 1}).Build()
	velocity.Add(w, e, Velocity{X: 9, Y: 9})

	pos, ok := position.Get(w, e)
	if !ok || pos.X != 1 {
		t.Fatalf("position must survive the archetype migration, got %v ok=%v", pos, ok)
	}
	vel, ok := velocity.Get(w, e)
	if !ok || vel.X != 9 {
		t.Fatalf("expected newly added velocity, got %v ok=%v", vel, ok)
	}
}

func TestWorldAddComponentOverwritesWithoutMigration(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()

	e := w.Spawn().With(position, Position{X: 1, Y: 1}).Build()
	position.Add(w, e, Position{X: 5, Y: 5})

	pos, ok := position.Get(w, e)
	if !ok || pos.X != 5 || pos.Y != 5 {
		t.Fatalf("expected overwritten Position{5,5}, got %v ok=%v", pos, ok)
	}
}

func TestWorldRemoveComponentMigratesAndDrops(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	velocity := NewComponentType[Velocity]()

	e := w.Spawn().With(position, Position{X: 1}).With(velocity, Velocity{X: 2}).Build()
	velocity.Remove(w, e)

	if _, ok := velocity.Get(w, e); ok {
		t.Fatal("velocity should be gone after Remove")
	}
	pos, ok := position.Get(w, e)
	if !ok || pos.X != 1 {
		t.Fatalf("position must survive removing velocity, got %v ok=%v", pos, ok)
	}
}

func TestWorldRemoveComponentNotPresentIsNoop(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	velocity := NewComponentType[Velocity]()

	e := w.Spawn().With(position, Position{X: 1}).Build()
	velocity.Remove(w, e) // e never had velocity

	pos, ok := position.Get(w, e)
	if !ok || pos.X != 1 {
		t.Fatalf("removing an absent component must not disturb existing ones, got %v ok=%v", pos, ok)
	}
}

func TestWorldDespawnReindexesSwappedEntity(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()

	a := w.Spawn().With(position, Position{X: 1}).Build()
	b := w.Spawn().With(position, Position{X: 2}).Build()
	c := w.Spawn().With(position, Position{X: 3}).Build()

	w.Despawn(a)

	if w.Alive(a) {
		t.Fatal("despawned entity must not be alive")
	}
	for _, e := range []Entity{b, c} {
		if !w.Alive(e) {
			t.Fatalf("entity %v must remain alive after an unrelated despawn", e)
		}
	}
	pb, ok := position.Get(w, b)
	if !ok || pb.X != 2 {
		t.Fatalf("b's component data must be unaffected by the swap-remove reindex, got %v ok=%v", pb, ok)
	}
	pc, ok := position.Get(w, c)
	if !ok || pc.X != 3 {
		t.Fatalf("c's component data must be unaffected by the swap-remove reindex, got %v ok=%v", pc, ok)
	}
}

func TestWorldDespawnUnknownEntityPanics(t *testing.T) {
	w := NewWorld()
	e := Entity{index: 99, generation: 0}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic despawning an unknown entity")
		}
	}()
	w.Despawn(e)
}

func TestWorldInternIsStableAcrossInsertionOrder(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	velocity := NewComponentType[Velocity]()

	a := w.Spawn().With(position, Position{}).With(velocity, Velocity{}).Build()
	b := w.Spawn().With(velocity, Velocity{}).With(position, Position{}).Build()

	locA := w.locations[a]
	locB := w.locations[b]
	if locA.archetype != locB.archetype {
		t.Fatalf("same type set in different insertion order must intern to the same archetype, got %d and %d", locA.archetype, locB.archetype)
	}
}

func TestResourcesInsertGetRemove(t *testing.T) {
	w := NewWorld()

	if ContainsResource[int](w) {
		t.Fatal("fresh world should not contain an int resource")
	}
	InsertResource(w, 42)
	v, ok := GetResource[int](w)
	if !ok || *v != 42 {
		t.Fatalf("expected resource 42, got %v ok=%v", v, ok)
	}

	*v = 43
	v2, _ := GetResource[int](w)
	if *v2 != 43 {
		t.Fatal("GetResource must alias the stored value for in-place mutation")
	}

	InsertResource(w, 100)
	v3, _ := GetResource[int](w)
	if *v3 != 100 {
		t.Fatalf("re-inserting must overwrite, got %v", *v3)
	}

	removed, ok := RemoveResource[int](w)
	if !ok || removed != 100 {
		t.Fatalf("expected removed value 100, got %v ok=%v", removed, ok)
	}
	if ContainsResource[int](w) {
		t.Fatal("resource should be gone after RemoveResource")
	}
}

func TestWorldLockedPanicsOnStructuralMutation(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	w.Spawn().With(position, Position{}).Build()

	cur := NewCursor(w, NewQuery(position.Key()))
	defer cur.Release()

	defer func() {
		if recover() == nil {
			t.Fatal("expected WorldLockedError panic while a cursor holds the lock")
		}
	}()
	w.Spawn()
}

func TestWorldLockReleasesWhenCursorExhausted(t *testing.T) {
	w := NewWorld()
	position := NewComponentType[Position]()
	w.Spawn().With(position, Position{}).Build()

	cur := NewCursor(w, NewQuery(position.Key()))
	for cur.Next() {
	}

	if w.Locked() {
		t.Fatal("world must unlock once the cursor is exhausted")
	}
	w.Spawn() // must not panic
}
