/*
Package silo provides an archetype-based Entity-Component-System (ECS) for
games and simulations.

silo groups entities by the exact set of component types they carry —
an archetype — so that iterating over entities with a given combination of
components walks tightly-packed, homogeneous columns rather than scattering
across a heap of individually-boxed objects.

Core Concepts:

  - Entity: an opaque, generation-checked handle to a game object.
  - Component: a plain data type attached to entities via a ComponentType[T].
  - Archetype: the set of entities sharing an identical component-type set.
  - Query: a boolean expression over component types, used to select archetypes.
  - Resource: a singleton value keyed by type, independent of any entity.

Basic Usage:

	world := silo.NewWorld()

	position := silo.FactoryNewComponent[Position]()
	velocity := silo.FactoryNewComponent[Velocity]()

	e := world.Spawn().
		With(position, Position{X: 10, Y: 20}).
		With(velocity, Velocity{X: 1, Y: 2}).
		Build()

	silo.Query2(world, position, velocity, func(e silo.Entity, pos *Position, vel *Velocity) bool {
		pos.X += vel.X
		pos.Y += vel.Y
		return true
	})

silo has no rendering, asset, or networking layer of its own — it is the
bookkeeping substrate other systems are built on top of.
*/
package silo
