package silo_test

import (
	"fmt"

	"github.com/silo-ecs/silo"
)

// Position is a simple component for 2D coordinates.
type Position struct {
	X float64
	Y float64
}

// Velocity is a simple component for 2D movement.
type Velocity struct {
	X float64
	Y float64
}

// Name identifies an entity for display purposes.
type Name struct {
	Value string
}

// Example_basic shows entity creation, component attachment, and a
// multi-component query.
func Example_basic() {
	world := silo.NewWorld()

	position := silo.FactoryNewComponent[Position]()
	velocity := silo.FactoryNewComponent[Velocity]()
	name := silo.FactoryNewComponent[Name]()

	for i := 0; i < 5; i++ {
		world.Spawn().With(position, Position{}).Build()
	}
	for i := 0; i < 3; i++ {
		world.Spawn().With(position, Position{}).With(velocity, Velocity{}).Build()
	}

	player := world.Spawn().
		With(position, Position{X: 10, Y: 20}).
		With(velocity, Velocity{X: 1, Y: 2}).
		With(name, Name{Value: "Player"}).
		Build()

	matchCount := 0
	silo.Query2(world, position, velocity, func(e silo.Entity, pos *Position, vel *Velocity) bool {
		matchCount++
		return true
	})
	fmt.Printf("Found %d entities with position and velocity\n", matchCount)

	silo.Query2(world, position, velocity, func(e silo.Entity, pos *Position, vel *Velocity) bool {
		if e == player {
			pos.X += vel.X
			pos.Y += vel.Y
		}
		return true
	})

	nme, _ := name.Get(world, player)
	pos, _ := position.Get(world, player)
	fmt.Printf("Updated %s to position (%.1f, %.1f)\n", nme.Value, pos.X, pos.Y)

	// Output:
	// Found 4 entities with position and velocity
	// Updated Player to position (11.0, 22.0)
}

// Example_queries shows composite AND/OR/NOT query construction.
func Example_queries() {
	world := silo.NewWorld()

	position := silo.FactoryNewComponent[Position]()
	velocity := silo.FactoryNewComponent[Velocity]()
	name := silo.FactoryNewComponent[Name]()

	spawnN := func(n int, attach func(*silo.EntityBuilder)) {
		for i := 0; i < n; i++ {
			b := world.Spawn().With(position, Position{})
			attach(b)
			b.Build()
		}
	}
	spawnN(3, func(b *silo.EntityBuilder) {})
	spawnN(3, func(b *silo.EntityBuilder) { b.With(velocity, Velocity{}) })
	spawnN(3, func(b *silo.EntityBuilder) { b.With(name, Name{}) })
	spawnN(3, func(b *silo.EntityBuilder) { b.With(velocity, Velocity{}).With(name, Name{}) })

	and := silo.NewQuery(position.Key()).And(silo.NewQuery(velocity.Key()))
	cur := silo.NewCursor(world, and)
	fmt.Printf("AND query matched %d entities\n", cur.TotalMatched())

	or := silo.NewQuery(velocity.Key()).Or(silo.NewQuery(name.Key()))
	cur = silo.NewCursor(world, or)
	fmt.Printf("OR query matched %d entities\n", cur.TotalMatched())

	notVelocity := silo.NewQuery(position.Key()).And(silo.NewQuery(velocity.Key()).Not())
	cur = silo.NewCursor(world, notVelocity)
	fmt.Printf("NOT query matched %d entities\n", cur.TotalMatched())

	// Output:
	// AND query matched 6 entities
	// OR query matched 9 entities
	// NOT query matched 6 entities
}
