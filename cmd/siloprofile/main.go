// Command siloprofile profiles spawn, query, and archetype-migration hot
// paths under pkg/profile.
//
// Build and run:
//
//	go build ./cmd/siloprofile
//	./siloprofile -mode=query -cpu
//	go tool pprof -http=":8000" -nodefraction=0.001 ./siloprofile cpu.pprof
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/silo-ecs/silo"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type health struct {
	Current, Max int
}

func main() {
	mode := flag.String("mode", "query", "spawn | query | migrate")
	entities := flag.Int("entities", 10000, "number of entities to spawn")
	iters := flag.Int("iters", 100, "number of iterations of the workload")
	cpu := flag.Bool("cpu", false, "profile CPU instead of memory allocations")
	flag.Parse()

	var p interface{ Stop() }
	if *cpu {
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	} else {
		p = profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	}
	defer p.Stop()

	switch *mode {
	case "spawn":
		runSpawn(*entities, *iters)
	case "query":
		runQuery(*entities, *iters)
	case "migrate":
		runMigrate(*entities, *iters)
	default:
		fmt.Printf("unknown mode %q\n", *mode)
	}
}

func runSpawn(numEntities, iters int) {
	posType := silo.FactoryNewComponent[position]()
	velType := silo.FactoryNewComponent[velocity]()

	for i := 0; i < iters; i++ {
		w := silo.NewWorld()
		for j := 0; j < numEntities; j++ {
			w.Spawn().With(posType, position{X: float64(j)}).With(velType, velocity{}).Build()
		}
	}
}

func runQuery(numEntities, iters int) {
	posType := silo.FactoryNewComponent[position]()
	velType := silo.FactoryNewComponent[velocity]()

	w := silo.NewWorld()
	for j := 0; j < numEntities; j++ {
		w.Spawn().With(posType, position{}).With(velType, velocity{X: 1, Y: 1}).Build()
	}

	for i := 0; i < iters; i++ {
		silo.Query2(w, posType, velType, func(_ silo.Entity, pos *position, vel *velocity) bool {
			pos.X += vel.X
			pos.Y += vel.Y
			return true
		})
	}
}

func runMigrate(numEntities, iters int) {
	posType := silo.FactoryNewComponent[position]()
	healthType := silo.FactoryNewComponent[health]()

	w := silo.NewWorld()
	entities := make([]silo.Entity, 0, numEntities)
	for j := 0; j < numEntities; j++ {
		entities = append(entities, w.Spawn().With(posType, position{}).Build())
	}

	for i := 0; i < iters; i++ {
		for _, e := range entities {
			healthType.Add(w, e, health{Current: 10, Max: 10})
		}
		for _, e := range entities {
			healthType.Remove(w, e)
		}
	}
}
