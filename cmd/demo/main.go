package main

import (
	"log"

	"hearth-ecs/internal/core/ecs"
	"hearth-ecs/internal/core/ecs/components"
	"hearth-ecs/internal/core/systems"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := ecs.DefaultConfig()
	registry := ecs.NewRegistry(cfg)
	scheduler := ecs.NewScheduler(registry, cfg)

	scheduler.RegisterUpdateSystem(systems.NewMovementSystem(
		ecs.TagMask{All: ecs.MaskOf(systems.Runner), None: ecs.MaskOf(systems.Store)}, 1.0))
	scheduler.RegisterUpdateSystem(systems.NewHealthRegenSystem(
		ecs.TagMask{Any: ecs.MaskOf(systems.Runner, systems.Chaser)}, 5))
	debugCount := systems.NewDebugCountSystem(ecs.TagMask{None: ecs.MaskOf(systems.Store)})
	scheduler.RegisterUpdateSystem(debugCount)

	runner := registry.Create(true)
	ecs.AddComponent(runner, components.Transform{})
	ecs.AddComponent(runner, components.Health{Current: 50, Max: 100})
	runner.EnableTag(systems.Runner)

	shopkeeper := registry.Create(true)
	ecs.AddComponent(shopkeeper, components.Transform{})
	shopkeeper.EnableTag(systems.Store)

	registry.MergePending()

	const frame = 1.0 / 60.0
	for i := 0; i < 120; i++ {
		scheduler.Run(frame)
	}

	metrics := scheduler.Metrics()
	log.Printf("ran %d frames: entities=%d components=%d debug_count=%d",
		120, metrics.EntityCount, metrics.ComponentCount, debugCount.Count)
	return nil
}
