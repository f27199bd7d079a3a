// Package ecs bridges train events into a [Donburi] world.
//
// [NewDonburiListener] returns a uimodel.TrainsChangedListener that publishes
// every created or destroyed train as a [TrainEvent]. Subscribe to
// [TrainEventType] in your systems and call ProcessEvents once per frame:
//
//	world := donburi.NewWorld()
//	ecs.TrainEventType.Subscribe(world, func(w donburi.World, e ecs.TrainEvent) { ... })
//	scene.SetListener(ecs.NewDonburiListener(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
