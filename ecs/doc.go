// Package ecs adapts motion to entity component systems.
//
// The adapter stores a [motion.Manager] per entity in an Animator
// component and drives every manager from one Update call in your
// system loop:
//
//	entry := world.Entry(world.Create(ecs.Animator))
//	ecs.Attach(entry, engine.NewManager())
//
//	// each frame:
//	ecs.Update(world, dt)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
