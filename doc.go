// Package motion is a headless tween and timeline engine.
//
// Motion advances numeric properties of arbitrary objects toward goal
// values over time, eased by any [gween] curve, and composes animations
// into sequential or parallel timelines that repeat, auto-reverse, and
// nest to any depth. There is no rendering and no scene graph: a driver
// calls Update once a frame and the engine writes plain floats back
// through accessors.
//
// # Quick start
//
// Create an [Engine], register an [Accessor] (or implement [Tweenable] on
// the target type), build, start, and drive:
//
//	engine := motion.NewEngine(motion.Config{})
//	manager := engine.NewManager()
//
//	manager.Add(engine.To(sprite, TagPosition, 1.5).
//		Target(320, 200).
//		Ease(ease.OutCubic))
//
//	// each frame:
//	manager.Update(dt)
//
// # Timelines
//
// Timelines compose tweens and other timelines. Sequential timelines play
// children back to back with exact time handoff — leftover time from a
// finishing child flows into the next child within the same update, so
// variable frame timing never leaves seams. Parallel timelines share
// their clock with every child.
//
//	engine.NewSequential().
//		Push(engine.To(sprite, TagPosition, 1).Target(100, 0)).
//		BeginParallel().
//		Push(engine.To(sprite, TagAlpha, 0.5).Target(0)).
//		Push(engine.To(sprite, TagScale, 0.5).Target(2, 2)).
//		End().
//		RepeatYoyo(1, 0).
//		Start()
//
// Driving a tree with a negative delta rewinds it through the exact same
// transitions, firing the Back* events; see [EventType].
//
// # Scripts
//
// Timeline trees can also be described in YAML and rebuilt live with a
// [Watcher]; see [Engine.LoadScript]. The ecs subpackage adapts managers
// to a [Donburi] world.
//
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package motion
