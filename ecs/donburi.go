package ecs

import (
	"github.com/phanxgames/motion"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// AnimatorData is the component payload: the manager driving an entity's
// animations.
type AnimatorData struct {
	Manager *motion.Manager
}

// Animator is the Donburi component type carrying an entity's manager.
var Animator = donburi.NewComponentType[AnimatorData]()

var animatorQuery = donburi.NewQuery(filter.Contains(Animator))

// Attach stores a manager on the entry. The entry must have been created
// with (or already carry) the Animator component.
func Attach(entry *donburi.Entry, m *motion.Manager) {
	Animator.SetValue(entry, AnimatorData{Manager: m})
}

// Manager returns the manager attached to the entry, or nil.
func Manager(entry *donburi.Entry) *motion.Manager {
	if !entry.HasComponent(Animator) {
		return nil
	}
	return Animator.Get(entry).Manager
}

// Update advances every entity's manager by dt seconds. Call it once per
// frame from your system loop.
func Update(w donburi.World, dt float64) {
	animatorQuery.Each(w, func(entry *donburi.Entry) {
		if d := Animator.Get(entry); d.Manager != nil {
			d.Manager.Update(dt)
		}
	})
}
