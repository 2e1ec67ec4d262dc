package motion

import (
	"fmt"
	"reflect"
)

// Accessor translates between a target object and the flat float channels
// the engine interpolates. An accessor is registered per target type; the
// channel count for a given tag is fixed and must not exceed the engine's
// combined attributes limit.
type Accessor interface {
	// Values reads the target's current values for tag into buf and
	// returns how many channels it wrote.
	Values(target any, tag int, buf []float64) int
	// SetValues writes len(values) channels back to the target.
	SetValues(target any, tag int, values []float64)
}

// Tweenable lets a target type carry its own accessor, skipping the
// registry lookup. It mirrors the Accessor shape without the target
// argument.
type Tweenable interface {
	TweenValues(tag int, buf []float64) int
	SetTweenValues(tag int, values []float64)
}

// tweenableAccessor adapts a Tweenable target to the Accessor interface.
type tweenableAccessor struct{}

func (tweenableAccessor) Values(target any, tag int, buf []float64) int {
	return target.(Tweenable).TweenValues(tag, buf)
}

func (tweenableAccessor) SetValues(target any, tag int, values []float64) {
	target.(Tweenable).SetTweenValues(tag, values)
}

// RegisterAccessor registers acc for sample's dynamic type. Targets of
// that exact type — or of a type assignable to it, when no exact entry
// exists — are animated through acc.
func (e *Engine) RegisterAccessor(sample any, acc Accessor) {
	if sample == nil || acc == nil {
		panic("motion: RegisterAccessor needs a sample target and an accessor")
	}
	e.accessors[reflect.TypeOf(sample)] = acc
}

// accessorFor resolves the accessor for a live target. Resolution order:
// the Tweenable fast path, an exact type registration, then the first
// registration the target's type is assignable to.
func (e *Engine) accessorFor(target any) Accessor {
	if _, ok := target.(Tweenable); ok {
		return tweenableAccessor{}
	}
	tt := reflect.TypeOf(target)
	if acc, ok := e.accessors[tt]; ok {
		return acc
	}
	for rt, acc := range e.accessors {
		if tt.AssignableTo(rt) {
			return acc
		}
	}
	panic(fmt.Sprintf("motion: no accessor registered for target type %v", tt))
}
