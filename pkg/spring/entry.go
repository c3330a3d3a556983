package spring

import (
	"slices"

	"github.com/go-drift/spring/pkg/animation"
)

// staticTarget is the position a static property's placeholder value rests
// at. Static properties are not animated, but they still run a trivial
// animation so they take part in rest accounting.
const staticTarget = 1

// Entry is the animation state of one property.
//
// The entry owns a single animated value. Animation and Interpolation are
// two views of it: for scalar and sequence kinds both return the value
// itself, for static kinds Interpolation returns the static value.
type Entry struct {
	name   string
	kind   Kind
	value  *animation.Value
	view   animation.Source
	target []float64
	config animation.Config
	impl   animation.Impl

	stopped bool
	gen     int
	owner   *Animator
}

func newEntry(name string, kind Kind, seed []float64, owner *Animator) *Entry {
	e := &Entry{name: name, kind: kind, owner: owner}
	switch kind {
	case KindScalar:
		e.value = animation.NewValue(seed[0])
	case KindSequence:
		e.value = animation.NewArray(seed)
	default:
		e.value = animation.NewValue(staticTarget)
	}
	e.view = e.value
	return e
}

// Name returns the property name.
func (e *Entry) Name() string { return e.name }

// Kind returns the property's animation shape.
func (e *Entry) Kind() Kind { return e.kind }

// Animation returns the animated value driven by this entry.
func (e *Entry) Animation() *animation.Value { return e.value }

// Interpolation returns the render-facing view of the property.
func (e *Entry) Interpolation() animation.Source { return e.view }

// Target returns a copy of the target components.
func (e *Entry) Target() []float64 { return slices.Clone(e.target) }

// Stopped reports whether the entry has come to rest or been stopped since
// it last started.
func (e *Entry) Stopped() bool { return e.stopped }

// retarget installs the target for the next start. For static kinds the
// view becomes the static value.
func (e *Entry) retarget(value any, target []float64, config animation.Config, impl animation.Impl) {
	if e.kind == KindStatic {
		e.view = animation.NewConstant(value)
		target = []float64{staticTarget}
	}
	e.target = slices.Clone(target)
	e.config = config
	e.impl = impl
}

// jump sets the value straight to its target.
func (e *Entry) jump() {
	e.value.Set(e.target...)
}

// Start drives the value toward its target. Starting a running entry
// supersedes the earlier start, whose completion is then ignored.
//
// A direct Start rejoins the animator's current start, so the entry counts
// toward Pending and rest again until that start has fired. Once it has
// fired, only [Animator.Start] or [Animator.Update] produce a new rest.
func (e *Entry) Start() {
	e.gen++
	gen := e.gen
	e.stopped = false
	if e.owner != nil {
		e.owner.join(e)
	}
	controller := animation.NewController(e.value, e.target, e.config, e.impl)
	controller.Start(func(res animation.EndResult) {
		if gen != e.gen || !res.Finished {
			return
		}
		e.stopped = true
		if e.owner != nil {
			e.owner.settle(e, true)
		}
	})
}

// Stop halts the value where it is. A stop is a cancellation: it never
// counts as the entry coming to rest. Stopping twice is harmless.
func (e *Entry) Stop() {
	e.stopped = true
	e.gen++
	e.value.StopAnimation()
	if e.owner != nil {
		e.owner.settle(e, false)
	}
}

// release detaches the entry from its animator and halts it without
// reporting anything.
func (e *Entry) release() {
	e.owner = nil
	e.stopped = true
	e.gen++
	e.value.StopAnimation()
}
