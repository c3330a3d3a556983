package animation

import "slices"

// Source is anything the render side can read and subscribe to: animated
// values, constants and derived interpolations.
type Source interface {
	// Get returns the current resolved value.
	Get() any
	// AddListener registers fn to run whenever the value changes and
	// returns a function that removes it.
	AddListener(fn func()) (remove func())
}

// Value is an animated primitive. It holds either one scalar or one
// fixed-length vector of components, and can be set directly or driven
// toward a target by an [Animation].
//
// Value is not safe for concurrent use; it belongs to the frame loop.
type Value struct {
	components     []float64
	array          bool
	animation      Animation
	listeners      map[int]func()
	nextListenerID int
}

// NewValue creates a scalar value.
func NewValue(v float64) *Value {
	return &Value{
		components: []float64{v},
		listeners:  make(map[int]func()),
	}
}

// NewArray creates a vector value with a copy of components. Its length is
// fixed for the life of the value.
func NewArray(components []float64) *Value {
	return &Value{
		components: slices.Clone(components),
		array:      true,
		listeners:  make(map[int]func()),
	}
}

// IsArray reports whether the value holds a vector rather than a scalar.
func (v *Value) IsArray() bool {
	return v.array
}

// Len returns the number of components.
func (v *Value) Len() int {
	return len(v.components)
}

// Float returns the first component. For scalars this is the value itself.
func (v *Value) Float() float64 {
	if len(v.components) == 0 {
		return 0
	}
	return v.components[0]
}

// Components returns a copy of all components.
func (v *Value) Components() []float64 {
	return slices.Clone(v.components)
}

// Get returns a float64 for scalars or a copy of the []float64 for arrays.
func (v *Value) Get() any {
	if v.array {
		return v.Components()
	}
	return v.Float()
}

// Set halts any running animation, writes the components and notifies
// listeners.
func (v *Value) Set(components ...float64) {
	v.StopAnimation()
	v.update(components)
}

// Animate halts any running animation and starts a on this value. onEnd
// runs exactly once, when a finishes or is halted.
//
// A spring replacing a running spring starts with its velocity, so a
// retarget mid-flight stays smooth.
func (v *Value) Animate(a Animation, onEnd func(EndResult)) {
	if prev, ok := v.animation.(*SpringAnimation); ok {
		if next, ok := a.(*SpringAnimation); ok && next != prev {
			next.carry = prev.Velocity()
		}
	}
	v.StopAnimation()
	v.animation = a
	a.Start(v.Components(), v.update, func(r EndResult) {
		if v.animation == a {
			v.animation = nil
		}
		if onEnd != nil {
			onEnd(r)
		}
	})
}

// StopAnimation halts the running animation, if any, leaving the value
// where it is.
func (v *Value) StopAnimation() {
	if a := v.animation; a != nil {
		v.animation = nil
		a.Stop()
	}
}

// IsAnimating reports whether an animation is driving this value.
func (v *Value) IsAnimating() bool {
	return v.animation != nil
}

// AddListener registers fn to run after every update and returns an
// unsubscribe function.
func (v *Value) AddListener(fn func()) func() {
	id := v.nextListenerID
	v.nextListenerID++
	v.listeners[id] = fn
	return func() {
		delete(v.listeners, id)
	}
}

// ListenerCount returns the number of registered listeners.
func (v *Value) ListenerCount() int {
	return len(v.listeners)
}

func (v *Value) update(components []float64) {
	copy(v.components, components)
	for _, listener := range v.listeners {
		listener()
	}
}

// Constant is a Source that never changes.
type Constant struct {
	value any
}

// NewConstant wraps value as a Source.
func NewConstant(value any) *Constant {
	return &Constant{value: value}
}

// Get returns the wrapped value.
func (c *Constant) Get() any { return c.value }

// AddListener is a no-op; a constant never notifies.
func (c *Constant) AddListener(func()) func() { return func() {} }
