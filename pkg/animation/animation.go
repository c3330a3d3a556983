package animation

// EndResult is the terminal notification of an [Animation].
type EndResult struct {
	// Finished is true when the animation reached its target, false when it
	// was halted first.
	Finished bool
}

// Animation drives a set of components toward a target over frames.
//
// Start begins driving from the given components. onUpdate receives the new
// components on each frame in which they change. onEnd is called exactly
// once, either when the target is reached or when Stop is called.
type Animation interface {
	Start(from []float64, onUpdate func([]float64), onEnd func(EndResult))
	Stop()
}

// Impl builds an Animation toward to under config. Impls are the pluggable
// part of a spring: swap one in to change how motion is computed.
type Impl func(to []float64, config Config) Animation

// animationBase guards the exactly-once terminal notification shared by the
// built-in impls.
type animationBase struct {
	onUpdate func([]float64)
	onEnd    func(EndResult)
	ended    bool
}

func (b *animationBase) begin(onUpdate func([]float64), onEnd func(EndResult)) {
	b.onUpdate = onUpdate
	b.onEnd = onEnd
	b.ended = false
}

func (b *animationBase) emit(components []float64) {
	if b.onUpdate != nil {
		b.onUpdate(components)
	}
}

func (b *animationBase) end(finished bool) {
	if b.ended {
		return
	}
	b.ended = true
	if b.onEnd != nil {
		b.onEnd(EndResult{Finished: finished})
	}
}
