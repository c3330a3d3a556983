package animation

import "slices"

// Controller drives one [Value] toward one target under one [Config].
//
// Each Start replaces any animation already running on the value and
// reports exactly one [EndResult] for that start. Per-frame progress is
// observable through the value's listeners.
//
// A Controller is cheap; build a new one whenever the target or config
// changes.
type Controller struct {
	value  *Value
	to     []float64
	config Config
	impl   Impl
}

// NewController creates a controller. A nil impl selects [SpringImpl].
func NewController(value *Value, to []float64, config Config, impl Impl) *Controller {
	if impl == nil {
		impl = SpringImpl
	}
	return &Controller{
		value:  value,
		to:     slices.Clone(to),
		config: config,
		impl:   impl,
	}
}

// Value returns the driven value.
func (c *Controller) Value() *Value {
	return c.value
}

// Target returns a copy of the target components.
func (c *Controller) Target() []float64 {
	return slices.Clone(c.to)
}

// Config returns the motion config.
func (c *Controller) Config() Config {
	return c.config
}

// Start animates the value toward the target. onEnd may be nil.
func (c *Controller) Start(onEnd func(EndResult)) {
	c.value.Animate(c.impl(c.to, c.config), onEnd)
}

// Stop halts the value mid-flight. The running start reports
// Finished=false.
func (c *Controller) Stop() {
	c.value.StopAnimation()
}

// IsAnimating reports whether the value is being driven.
func (c *Controller) IsAnimating() bool {
	return c.value.IsAnimating()
}

// Dispose halts the value.
func (c *Controller) Dispose() {
	c.Stop()
}
