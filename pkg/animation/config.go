package animation

import (
	"slices"
	"sync"
	"time"
)

const (
	// DefaultRestSpeed is the speed below which a spring may come to rest.
	DefaultRestSpeed = 0.001
	// DefaultRestDisplacement is the distance from target below which a
	// spring may come to rest.
	DefaultRestDisplacement = 0.001
)

// Config parameterizes motion. Spring impls read Tension, Friction and the
// rest thresholds; timing impls read Duration and the easing.
type Config struct {
	// Tension is the spring stiffness.
	Tension float64 `yaml:"tension"`
	// Friction is the spring damping.
	Friction float64 `yaml:"friction"`
	// RestSpeed overrides DefaultRestSpeed when positive.
	RestSpeed float64 `yaml:"restSpeed,omitempty"`
	// RestDisplacement overrides DefaultRestDisplacement when positive.
	RestDisplacement float64 `yaml:"restDisplacement,omitempty"`
	// Clamp ends a spring as soon as it crosses its target.
	Clamp bool `yaml:"clamp,omitempty"`
	// Duration is the length of a timing animation.
	Duration time.Duration `yaml:"duration,omitempty"`
	// Easing names a curve from the easing registry, see [Easing].
	Easing string `yaml:"easing,omitempty"`
	// EasingFunc takes precedence over Easing when set.
	EasingFunc func(float64) float64 `yaml:"-"`
}

// Built-in spring presets.
var (
	DefaultConfig = Config{Tension: 170, Friction: 26}
	Gentle        = Config{Tension: 120, Friction: 14}
	Wobbly        = Config{Tension: 180, Friction: 12}
	Stiff         = Config{Tension: 210, Friction: 20}
	Slow          = Config{Tension: 280, Friction: 60}
)

var (
	presetMu sync.RWMutex
	presets  = map[string]Config{
		"default": DefaultConfig,
		"gentle":  Gentle,
		"wobbly":  Wobbly,
		"stiff":   Stiff,
		"slow":    Slow,
	}
)

// IsZero reports whether no motion parameter is set.
func (c Config) IsZero() bool {
	return c.Tension == 0 && c.Friction == 0 && c.Duration == 0
}

// Resolve fills unset fields: a zero config becomes DefaultConfig, and the
// rest thresholds get their defaults.
func (c Config) Resolve() Config {
	if c.IsZero() {
		easing, easingFunc, clamp := c.Easing, c.EasingFunc, c.Clamp
		c = DefaultConfig
		c.Easing, c.EasingFunc, c.Clamp = easing, easingFunc, clamp
	}
	if c.RestSpeed <= 0 {
		c.RestSpeed = DefaultRestSpeed
	}
	if c.RestDisplacement <= 0 {
		c.RestDisplacement = DefaultRestDisplacement
	}
	return c
}

// Curve returns the easing curve for this config, LinearCurve if none is set
// or the name is unknown.
func (c Config) Curve() func(float64) float64 {
	if c.EasingFunc != nil {
		return c.EasingFunc
	}
	if curve, ok := Easing(c.Easing); ok {
		return curve
	}
	return LinearCurve
}

// LookupPreset returns the named preset.
func LookupPreset(name string) (Config, bool) {
	presetMu.RLock()
	defer presetMu.RUnlock()
	c, ok := presets[name]
	return c, ok
}

// RegisterPreset adds or replaces a named preset.
func RegisterPreset(name string, c Config) {
	presetMu.Lock()
	defer presetMu.Unlock()
	presets[name] = c
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	presetMu.RLock()
	defer presetMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
