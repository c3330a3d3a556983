package spring

import (
	"maps"
	"slices"

	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
)

// Values maps property names to values. Animated values are float64 for
// scalars and []float64 for sequences. In native mode they are
// animation.Source instead.
type Values map[string]any

// Merge returns a new map holding v overlaid with each of others in order.
func (v Values) Merge(others ...Values) Values {
	out := maps.Clone(v)
	if out == nil {
		out = make(Values)
	}
	for _, o := range others {
		maps.Copy(out, o)
	}
	return out
}

// Reserved keys are the configuration names never forwarded to the build
// function.
var reservedKeys = []string{
	"from", "to", "config", "native", "onRest", "onFrame",
	"children", "render", "reset", "immediate", "impl",
}

// IsReserved reports whether key names an animation setting.
func IsReserved(key string) bool {
	return slices.Contains(reservedKeys, key)
}

// Props configures an Animator.
type Props struct {
	// From seeds the initial position of each property.
	From Values
	// To is the target of each property.
	To Values
	// ToFunc, when set, replaces To. It receives the current live values.
	ToFunc func(current Values) Values

	// Config parameterizes motion. A zero Config falls back to Preset.
	Config animation.Config
	// Preset names a registered config. Unknown names use the default.
	Preset string
	// Impl drives each property. Nil selects a spring, or a timing
	// animation when the config has a Duration.
	Impl animation.Impl

	// Native hands the raw animated sources to the build function and
	// skips the per-frame rebuild.
	Native bool
	// Immediate jumps every property to its target without animating.
	Immediate bool
	// ImmediateKeys jumps only the named properties.
	ImmediateKeys []string
	// Reset recreates every entry from From, even when unchanged.
	Reset bool

	// OnFrame observes the live values on every frame.
	OnFrame func(Values)
	// OnRest runs once each time every started property comes to rest.
	OnRest func(Values)

	// Forward holds pass-through values merged into the build values.
	Forward Values
	// Children builds output from the live values.
	Children func(Values) core.Widget
	// Render takes precedence over Children. Its values carry Children
	// under the "children" key.
	Render func(Values) core.Widget
}

func (p Props) isImmediate(name string) bool {
	return p.Immediate || slices.Contains(p.ImmediateKeys, name)
}

// resolvedConfig picks Config, then Preset, then the default.
func (p Props) resolvedConfig() animation.Config {
	if !p.Config.IsZero() {
		return p.Config
	}
	if p.Preset != "" {
		if c, ok := animation.LookupPreset(p.Preset); ok {
			return c
		}
	}
	return animation.DefaultConfig
}

func (p Props) resolvedImpl(config animation.Config) animation.Impl {
	switch {
	case p.Impl != nil:
		return p.Impl
	case config.Duration > 0:
		return animation.TimingImpl
	default:
		return animation.SpringImpl
	}
}
