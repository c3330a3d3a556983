package interpolate

import (
	"github.com/go-drift/spring/pkg/animation"
)

// Interpolation is an animation.Source derived from parent sources. It
// recomputes on every Get and notifies whenever a parent does.
type Interpolation struct {
	parents []animation.Source
	fn      func(values []any) any
}

// New derives a source from parents. fn receives the parents' current
// values in order.
func New(parents []animation.Source, fn func(values []any) any) *Interpolation {
	return &Interpolation{parents: parents, fn: fn}
}

// Range maps a numeric parent through c. Scalar parents yield float64,
// sequence parents map each component and yield []float64.
func Range(parent animation.Source, c Config) (*Interpolation, error) {
	mapFn, err := Map(c)
	if err != nil {
		return nil, err
	}
	return New([]animation.Source{parent}, func(values []any) any {
		return apply(values[0], mapFn)
	}), nil
}

// Color maps a scalar parent onto colour stops and yields hex strings.
func Color(parent animation.Source, inputRange []float64, stops []string, space Space) (*Interpolation, error) {
	colorFn, err := Colors(inputRange, stops, space)
	if err != nil {
		return nil, err
	}
	return New([]animation.Source{parent}, func(values []any) any {
		v, _ := values[0].(float64)
		return colorFn(v)
	}), nil
}

func apply(v any, fn func(float64) float64) any {
	switch n := v.(type) {
	case float64:
		return fn(n)
	case []float64:
		out := make([]float64, len(n))
		for i, c := range n {
			out[i] = fn(c)
		}
		return out
	default:
		return v
	}
}

// Get evaluates the derivation against the parents' current values.
func (i *Interpolation) Get() any {
	values := make([]any, len(i.parents))
	for n, parent := range i.parents {
		values[n] = parent.Get()
	}
	return i.fn(values)
}

// AddListener subscribes fn to every parent.
func (i *Interpolation) AddListener(fn func()) func() {
	unsubs := make([]func(), 0, len(i.parents))
	for _, parent := range i.parents {
		unsubs = append(unsubs, parent.AddListener(fn))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}
