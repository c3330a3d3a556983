// Package interpolate derives render values from animated ones.
//
// A [Config] maps an input range onto an output range, optionally through
// an easing curve, with control over what happens outside the range:
//
//	opacity := interpolate.Map(interpolate.Config{
//	    Range:  []float64{0, 0.5, 1},
//	    Output: []float64{0, 1, 0},
//	})
//
// [Colors] blends colour stops in a chosen colour space and [Unit] formats
// mapped numbers with a unit suffix. [Interpolation] wraps any mapping as an
// animation.Source so native consumers can subscribe to derived values.
package interpolate
