package interpolate

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// Extrapolate controls mapping outside the input range.
type Extrapolate int

const (
	// Extend continues the nearest segment past the range.
	Extend Extrapolate = iota
	// Clamp holds the nearest output bound.
	Clamp
	// Identity returns the input unchanged.
	Identity
)

func (e Extrapolate) String() string {
	switch e {
	case Extend:
		return "extend"
	case Clamp:
		return "clamp"
	case Identity:
		return "identity"
	default:
		return fmt.Sprintf("Extrapolate(%d)", int(e))
	}
}

// ParseExtrapolate parses "extend", "clamp" or "identity". The empty string
// is Extend.
func ParseExtrapolate(s string) (Extrapolate, error) {
	switch s {
	case "", "extend":
		return Extend, nil
	case "clamp":
		return Clamp, nil
	case "identity":
		return Identity, nil
	}
	return Extend, fmt.Errorf("interpolate: unknown extrapolation %q", s)
}

// ErrRange is returned for a Config whose ranges cannot be mapped.
var ErrRange = errors.New("interpolate: invalid range")

// Config maps an input range onto an output range. Range must be
// non-decreasing and as long as Output, with at least two points.
type Config struct {
	Range  []float64
	Output []float64
	// Easing shapes progress within each segment. Nil is linear.
	Easing func(float64) float64

	ExtrapolateLeft  Extrapolate
	ExtrapolateRight Extrapolate
}

// Validate reports whether c can be mapped.
func (c Config) Validate() error {
	if len(c.Range) < 2 {
		return fmt.Errorf("%w: need at least two points, got %d", ErrRange, len(c.Range))
	}
	if len(c.Range) != len(c.Output) {
		return fmt.Errorf("%w: %d inputs for %d outputs", ErrRange, len(c.Range), len(c.Output))
	}
	if !slices.IsSorted(c.Range) {
		return fmt.Errorf("%w: input range must be non-decreasing", ErrRange)
	}
	return nil
}

// Map validates c and returns its mapping function.
func Map(c Config) (func(float64) float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	c.Range = slices.Clone(c.Range)
	c.Output = slices.Clone(c.Output)
	return func(input float64) float64 {
		return number(input, c)
	}, nil
}

// Number maps input through c. An invalid c returns input unchanged.
func Number(input float64, c Config) float64 {
	if c.Validate() != nil {
		return input
	}
	return number(input, c)
}

func number(input float64, c Config) float64 {
	i := segment(c.Range, input)
	return mapSegment(input, c.Range[i], c.Range[i+1], c.Output[i], c.Output[i+1], c)
}

// segment returns the index of the segment input falls into. Inputs past
// either end use the outermost segment.
func segment(r []float64, input float64) int {
	i := 1
	for ; i < len(r)-1; i++ {
		if r[i] >= input {
			break
		}
	}
	return i - 1
}

func mapSegment(input, inMin, inMax, outMin, outMax float64, c Config) float64 {
	result := input
	if result < inMin {
		switch c.ExtrapolateLeft {
		case Identity:
			return result
		case Clamp:
			result = inMin
		}
	}
	if result > inMax {
		switch c.ExtrapolateRight {
		case Identity:
			return result
		case Clamp:
			result = inMax
		}
	}
	if outMin == outMax {
		return outMin
	}
	if inMin == inMax {
		if input <= inMin {
			return outMin
		}
		return outMax
	}

	switch {
	case math.IsInf(inMin, -1):
		result = -result
	case math.IsInf(inMax, 1):
		result -= inMin
	default:
		result = (result - inMin) / (inMax - inMin)
	}
	if c.Easing != nil {
		result = c.Easing(result)
	}
	switch {
	case math.IsInf(outMin, -1):
		return -result
	case math.IsInf(outMax, 1):
		return result + outMin
	default:
		return Lerp(outMin, outMax, result)
	}
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
