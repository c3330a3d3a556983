package interpolate

import "strconv"

// Unit formats the result of fn with a unit suffix, e.g. "12.5px".
func Unit(fn func(float64) float64, unit string) func(float64) string {
	return func(input float64) string {
		return strconv.FormatFloat(fn(input), 'f', -1, 64) + unit
	}
}
