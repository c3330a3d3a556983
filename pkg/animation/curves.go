package animation

import (
	"math"
	"slices"

	"github.com/fogleman/ease"
)

// Easing curves map linear progress t in [0, 1] to eased progress. They are
// used by [TimingImpl] and by interpolation ranges.

// LinearCurve returns linear progress.
func LinearCurve(t float64) float64 {
	return t
}

// Cubic-bezier curves equivalent to their CSS counterparts.
var (
	EaseCurve          = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseInCurve        = CubicBezier(0.4, 0.0, 1.0, 1.0)
	EaseOutCurve       = CubicBezier(0.0, 0.0, 0.2, 1.0)
	EaseInOutCurve     = CubicBezier(0.4, 0.0, 0.2, 1.0)
	IOSNavigationCurve = CubicBezier(0.22, 1.0, 0.36, 1.0)
)

var easings = map[string]func(float64) float64{
	"linear":        LinearCurve,
	"ease":          EaseCurve,
	"easeIn":        EaseInCurve,
	"easeOut":       EaseOutCurve,
	"easeInOut":     EaseInOutCurve,
	"iosNavigation": IOSNavigationCurve,
	"inQuad":        ease.InQuad,
	"outQuad":       ease.OutQuad,
	"inOutQuad":     ease.InOutQuad,
	"inCubic":       ease.InCubic,
	"outCubic":      ease.OutCubic,
	"inOutCubic":    ease.InOutCubic,
	"inQuart":       ease.InQuart,
	"outQuart":      ease.OutQuart,
	"inOutQuart":    ease.InOutQuart,
	"inSine":        ease.InSine,
	"outSine":       ease.OutSine,
	"inOutSine":     ease.InOutSine,
	"inExpo":        ease.InExpo,
	"outExpo":       ease.OutExpo,
	"inOutExpo":     ease.InOutExpo,
	"inCirc":        ease.InCirc,
	"outCirc":       ease.OutCirc,
	"inOutCirc":     ease.InOutCirc,
	"inBack":        ease.InBack,
	"outBack":       ease.OutBack,
	"inOutBack":     ease.InOutBack,
	"inBounce":      ease.InBounce,
	"outBounce":     ease.OutBounce,
	"inOutBounce":   ease.InOutBounce,
	"inElastic":     ease.InElastic,
	"outElastic":    ease.OutElastic,
	"inOutElastic":  ease.InOutElastic,
}

// Easing returns the named curve.
func Easing(name string) (func(float64) float64, bool) {
	curve, ok := easings[name]
	return curve, ok
}

// EasingNames returns the registered curve names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The curve runs from (0,0) through control points (x1,y1)
// and (x2,y2) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		for range 8 {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierAt(y1, y2, clampUnit(u))
			}
			dx := bezierSlope(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Newton did not converge; bisect inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := bezierAt(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return bezierAt(y1, y2, u)
	}
}

func bezierAt(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierSlope(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	return math.Max(0, math.Min(1, value))
}
