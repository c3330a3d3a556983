package interpolate

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Space is the colour space stops are blended in.
type Space int

const (
	// RGB blends channels linearly in sRGB.
	RGB Space = iota
	// Lab blends in CIE L*a*b*, which keeps perceived lightness even.
	Lab
	// HCL blends hue, chroma and luminance along the shortest hue arc.
	HCL
)

// ParseSpace parses "rgb", "lab" or "hcl". The empty string is RGB.
func ParseSpace(s string) (Space, error) {
	switch strings.ToLower(s) {
	case "", "rgb":
		return RGB, nil
	case "lab":
		return Lab, nil
	case "hcl":
		return HCL, nil
	}
	return RGB, fmt.Errorf("interpolate: unknown colour space %q", s)
}

// ParseColor accepts "#rgb", "#rrggbb" or an SVG colour name.
func ParseColor(s string) (colorful.Color, error) {
	if strings.HasPrefix(s, "#") {
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("interpolate: parse colour %q: %w", s, err)
		}
		return c, nil
	}
	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return colorful.Color{}, fmt.Errorf("interpolate: unknown colour %q", s)
	}
	c, _ := colorful.MakeColor(named)
	return c, nil
}

// Colors maps an input range onto colour stops and returns hex strings.
// Inputs outside the range hold the nearest stop.
func Colors(inputRange []float64, stops []string, space Space) (func(float64) string, error) {
	colors := make([]colorful.Color, len(stops))
	for i, stop := range stops {
		c, err := ParseColor(stop)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	progress := make([]float64, len(stops))
	for i := range progress {
		progress[i] = float64(i)
	}
	position, err := Map(Config{
		Range:            inputRange,
		Output:           progress,
		ExtrapolateLeft:  Clamp,
		ExtrapolateRight: Clamp,
	})
	if err != nil {
		return nil, err
	}

	return func(input float64) string {
		p := position(input)
		i := min(int(p), len(colors)-2)
		return blend(colors[i], colors[i+1], p-float64(i), space).Clamped().Hex()
	}, nil
}

func blend(a, b colorful.Color, t float64, space Space) colorful.Color {
	switch space {
	case Lab:
		return a.BlendLab(b, t)
	case HCL:
		return a.BlendHcl(b, t)
	default:
		return a.BlendRgb(b, t)
	}
}
