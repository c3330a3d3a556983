package cmd

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/spring/cmd/springdemo/internal/config"
	"github.com/go-drift/spring/pkg/interpolate"
)

const labelWidth = 10

// row is one property rendered as a bar.
type row struct {
	name     string
	progress float64
	label    string
	color    string
}

// view draws the demo properties onto a terminal screen.
type view struct {
	screen  tcell.Screen
	ranges  map[string][2]float64
	palette func(float64) string
	percent func(float64) string
}

func newView(screen tcell.Screen, demo config.DemoConfig) (*view, error) {
	v := &view{
		screen: screen,
		percent: interpolate.Unit(func(p float64) float64 {
			return math.Round(p * 100)
		}, "%"),
	}
	if err := v.configure(demo); err != nil {
		return nil, err
	}
	return v, nil
}

// configure rebuilds the ranges and colour palette for demo.
func (v *view) configure(demo config.DemoConfig) error {
	space, err := interpolate.ParseSpace(demo.Colors.Space)
	if err != nil {
		return err
	}
	stops := demo.Colors.Stops
	inputs := make([]float64, len(stops))
	for i := range inputs {
		inputs[i] = float64(i) / float64(len(stops)-1)
	}
	palette, err := interpolate.Colors(inputs, stops, space)
	if err != nil {
		return err
	}
	v.palette = palette
	v.ranges = bounds(demo)
	return nil
}

// rows lays out values in name order. Progress is relative to each
// property's from and to, and may leave [0, 1] while a spring overshoots.
func (v *view) rows(values map[string]float64) []row {
	rows := make([]row, 0, len(values))
	for _, name := range slices.Sorted(maps.Keys(values)) {
		p := 1.0
		if r, ok := v.ranges[name]; ok && r[1] > r[0] {
			p = interpolate.Number(values[name], interpolate.Config{
				Range:  []float64{r[0], r[1]},
				Output: []float64{0, 1},
			})
		}
		rows = append(rows, row{
			name:     name,
			progress: p,
			label:    v.percent(p),
			color:    v.palette(p),
		})
	}
	return rows
}

func (v *view) draw(values map[string]float64, status string) {
	v.screen.Clear()
	width, height := v.screen.Size()
	barWidth := max(width-2*labelWidth-4, 1)

	for y, r := range v.rows(values) {
		if y*2+1 >= height-1 {
			break
		}
		line := y*2 + 1
		text(v.screen, 1, line, fmt.Sprintf("%-*s", labelWidth, r.name), tcell.StyleDefault.Bold(true))

		fill := int(math.Round(math.Max(0, math.Min(r.progress, 1)) * float64(barWidth)))
		style := tcell.StyleDefault.Foreground(tcell.GetColor(r.color))
		for x := range barWidth {
			ch := '░'
			if x < fill {
				ch = '█'
			}
			v.screen.SetContent(labelWidth+2+x, line, ch, nil, style)
		}
		text(v.screen, labelWidth+3+barWidth, line, r.label, tcell.StyleDefault)
	}

	text(v.screen, 1, height-1, status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	v.screen.Show()
}

func text(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
