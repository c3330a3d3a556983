package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/spring/pkg/animation"
	drifttest "github.com/go-drift/spring/pkg/testing"
)

// This example drives a value with the default spring and steps frames by
// hand, the way a host frame loop would.
func ExampleController() {
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	value := animation.NewValue(0)
	controller := animation.NewController(value, []float64{100}, animation.DefaultConfig, animation.SpringImpl)
	controller.Start(func(r animation.EndResult) {
		fmt.Printf("finished=%v at %.0f\n", r.Finished, value.Float())
	})

	for animation.HasActiveTickers() {
		animation.StepTickers()
		clk.Advance(16 * time.Millisecond)
	}

	// Output:
	// finished=true at 100
}

// This example plays a fixed-duration animation through a named curve.
func ExampleTimingImpl() {
	clk := drifttest.NewFakeClock()
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	value := animation.NewArray([]float64{0, 0})
	config := animation.Config{Duration: 100 * time.Millisecond, Easing: "inOutQuad"}
	animation.NewController(value, []float64{10, 20}, config, animation.TimingImpl).Start(nil)

	animation.StepTickers()
	clk.Advance(50 * time.Millisecond)
	animation.StepTickers()
	fmt.Printf("halfway: %v\n", value.Get())

	clk.Advance(50 * time.Millisecond)
	animation.StepTickers()
	fmt.Printf("done: %v\n", value.Get())

	// Output:
	// halfway: [5 10]
	// done: [10 20]
}

// This example shows how to create a custom easing curve.
func ExampleCubicBezier() {
	customEase := animation.CubicBezier(0.4, 0.0, 0.2, 1.0)

	fmt.Printf("Progress 0.0 -> %.2f\n", customEase(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", customEase(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", customEase(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.78
	// Progress 1.0 -> 1.00
}
