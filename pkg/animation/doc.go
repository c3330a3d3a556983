// Package animation provides the engine primitives that spring animations
// are built from.
//
// # Core Components
//
//   - [Value]: an animated primitive holding one scalar or one fixed-length
//     vector of float64 components. Values can be set directly or driven by
//     an [Animation].
//
//   - [Animation] and [Impl]: the drive contract. An Impl builds an Animation
//     toward a target under a [Config]. [SpringImpl] integrates a damped
//     spring with harmonica; [TimingImpl] plays a fixed duration through an
//     easing curve.
//
//   - [Controller]: binds one Value, one target and one Config, and reports
//     a single terminal [EndResult] per Start.
//
//   - [Composite]: aggregates named [Source]s and notifies one callback
//     whenever any of them changes. This is what render code listens to.
//
//   - [Ticker]: the frame primitive. Tickers are driven by the host's frame
//     loop via [StepTickers].
//
// # Basic Usage
//
//	v := animation.NewValue(0)
//	c := animation.NewController(v, []float64{1}, animation.Wobbly, animation.SpringImpl)
//	v.AddListener(func() { fmt.Println(v.Float()) })
//	c.Start(func(r animation.EndResult) {
//	    fmt.Println("finished:", r.Finished)
//	})
//
//	// Once per frame, from the host:
//	animation.StepTickers()
package animation
