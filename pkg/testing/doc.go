// Package testing drives spring animations and their host widgets
// deterministically, without a real frame loop.
//
// # Quick Start
//
// Create a tester, pump a widget, advance time and assert:
//
//	func TestFadeIn(t *testing.T) {
//	    tester := drifttest.NewTesterWithT(t)
//	    tester.PumpWidget(spring.Spring{
//	        Props:    spring.Props{From: spring.Values{"opacity": 0}, To: spring.Values{"opacity": 1}},
//	        Children: func(v spring.Values) core.Widget { return label{v} },
//	    })
//
//	    if err := tester.PumpAndSettle(2 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    got := tester.Find(drifttest.ByType[label]()).Widget().(label)
//	    ...
//	}
//
// # Time
//
// The tester installs a [FakeClock] as the animation clock. Each Pump steps
// active tickers at the current fake time and flushes pending builds:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/spring/pkg/testing"
package testing
