// Package spring animates a named set of properties from one state to
// another and hands the live values to a build function on every frame.
//
// An [Animator] owns one [Entry] per property. Each [Animator.Update]
// reconciles the entries against the merged from and to values, reusing an
// entry when its property keeps the same shape and replacing it otherwise,
// then starts them all. When every started entry comes to rest naturally,
// the animator fires a single rest notification:
//
//	a := spring.NewAnimator(nil)
//	h := a.Update(spring.Props{
//	    From:   spring.Values{"opacity": 0},
//	    To:     spring.Values{"opacity": 1},
//	    OnRest: func(v spring.Values) { fmt.Println("rested at", v) },
//	}, false)
//
//	frames := time.NewTicker(16 * time.Millisecond)
//	defer frames.Stop()
//	for range frames.C {
//	    animation.StepTickers()
//	    if _, ok := h.Result(); ok {
//	        break
//	    }
//	}
//
// Entries advance on the animation frame loop, so something must call
// animation.StepTickers once per frame, as above. Blocking on the handle
// from the goroutine that steps the tickers never returns. The [Spring]
// widget wires an animator into the core widget lifecycle.
package spring
