package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
)

// FrameDuration is the fake time PumpFrames and PumpAndSettle advance per frame.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester hosts a widget tree against a fake clock. It runs the same
// dispatch, ticker and build phases as a frame loop.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	clock      *FakeClock
	prevClock  animation.Clock
	dispatches []func()
	frames     int
}

// NewTester creates a tester with a fresh fake clock installed.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	clk := NewFakeClock()
	t := &Tester{
		buildOwner: core.NewBuildOwner(),
		clock:      clk,
	}
	t.prevClock = animation.SetClock(clk)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree and restores the animation clock.
func (t *Tester) Cleanup() {
	t.Unmount()
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// BuildOwner returns the owner that schedules rebuilds for the tree.
func (t *Tester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// PumpWidget mounts widget, or updates the mounted tree in place when the
// root widget type and key are unchanged, then runs one frame.
func (t *Tester) PumpWidget(widget core.Widget) error {
	if t.root == nil {
		t.root = core.MountRoot(widget, t.buildOwner)
	} else {
		t.root = core.UpdateRoot(t.root, widget, t.buildOwner)
	}
	return t.Pump()
}

// Unmount tears down the mounted tree, disposing every state.
func (t *Tester) Unmount() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Pump runs a single frame: dispatches, tickers, then build.
func (t *Tester) Pump() error {
	dispatches := t.dispatches
	t.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}

	animation.StepTickers()
	t.buildOwner.FlushBuild()
	t.frames++
	return nil
}

// PumpFrames advances the clock by FrameDuration and pumps, n times.
func (t *Tester) PumpFrames(n int) error {
	for range n {
		t.clock.Advance(FrameDuration)
		if err := t.Pump(); err != nil {
			return err
		}
	}
	return nil
}

// PumpAndSettle runs frames until nothing is animating or pending, or the
// timeout is reached. Each frame advances the fake clock by FrameDuration.
// Returns ErrSettleTimeout if the tree does not settle within timeout.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		if err := t.Pump(); err != nil {
			return err
		}
		if !t.needsWork() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Frames returns how many frames have been pumped.
func (t *Tester) Frames() int {
	return t.frames
}

func (t *Tester) needsWork() bool {
	return t.buildOwner.NeedsWork() ||
		animation.HasActiveTickers() ||
		len(t.dispatches) > 0
}

// Dispatch queues a callback for the next frame.
func (t *Tester) Dispatch(fn func()) {
	t.dispatches = append(t.dispatches, fn)
}

// RootElement returns the root element of the mounted tree.
func (t *Tester) RootElement() core.Element {
	return t.root
}

// Find evaluates a finder against the current element tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
