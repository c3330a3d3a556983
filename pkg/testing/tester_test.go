package testing

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/go-drift/spring/pkg/animation"
)

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewTesterWithT(t)

	if err := tester.PumpWidget(label{value: 1}); err != nil {
		t.Fatal(err)
	}
	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
	if tester.Frames() != 1 {
		t.Errorf("expected 1 frame, got %d", tester.Frames())
	}
}

func TestPumpWidget_UpdatesInPlace(t *testing.T) {
	tester := NewTesterWithT(t)

	tester.PumpWidget(label{key: "a", value: 1})
	first := tester.RootElement()

	tester.PumpWidget(label{key: "a", value: 2})
	if tester.RootElement() != first {
		t.Error("same type and key should keep the root element")
	}
	if got := tester.Find(ByKey("a")).Widget().(label).value; got != 2 {
		t.Errorf("expected updated widget value 2, got %v", got)
	}

	tester.PumpWidget(label{key: "b"})
	if tester.RootElement() == first {
		t.Error("key change should replace the root element")
	}
}

func TestPumpAndSettle_RunsAnimationToRest(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.PumpWidget(slider{Target: 100})

	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	state := tester.Find(ByType[slider]()).State().(*sliderState)
	if state.settled != 1 {
		t.Errorf("expected one natural completion, got %d", state.settled)
	}
	got := tester.Find(ByKey("value")).Widget().(label).value
	if math.Abs(got-100) > 1e-9 {
		t.Errorf("expected label at 100, got %v", got)
	}
	if animation.HasActiveTickers() {
		t.Error("tickers should be idle after settling")
	}
}

func TestPumpAndSettle_Timeout(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.PumpWidget(slider{Target: 100})

	err := tester.PumpAndSettle(3 * FrameDuration)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("expected ErrSettleTimeout, got %v", err)
	}
	tester.Unmount()
	if animation.HasActiveTickers() {
		t.Error("unmount should dispose the running controller")
	}
}

func TestPumpFrames_AdvancesClock(t *testing.T) {
	tester := NewTesterWithT(t)
	start := tester.Clock().Now()
	tester.PumpFrames(4)

	if got := tester.Clock().Now().Sub(start); got != 4*FrameDuration {
		t.Errorf("expected %v elapsed, got %v", 4*FrameDuration, got)
	}
}

func TestDispatch_RunsOnNextPump(t *testing.T) {
	tester := NewTesterWithT(t)
	ran := 0
	tester.Dispatch(func() { ran++ })
	if ran != 0 {
		t.Fatal("dispatch should be deferred")
	}
	tester.Pump()
	tester.Pump()
	if ran != 1 {
		t.Errorf("expected dispatch to run once, ran %d", ran)
	}
}
