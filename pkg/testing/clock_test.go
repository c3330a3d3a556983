package testing

import (
	"testing"
	"time"

	"github.com/go-drift/spring/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_InstallsAndRestoresClock(t *testing.T) {
	tester := NewTester()
	if animation.Now() != tester.Clock().Now() {
		t.Error("animation clock should read the tester's fake clock")
	}
	tester.Clock().Advance(time.Second)
	if animation.Now() != tester.Clock().Now() {
		t.Error("animation clock should follow Advance")
	}
	tester.Cleanup()
	if animation.Now() == tester.Clock().Now() {
		t.Error("Cleanup should restore the previous clock")
	}
}
