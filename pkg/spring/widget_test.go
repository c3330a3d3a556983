package spring_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
	"github.com/go-drift/spring/pkg/spring"
	drifttest "github.com/go-drift/spring/pkg/testing"
)

// capture is a leaf widget that records the values it was built with.
type capture struct {
	values spring.Values
}

func (p capture) CreateElement() core.Element         { return core.NewStatelessElement(p, nil) }
func (p capture) Key() any                            { return nil }
func (p capture) Build(core.BuildContext) core.Widget { return nil }

func captureChildren(v spring.Values) core.Widget {
	return capture{values: v}
}

func lastCapture(t *testing.T, tester *drifttest.Tester) spring.Values {
	t.Helper()
	return tester.Find(drifttest.ByType[capture]()).Widget().(capture).values
}

func TestSpring_AnimatesToRest(t *testing.T) {
	tester := drifttest.NewTesterWithT(t)
	var rests []spring.Values

	err := tester.PumpWidget(spring.Spring{Props: spring.Props{
		From:     spring.Values{"opacity": 0},
		To:       spring.Values{"opacity": 1},
		OnRest:   func(v spring.Values) { rests = append(rests, v) },
		Children: captureChildren,
	}})
	if err != nil {
		t.Fatal(err)
	}
	if got := lastCapture(t, tester)["opacity"]; got != 0.0 {
		t.Errorf("first build opacity = %v, want 0", got)
	}

	tester.PumpFrames(5)
	mid := lastCapture(t, tester)["opacity"].(float64)
	if mid <= 0 || mid >= 1 {
		t.Errorf("opacity mid-flight = %v, want strictly between 0 and 1", mid)
	}

	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if len(rests) != 1 || rests[0]["opacity"] != 1.0 {
		t.Errorf("rests = %v, want one with opacity 1", rests)
	}
	if got := lastCapture(t, tester)["opacity"].(float64); math.Abs(got-1) > 1e-9 {
		t.Errorf("settled opacity = %v, want 1", got)
	}
}

func TestSpring_NewPropsRetarget(t *testing.T) {
	tester := drifttest.NewTesterWithT(t)
	var rests []spring.Values
	props := spring.Props{
		From:     spring.Values{"x": 0},
		To:       spring.Values{"x": 10},
		Config:   animation.Stiff,
		OnRest:   func(v spring.Values) { rests = append(rests, v) },
		Children: captureChildren,
	}
	tester.PumpWidget(spring.Spring{Props: props})
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	animator := spring.AnimatorOf(tester.RootElement())
	if animator == nil {
		t.Fatal("root should host an animator")
	}
	entry := animator.Entry("x")

	props.To = spring.Values{"x": 20}
	tester.PumpWidget(spring.Spring{Props: props})
	if animator.Entry("x") != entry {
		t.Error("retargeting should reuse the entry")
	}
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if len(rests) != 2 || rests[1]["x"] != 20.0 {
		t.Errorf("rests = %v", rests)
	}
	if got := lastCapture(t, tester)["x"].(float64); math.Abs(got-20) > 1e-9 {
		t.Errorf("x = %v, want 20", got)
	}
}

func TestSpring_NativeSkipsRebuilds(t *testing.T) {
	tester := drifttest.NewTesterWithT(t)
	builds := 0
	tester.PumpWidget(spring.Spring{Props: spring.Props{
		From:   spring.Values{"x": 0},
		To:     spring.Values{"x": 10},
		Native: true,
		Children: func(v spring.Values) core.Widget {
			builds++
			if _, ok := v["x"].(animation.Source); !ok {
				t.Errorf("native child got %T, want animation.Source", v["x"])
			}
			return capture{values: v}
		},
	}})
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if builds != 1 {
		t.Errorf("native spring rebuilt %d times, want 1", builds)
	}
	source := lastCapture(t, tester)["x"].(animation.Source)
	if got := source.Get().(float64); math.Abs(got-10) > 1e-9 {
		t.Errorf("native source reads %v, want 10", got)
	}
}

func TestSpring_UnmountDisposes(t *testing.T) {
	tester := drifttest.NewTesterWithT(t)
	rested := false
	tester.PumpWidget(spring.Spring{Props: spring.Props{
		From:     spring.Values{"x": 0},
		To:       spring.Values{"x": 10},
		OnRest:   func(spring.Values) { rested = true },
		Children: captureChildren,
	}})
	tester.PumpFrames(2)
	if !animation.HasActiveTickers() {
		t.Fatal("spring should be running")
	}

	tester.Unmount()
	if animation.HasActiveTickers() {
		t.Error("unmount should halt the spring")
	}
	tester.PumpFrames(10)
	if rested {
		t.Error("no rest after unmount")
	}
}

func TestSpring_ForwardAndRender(t *testing.T) {
	tester := drifttest.NewTesterWithT(t)
	tester.PumpWidget(spring.Spring{Props: spring.Props{
		To:       spring.Values{"x": 3},
		Forward:  spring.Values{"title": "card", "reset": true},
		Children: captureChildren,
		Render: func(v spring.Values) core.Widget {
			children := v["children"].(func(spring.Values) core.Widget)
			return children(spring.Values{"title": v["title"], "x": v["x"]})
		},
	}})
	got := lastCapture(t, tester)
	if got["title"] != "card" || got["x"] != 3.0 {
		t.Errorf("render output = %v", got)
	}
	if _, ok := got["reset"]; ok {
		t.Error("reserved key leaked through forward props")
	}
}
