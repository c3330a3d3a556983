package cmd

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/spring/cmd/springdemo/internal/config"
	"github.com/go-drift/spring/cmd/springdemo/internal/stream"
	"github.com/go-drift/spring/pkg/animation"
	drifttest "github.com/go-drift/spring/pkg/testing"
)

func testDemo() config.DemoConfig {
	return config.DemoConfig{
		From:   map[string]float64{"x": 0},
		To:     map[string]float64{"x": 10},
		Preset: "default",
		Colors: config.ColorConfig{Stops: []string{"#000000", "#ffffff"}},
	}
}

func useFakeClock(t *testing.T) *drifttest.FakeClock {
	t.Helper()
	clock := drifttest.NewFakeClock()
	prev := animation.SetClock(clock)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clock
}

func settleDemo(t *testing.T, d *demo, clock *drifttest.FakeClock) {
	t.Helper()
	for range 2000 {
		clock.Advance(drifttest.FrameDuration)
		d.frame()
		if !d.animating() {
			return
		}
	}
	t.Fatal("demo did not settle")
}

func TestDemo_TogglesBetweenStates(t *testing.T) {
	clock := useFakeClock(t)
	d := newDemo(&config.Resolved{Demo: testDemo()})
	defer d.close()

	if got := d.values()["x"]; got != 0 {
		t.Errorf("initial x = %v, want 0", got)
	}
	settleDemo(t, d, clock)
	if got := d.values()["x"]; got != 10 {
		t.Errorf("x at rest = %v, want 10", got)
	}
	if d.rests != 1 {
		t.Errorf("rests = %d, want 1", d.rests)
	}

	d.toggle()
	settleDemo(t, d, clock)
	if got := d.values()["x"]; got != 0 {
		t.Errorf("x after toggle = %v, want 0", got)
	}
	if d.rests != 2 {
		t.Errorf("rests = %d, want 2", d.rests)
	}
}

func TestDemo_Replay(t *testing.T) {
	clock := useFakeClock(t)
	d := newDemo(&config.Resolved{Demo: testDemo()})
	defer d.close()
	settleDemo(t, d, clock)

	d.replay()
	clock.Advance(drifttest.FrameDuration)
	d.frame()
	if got := d.values()["x"]; got <= 0 || got >= 10 {
		t.Errorf("x after replay frame = %v, want between 0 and 10", got)
	}
	settleDemo(t, d, clock)
	if got := d.values()["x"]; got != 10 {
		t.Errorf("x after replay = %v, want 10", got)
	}
}

func TestDemo_Reconfigure(t *testing.T) {
	clock := useFakeClock(t)
	d := newDemo(&config.Resolved{Demo: testDemo()})
	defer d.close()
	settleDemo(t, d, clock)

	next := testDemo()
	next.To = map[string]float64{"x": 4}
	d.reconfigure(&config.Resolved{Demo: next})
	settleDemo(t, d, clock)
	if got := d.values()["x"]; got != 4 {
		t.Errorf("x after reload = %v, want 4", got)
	}
}

func TestDemo_NativeResolvesSources(t *testing.T) {
	clock := useFakeClock(t)
	demo := testDemo()
	demo.Native = true
	d := newDemo(&config.Resolved{Demo: demo})
	defer d.close()

	if _, ok := d.latest["x"].(animation.Source); !ok {
		t.Fatalf("native build values = %v, want sources", d.latest)
	}
	settleDemo(t, d, clock)
	if got := d.values()["x"]; got != 10 {
		t.Errorf("x at rest = %v, want 10", got)
	}
}

func TestBounds(t *testing.T) {
	got := bounds(config.DemoConfig{
		From: map[string]float64{"x": 5, "only": 2},
		To:   map[string]float64{"x": -5, "y": 1},
	})
	want := map[string][2]float64{"x": {-5, 5}, "only": {2, 2}, "y": {1, 1}}
	if len(got) != len(want) {
		t.Fatalf("bounds = %v", got)
	}
	for name, r := range want {
		if got[name] != r {
			t.Errorf("bounds[%s] = %v, want %v", name, got[name], r)
		}
	}
}

func TestView_Rows(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	v, err := newView(screen, testDemo())
	if err != nil {
		t.Fatal(err)
	}
	rows := v.rows(map[string]float64{"x": 5, "fixed": 3})
	if len(rows) != 2 || rows[0].name != "fixed" || rows[1].name != "x" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].progress != 1 || rows[0].label != "100%" {
		t.Errorf("unknown property row = %+v", rows[0])
	}
	if rows[1].label != "50%" || rows[1].color != "#808080" {
		t.Errorf("x row = %+v", rows[1])
	}

	overshoot := v.rows(map[string]float64{"x": 11})[0]
	if overshoot.label != "110%" || overshoot.color != "#ffffff" {
		t.Errorf("overshoot row = %+v", overshoot)
	}

	v.draw(map[string]float64{"x": 5}, "status")
}

func TestView_ConfigureRejectsBadSpace(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	demo := testDemo()
	demo.Colors.Space = "cmyk"
	if _, err := newView(screen, demo); err == nil {
		t.Error("expected colour space error")
	}
}

func TestPrintPresets(t *testing.T) {
	animation.RegisterPreset("snappy-test", animation.Config{Duration: 200e6, Easing: "easeOutCubic"})
	var out bytes.Buffer
	if err := printPresets(&out); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	var found bool
	for _, line := range lines {
		if strings.HasPrefix(line, "snappy-test") {
			found = strings.Contains(line, "200ms") && strings.Contains(line, "easeOutCubic")
		}
		if strings.HasPrefix(line, "default ") && !strings.Contains(line, "170") {
			t.Errorf("default row = %q", line)
		}
	}
	if !found {
		t.Errorf("configured preset missing:\n%s", out.String())
	}
}

type recordingPublisher struct {
	frames []stream.Frame
}

func (p *recordingPublisher) Publish(topic string, qos byte, payload []byte) error {
	var f stream.Frame
	if err := json.Unmarshal(payload, &f); err != nil {
		return err
	}
	p.frames = append(p.frames, f)
	return nil
}

func runDriver(t *testing.T, d *streamDriver, clock *drifttest.FakeClock) int {
	t.Helper()
	for i := range 2000 {
		clock.Advance(drifttest.FrameDuration)
		if !d.step() {
			return i
		}
	}
	t.Fatal("driver did not finish")
	return 0
}

func TestStreamDriver_PublishesUntilRest(t *testing.T) {
	clock := useFakeClock(t)
	pub := &recordingPublisher{}
	d := newStreamDriver(stream.NewStreamer(pub, "demo/frames", 0), testDemo(), false, 0)
	defer d.stop()

	runDriver(t, d, clock)
	if len(pub.frames) < 3 {
		t.Fatalf("published %d frames, want several", len(pub.frames))
	}
	for i, f := range pub.frames {
		if f.Seq != i+1 {
			t.Errorf("frame %d has seq %d", i, f.Seq)
		}
		if f.Rest != (i == len(pub.frames)-1) {
			t.Errorf("frame %d rest = %v", i, f.Rest)
		}
	}
	last := pub.frames[len(pub.frames)-1]
	if x := last.Values["x"].(float64); math.Abs(x-10) > 1e-9 {
		t.Errorf("rest frame x = %v, want 10", x)
	}
}

func TestStreamDriver_FrameLimit(t *testing.T) {
	clock := useFakeClock(t)
	pub := &recordingPublisher{}
	d := newStreamDriver(stream.NewStreamer(pub, "demo/frames", 0), testDemo(), true, 5)

	runDriver(t, d, clock)
	if len(pub.frames) != 5 {
		t.Errorf("published %d frames, want 5", len(pub.frames))
	}
	if animation.HasActiveTickers() {
		t.Error("tickers still running after the limit")
	}
}

func TestStreamDriver_LoopSwapsTarget(t *testing.T) {
	clock := useFakeClock(t)
	pub := &recordingPublisher{}
	d := newStreamDriver(stream.NewStreamer(pub, "demo/frames", 0), testDemo(), true, 0)
	defer d.stop()

	var rests []stream.Frame
	for range 4000 {
		clock.Advance(drifttest.FrameDuration)
		if !d.step() {
			t.Fatal("looping driver stopped")
		}
		rests = rests[:0]
		for _, f := range pub.frames {
			if f.Rest {
				rests = append(rests, f)
			}
		}
		if len(rests) == 2 {
			break
		}
	}
	if len(rests) != 2 {
		t.Fatalf("saw %d rests, want 2", len(rests))
	}
	if x := rests[0].Values["x"].(float64); math.Abs(x-10) > 1e-9 {
		t.Errorf("first rest x = %v, want 10", x)
	}
	if x := rests[1].Values["x"].(float64); math.Abs(x) > 1e-9 {
		t.Errorf("second rest x = %v, want 0", x)
	}
}

func TestStreamDriver_OneMessagePerStep(t *testing.T) {
	clock := useFakeClock(t)
	pub := &recordingPublisher{}
	demo := testDemo()
	demo.From = map[string]float64{"x": 0, "opacity": 0, "scale": 0.2}
	demo.To = map[string]float64{"x": 1, "opacity": 1, "scale": 1}
	d := newStreamDriver(stream.NewStreamer(pub, "demo/frames", 0), demo, false, 0)
	defer d.stop()

	steps := 0
	for range 2000 {
		clock.Advance(drifttest.FrameDuration)
		more := d.step()
		steps++
		if len(pub.frames) != steps {
			t.Fatalf("after %d steps published %d messages, want one per step", steps, len(pub.frames))
		}
		if !more {
			break
		}
	}

	first := pub.frames[0]
	if len(first.Values) != 3 {
		t.Fatalf("first frame values = %v, want all three properties", first.Values)
	}
	for name, v := range first.Values {
		if v.(float64) == demo.From[name] {
			t.Errorf("first frame %s = %v, still at its from value", name, v)
		}
	}
	last := pub.frames[len(pub.frames)-1]
	if !last.Rest {
		t.Error("final message should be the rest frame")
	}
	for name, want := range demo.To {
		if got := last.Values[name].(float64); math.Abs(got-want) > 1e-9 {
			t.Errorf("rest frame %s = %v, want %v", name, got, want)
		}
	}
}

func TestStreamDriver_FrameLimitCountsSteps(t *testing.T) {
	clock := useFakeClock(t)
	pub := &recordingPublisher{}
	demo := testDemo()
	demo.From = map[string]float64{"x": 0, "y": 0, "z": 0}
	demo.To = map[string]float64{"x": 1, "y": 2, "z": 3}
	d := newStreamDriver(stream.NewStreamer(pub, "demo/frames", 0), demo, true, 4)

	if steps := runDriver(t, d, clock); steps != 4 {
		t.Errorf("driver ran %d publishing steps, want 4", steps)
	}
	if len(pub.frames) != 4 {
		t.Errorf("published %d messages, want 4", len(pub.frames))
	}
}
