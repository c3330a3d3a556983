package cmd

import (
	"maps"
	"slices"

	"github.com/go-drift/spring/cmd/springdemo/internal/config"
	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
	"github.com/go-drift/spring/pkg/spring"
)

// demo hosts the demo widget tree and steps it one frame at a time.
type demo struct {
	owner  *core.BuildOwner
	root   core.Element
	latest spring.Values
	rests  int
}

func newDemo(cfg *config.Resolved) *demo {
	d := &demo{owner: core.NewBuildOwner()}
	d.root = core.MountRoot(d.app(cfg), d.owner)
	return d
}

func (d *demo) app(cfg *config.Resolved) demoApp {
	return demoApp{
		demo:   cfg.Demo,
		onRest: func(spring.Values) { d.rests++ },
		sink:   func(v spring.Values) { d.latest = v },
	}
}

// frame advances animations and flushes pending builds.
func (d *demo) frame() {
	animation.StepTickers()
	d.owner.FlushBuild()
}

// reconfigure swaps in a reloaded config without remounting.
func (d *demo) reconfigure(cfg *config.Resolved) {
	d.root = core.UpdateRoot(d.root, d.app(cfg), d.owner)
	d.owner.FlushBuild()
}

func (d *demo) state() *demoState {
	return d.root.(*core.StatefulElement).State().(*demoState)
}

func (d *demo) toggle() { d.state().toggle() }

func (d *demo) replay() {
	if a := d.state().animator(); a != nil {
		a.Replay()
	}
}

func (d *demo) animating() bool {
	return animation.HasActiveTickers()
}

// values resolves the latest built values, reading sources in native mode.
func (d *demo) values() map[string]float64 {
	out := make(map[string]float64, len(d.latest))
	for name, v := range d.latest {
		if source, ok := v.(animation.Source); ok {
			v = source.Get()
		}
		if f, ok := v.(float64); ok {
			out[name] = f
		}
	}
	return out
}

func (d *demo) close() {
	if d.root != nil {
		d.root.Unmount()
		d.root = nil
	}
}

// demoApp toggles one spring between the configured from and to states.
type demoApp struct {
	demo   config.DemoConfig
	onRest func(spring.Values)
	sink   func(spring.Values)
}

func (a demoApp) CreateElement() core.Element { return core.NewStatefulElement(a, nil) }
func (a demoApp) Key() any                    { return nil }
func (a demoApp) CreateState() core.State     { return &demoState{} }

type demoState struct {
	core.StateBase
	flipped bool
}

func (s *demoState) toggle() {
	s.SetState(func() { s.flipped = !s.flipped })
}

func (s *demoState) animator() *spring.Animator {
	var found *spring.Animator
	s.Element().VisitChildren(func(e core.Element) bool {
		found = spring.AnimatorOf(e)
		return true
	})
	return found
}

func (s *demoState) Build(core.BuildContext) core.Widget {
	app := s.Element().Widget().(demoApp)
	to := app.demo.To
	if s.flipped {
		to = app.demo.From
	}
	return spring.Spring{Props: spring.Props{
		From:     toValues(app.demo.From),
		To:       toValues(to),
		Preset:   app.demo.Preset,
		Native:   app.demo.Native,
		OnRest:   app.onRest,
		Children: func(v spring.Values) core.Widget { return sceneView{values: v, sink: app.sink} },
	}}
}

// sceneView hands the built values to the renderer.
type sceneView struct {
	values spring.Values
	sink   func(spring.Values)
}

func (v sceneView) CreateElement() core.Element { return core.NewStatelessElement(v, nil) }
func (v sceneView) Key() any                    { return nil }
func (v sceneView) Build(core.BuildContext) core.Widget {
	if v.sink != nil {
		v.sink(v.values)
	}
	return nil
}

func toValues(m map[string]float64) spring.Values {
	values := make(spring.Values, len(m))
	for k, v := range m {
		values[k] = v
	}
	return values
}

// bounds returns the low and high of each property over from and to.
func bounds(demo config.DemoConfig) map[string][2]float64 {
	out := make(map[string][2]float64)
	names := slices.Sorted(maps.Keys(toValues(demo.From).Merge(toValues(demo.To))))
	for _, name := range names {
		from, hasFrom := demo.From[name]
		to, hasTo := demo.To[name]
		if !hasFrom {
			from = to
		}
		if !hasTo {
			to = from
		}
		out[name] = [2]float64{min(from, to), max(from, to)}
	}
	return out
}
