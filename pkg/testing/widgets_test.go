package testing

import (
	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
)

// label is a leaf widget carrying a value for finders to inspect.
type label struct {
	key   any
	value float64
}

func (l label) CreateElement() core.Element { return core.NewStatelessElement(l, nil) }
func (l label) Key() any                    { return l.key }
func (l label) Build(core.BuildContext) core.Widget {
	return nil
}

// box wraps a single child so finders see nesting.
type box struct {
	key   any
	child core.Widget
}

func (b box) CreateElement() core.Element         { return core.NewStatelessElement(b, nil) }
func (b box) Key() any                            { return b.key }
func (b box) Build(core.BuildContext) core.Widget { return b.child }

// slider animates a value to Target and shows it through a label.
type slider struct {
	Target float64
}

func (s slider) CreateElement() core.Element { return core.NewStatefulElement(s, nil) }
func (s slider) Key() any                    { return nil }
func (s slider) CreateState() core.State     { return &sliderState{} }

type sliderState struct {
	core.StateBase
	value      *animation.Value
	controller *animation.Controller
	settled    int
}

func (s *sliderState) InitState() {
	s.value = animation.NewValue(0)
	core.UseListenable(s, s.value)
	s.start()
}

func (s *sliderState) DidUpdateWidget(core.StatefulWidget) {
	s.start()
}

func (s *sliderState) start() {
	target := s.Element().Widget().(slider).Target
	if s.controller != nil {
		s.controller.Stop()
	}
	s.controller = core.UseController(s, func() *animation.Controller {
		return animation.NewController(s.value, []float64{target}, animation.Config{}, nil)
	})
	s.controller.Start(func(res animation.EndResult) {
		if res.Finished {
			s.settled++
		}
	})
}

func (s *sliderState) Build(core.BuildContext) core.Widget {
	return label{key: "value", value: s.value.Float()}
}
