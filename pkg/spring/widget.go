package spring

import "github.com/go-drift/spring/pkg/core"

// Spring is a widget that animates its Props. Every rebuild of the parent
// that supplies new Props reconciles and restarts the animation.
//
//	spring.Spring{
//	    Props: spring.Props{
//	        From: spring.Values{"x": 0},
//	        To:   spring.Values{"x": 100},
//	        Children: func(v spring.Values) core.Widget {
//	            return Dot{X: v["x"].(float64)}
//	        },
//	    },
//	}
type Spring struct {
	Props
	// WidgetKey distinguishes sibling springs.
	WidgetKey any
}

func (s Spring) CreateElement() core.Element {
	return core.NewStatefulElement(s, nil)
}

func (s Spring) Key() any {
	return s.WidgetKey
}

func (s Spring) CreateState() core.State {
	return &springState{}
}

type springState struct {
	core.StateBase
	animator *Animator
}

func (s *springState) InitState() {
	s.animator = core.UseController(s, func() *Animator {
		return NewAnimator(func() { s.SetState(nil) })
	})
	s.animator.Update(s.props(), false)
}

func (s *springState) DidUpdateWidget(core.StatefulWidget) {
	s.animator.Update(s.props(), false)
}

func (s *springState) Build(core.BuildContext) core.Widget {
	return s.animator.Build()
}

func (s *springState) props() Props {
	return s.Element().Widget().(Spring).Props
}

// AnimatorOf returns the animator behind a mounted Spring element, or nil
// if element does not host one.
func AnimatorOf(element core.Element) *Animator {
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		return nil
	}
	if state, ok := stateful.State().(*springState); ok {
		return state.animator
	}
	return nil
}
