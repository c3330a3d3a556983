package spring

import (
	"slices"
	"testing"

	"github.com/go-drift/spring/pkg/animation"
)

// manualImpl records every animation it builds so tests can drive frames
// and completions by hand.
type manualImpl struct {
	runs    []*manualRun
	configs []animation.Config
}

func (m *manualImpl) impl(to []float64, config animation.Config) animation.Animation {
	run := &manualRun{to: slices.Clone(to)}
	m.runs = append(m.runs, run)
	m.configs = append(m.configs, config)
	return run
}

// run returns the latest live run driving toward to.
func (m *manualImpl) run(t *testing.T, to ...float64) *manualRun {
	t.Helper()
	for i := len(m.runs) - 1; i >= 0; i-- {
		r := m.runs[i]
		if !r.ended && slices.Equal(r.to, to) {
			return r
		}
	}
	t.Fatalf("no live run toward %v", to)
	return nil
}

func (m *manualImpl) live() int {
	n := 0
	for _, r := range m.runs {
		if !r.ended {
			n++
		}
	}
	return n
}

type manualRun struct {
	to       []float64
	onUpdate func([]float64)
	onEnd    func(animation.EndResult)
	ended    bool
}

func (r *manualRun) Start(from []float64, onUpdate func([]float64), onEnd func(animation.EndResult)) {
	r.onUpdate = onUpdate
	r.onEnd = onEnd
}

func (r *manualRun) Stop() {
	if r.ended {
		return
	}
	r.ended = true
	r.onEnd(animation.EndResult{Finished: false})
}

// frame reports intermediate components.
func (r *manualRun) frame(components ...float64) {
	r.onUpdate(components)
}

// finish moves to the target and reports natural completion.
func (r *manualRun) finish() {
	if r.ended {
		return
	}
	r.ended = true
	r.onUpdate(r.to)
	r.onEnd(animation.EndResult{Finished: true})
}

// restRecorder collects rest notifications.
type restRecorder struct {
	calls []Values
}

func (r *restRecorder) onRest(v Values) {
	r.calls = append(r.calls, v)
}
