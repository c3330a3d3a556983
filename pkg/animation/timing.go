package animation

import (
	"slices"
	"time"
)

// TimingImpl is an [Impl] that plays a fixed Duration through the config's
// easing curve. A zero Duration jumps to the target on the first frame.
func TimingImpl(to []float64, config Config) Animation {
	return NewTimingAnimation(to, config)
}

// TimingAnimation interpolates components from start to target over a fixed
// duration.
type TimingAnimation struct {
	animationBase
	duration time.Duration
	curve    func(float64) float64
	from     []float64
	to       []float64
	current  []float64
	ticker   *Ticker
}

// NewTimingAnimation creates a timing animation toward to.
func NewTimingAnimation(to []float64, config Config) *TimingAnimation {
	return &TimingAnimation{
		duration: config.Duration,
		curve:    config.Curve(),
		to:       slices.Clone(to),
	}
}

// Start begins playback from the given components.
func (a *TimingAnimation) Start(from []float64, onUpdate func([]float64), onEnd func(EndResult)) {
	a.begin(onUpdate, onEnd)
	a.from = slices.Clone(from)
	a.current = slices.Clone(from)
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

// Stop halts playback at the current position.
func (a *TimingAnimation) Stop() {
	a.halt()
	a.end(false)
}

func (a *TimingAnimation) halt() {
	if a.ticker != nil {
		a.ticker.Stop()
		a.ticker = nil
	}
}

func (a *TimingAnimation) tick(elapsed time.Duration) {
	progress := 1.0
	if a.duration > 0 {
		progress = min(float64(elapsed)/float64(a.duration), 1)
	}
	eased := a.curve(progress)
	for i := range a.current {
		a.current[i] = a.from[i] + (a.to[i]-a.from[i])*eased
	}
	if progress >= 1 {
		a.halt()
		copy(a.current, a.to)
		a.emit(a.current)
		a.end(true)
		return
	}
	a.emit(a.current)
}
