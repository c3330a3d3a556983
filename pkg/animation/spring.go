package animation

import (
	"math"
	"slices"
	"time"

	"github.com/charmbracelet/harmonica"
)

// maxFrameStep caps the integration step so a stalled frame loop does not
// make the spring jump.
const maxFrameStep = 64 * time.Millisecond

// SpringImpl is the default [Impl]. It integrates a damped harmonic
// oscillator per component with harmonica, treating Tension as stiffness and
// Friction as damping on a unit mass.
func SpringImpl(to []float64, config Config) Animation {
	return NewSpringAnimation(to, config)
}

// SpringAnimation drives components toward a target with spring physics.
type SpringAnimation struct {
	animationBase
	config   Config
	to       []float64
	pos      []float64
	vel      []float64
	ticker   *Ticker
	last     time.Duration
	step     time.Duration
	spring   harmonica.Spring
	omega    float64
	damping  float64
	crossing []float64
	// carry seeds the velocity at Start when it matches the component count.
	carry []float64
}

// NewSpringAnimation creates a spring animation toward to.
func NewSpringAnimation(to []float64, config Config) *SpringAnimation {
	config = config.Resolve()
	if config.Tension <= 0 {
		config.Tension, config.Friction = DefaultConfig.Tension, DefaultConfig.Friction
	}
	return &SpringAnimation{
		config:  config,
		to:      slices.Clone(to),
		omega:   math.Sqrt(config.Tension),
		damping: config.Friction / (2 * math.Sqrt(config.Tension)),
	}
}

// Start begins integrating from the given components.
func (s *SpringAnimation) Start(from []float64, onUpdate func([]float64), onEnd func(EndResult)) {
	s.begin(onUpdate, onEnd)
	s.pos = slices.Clone(from)
	s.vel = make([]float64, len(from))
	if len(s.carry) == len(from) {
		copy(s.vel, s.carry)
	}
	s.carry = nil
	s.crossing = make([]float64, len(from))
	for i := range s.pos {
		s.crossing[i] = s.to[i] - s.pos[i]
	}
	s.last = 0
	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
}

// Stop halts the spring where it is.
func (s *SpringAnimation) Stop() {
	s.halt()
	s.end(false)
}

// Velocity returns a copy of the per-component velocity.
func (s *SpringAnimation) Velocity() []float64 {
	return slices.Clone(s.vel)
}

func (s *SpringAnimation) halt() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}

func (s *SpringAnimation) tick(elapsed time.Duration) {
	dt := min(elapsed-s.last, maxFrameStep)
	s.last = elapsed

	if dt > 0 {
		if dt != s.step {
			s.step = dt
			s.spring = harmonica.NewSpring(dt.Seconds(), s.omega, s.damping)
		}
		for i := range s.pos {
			s.pos[i], s.vel[i] = s.spring.Update(s.pos[i], s.vel[i], s.to[i])
		}
	}

	if s.atRest() {
		s.halt()
		copy(s.pos, s.to)
		s.emit(s.pos)
		s.end(true)
		return
	}
	if dt > 0 {
		s.emit(s.pos)
	}
}

func (s *SpringAnimation) atRest() bool {
	if s.config.Clamp && s.overshot() {
		return true
	}
	for i := range s.pos {
		if math.Abs(s.vel[i]) > s.config.RestSpeed {
			return false
		}
		if math.Abs(s.to[i]-s.pos[i]) > s.config.RestDisplacement {
			return false
		}
	}
	return true
}

// overshot reports whether every moving component has crossed its target.
func (s *SpringAnimation) overshot() bool {
	crossedAll := false
	for i := range s.pos {
		start := s.crossing[i]
		if start == 0 {
			continue
		}
		remaining := s.to[i] - s.pos[i]
		if math.Signbit(start) == math.Signbit(remaining) && remaining != 0 {
			return false
		}
		crossedAll = true
	}
	return crossedAll
}
