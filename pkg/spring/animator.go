package spring

import (
	"maps"
	"slices"

	"github.com/go-drift/spring/pkg/animation"
	"github.com/go-drift/spring/pkg/core"
)

// Animator reconciles a set of property entries against successive Props
// and reports when they all come to rest.
//
// Animator is not safe for concurrent use. Call it from the goroutine that
// steps the animation frame loop.
type Animator struct {
	props         Props
	to            Values
	entries       map[string]*Entry
	composite     *animation.Composite
	barrier       *barrier
	requestRender func()
	disposed      bool
}

// NewAnimator creates an empty animator. requestRender runs after every
// frame unless the current props are native; it may be nil.
func NewAnimator(requestRender func()) *Animator {
	return &Animator{
		entries:       make(map[string]*Entry),
		requestRender: requestRender,
	}
}

// Props returns the props of the last update.
func (a *Animator) Props() Props {
	return a.props
}

// Update reconciles the entries against props and starts them all.
//
// Every property named by From or To gets an entry. An existing entry is
// kept unless props.Reset or force is set, or the property's kind or
// component count changed. Entries for properties no longer named are
// released. force applies once and does not change props.Reset.
func (a *Animator) Update(props Props, force bool) *Handle {
	to := props.To
	if props.ToFunc != nil {
		to = props.ToFunc(a.Values())
	}
	a.props = props
	a.to = to

	merged := props.From.Merge(to)
	config := props.resolvedConfig()
	impl := props.resolvedImpl(config)
	reset := props.Reset || force

	next := make(map[string]*Entry, len(merged))
	sources := make(map[string]animation.Source, len(merged))
	for _, name := range sortedKeys(merged) {
		value := merged[name]
		kind, target := Classify(value)

		entry := a.entries[name]
		if reset || entry == nil || !entry.fits(kind, target) {
			entry = newEntry(name, kind, seedFor(props.From, name, kind, target), a)
		}
		entry.retarget(value, target, config, impl)
		if props.isImmediate(name) {
			entry.jump()
		}
		entry.stopped = false

		next[name] = entry
		sources[name] = entry.Interpolation()
	}

	for name, old := range a.entries {
		if next[name] != old {
			old.release()
		}
	}
	a.entries = next

	prev := a.composite
	a.composite = animation.NewComposite(sources, a.frame)
	if prev != nil {
		prev.Detach()
	}

	return a.Start()
}

// fits reports whether the entry can be reused for a value of kind with
// the given components.
func (e *Entry) fits(kind Kind, target []float64) bool {
	if e.kind != kind {
		return false
	}
	return kind == KindStatic || e.value.Len() == len(target)
}

// seedFor returns the starting components for a new entry: the From value
// when it has the same shape as the target, otherwise the target itself.
func seedFor(from Values, name string, kind Kind, target []float64) []float64 {
	if kind == KindStatic {
		return nil
	}
	if v, ok := from[name]; ok {
		fromKind, seed := Classify(v)
		if fromKind == kind && len(seed) == len(target) {
			return seed
		}
	}
	return target
}

// Start starts every entry and returns a handle that resolves when all of
// them come to rest. Each callback receives the rest snapshot, as does
// OnRest. With no entries the handle resolves at once and nothing is
// called. Starting again supersedes the previous start.
func (a *Animator) Start(onAllSettled ...func(Values)) *Handle {
	h := newHandle()
	entries := a.sortedEntries()
	if len(entries) == 0 {
		a.barrier = nil
		h.resolve(Values{})
		return h
	}

	b := newBarrier(entries, func() {
		snapshot := a.Snapshot()
		if a.props.OnRest != nil {
			a.props.OnRest(snapshot)
		}
		for _, cb := range onAllSettled {
			if cb != nil {
				cb(snapshot)
			}
		}
		h.resolve(snapshot)
	})
	a.barrier = b
	for _, e := range entries {
		e.Start()
	}
	return h
}

// Stop halts every entry. It never fires rest callbacks.
func (a *Animator) Stop() {
	for _, e := range a.sortedEntries() {
		e.Stop()
	}
}

// Dispose stops every entry and releases the animator's subscriptions. No
// callbacks run afterwards.
func (a *Animator) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.Stop()
	for _, e := range a.entries {
		e.release()
	}
	if a.composite != nil {
		a.composite.Detach()
	}
	a.barrier = nil
}

// Replay restarts the current props from From, as if Reset were set once.
func (a *Animator) Replay() *Handle {
	return a.Update(a.props, true)
}

func (a *Animator) settle(e *Entry, natural bool) {
	if a.barrier != nil {
		a.barrier.settle(e, natural)
	}
}

func (a *Animator) join(e *Entry) {
	if a.barrier != nil {
		a.barrier.add(e)
	}
}

// Pending returns how many entries of the current start have yet to settle.
func (a *Animator) Pending() int {
	if a.barrier == nil {
		return 0
	}
	return a.barrier.remaining()
}

func (a *Animator) frame() {
	if a.props.OnFrame != nil {
		a.props.OnFrame(a.Values())
	}
	if !a.props.Native && a.requestRender != nil {
		a.requestRender()
	}
}

// Entry returns the entry for name, or nil.
func (a *Animator) Entry(name string) *Entry {
	return a.entries[name]
}

// Names returns the property names in sorted order.
func (a *Animator) Names() []string {
	return sortedKeys(a.entries)
}

// Len returns the number of entries.
func (a *Animator) Len() int {
	return len(a.entries)
}

// Values resolves every property to its live value.
func (a *Animator) Values() Values {
	if a.composite == nil {
		return Values{}
	}
	return Values(a.composite.Value())
}

// AnimatedValues returns the raw sources in native mode, the resolved
// values otherwise.
func (a *Animator) AnimatedValues() Values {
	if !a.props.Native {
		return a.Values()
	}
	values := make(Values, len(a.entries))
	if a.composite != nil {
		for name, source := range a.composite.Sources() {
			values[name] = source
		}
	}
	return values
}

// ForwardProps returns the pass-through values without reserved keys.
func (a *Animator) ForwardProps() Values {
	forward := make(Values, len(a.props.Forward))
	for k, v := range a.props.Forward {
		if !IsReserved(k) {
			forward[k] = v
		}
	}
	return forward
}

// Snapshot returns the logical target state: From overlaid with To.
func (a *Animator) Snapshot() Values {
	return a.props.From.Merge(a.to)
}

// Build produces output from the animated values merged with the forwarded
// ones. Render takes precedence over Children.
func (a *Animator) Build() core.Widget {
	values := a.AnimatedValues().Merge(a.ForwardProps())
	switch {
	case a.props.Render != nil:
		values["children"] = a.props.Children
		return a.props.Render(values)
	case a.props.Children != nil:
		return a.props.Children(values)
	default:
		return nil
	}
}

func (a *Animator) sortedEntries() []*Entry {
	entries := make([]*Entry, 0, len(a.entries))
	for _, name := range sortedKeys(a.entries) {
		entries = append(entries, a.entries[name])
	}
	return entries
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	return slices.Sorted(maps.Keys(m))
}
