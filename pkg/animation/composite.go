package animation

import "maps"

// Composite aggregates named sources behind a single change callback. It is
// the render-facing view of a group of animated values: the host listens to
// one Composite instead of every value.
//
// A Composite owns its subscriptions. Call Detach before dropping it.
type Composite struct {
	sources  map[string]Source
	onUpdate func()
	unsubs   []func()
	detached bool
}

// NewComposite subscribes to every source. onUpdate runs after any of them
// changes and may be nil.
func NewComposite(sources map[string]Source, onUpdate func()) *Composite {
	c := &Composite{
		sources:  maps.Clone(sources),
		onUpdate: onUpdate,
	}
	if c.sources == nil {
		c.sources = make(map[string]Source)
	}
	for _, source := range c.sources {
		if source == nil {
			continue
		}
		c.unsubs = append(c.unsubs, source.AddListener(c.notify))
	}
	return c
}

// Value resolves every source.
func (c *Composite) Value() map[string]any {
	values := make(map[string]any, len(c.sources))
	for name, source := range c.sources {
		if source == nil {
			values[name] = nil
			continue
		}
		values[name] = source.Get()
	}
	return values
}

// Sources returns the unresolved sources, for consumers that write animated
// values directly instead of rebuilding.
func (c *Composite) Sources() map[string]Source {
	return maps.Clone(c.sources)
}

// Attached reports whether the composite still holds subscriptions.
func (c *Composite) Attached() bool {
	return !c.detached
}

// Detach releases every subscription. It is safe to call more than once.
func (c *Composite) Detach() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.onUpdate = nil
	c.detached = true
}

func (c *Composite) notify() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}
