package spring

// barrier tracks the entries of one start that have yet to settle.
//
// A natural completion removes its entry and fires once nothing is left. A
// stop removes its entry without firing, so cancelling the last pending
// entry leaves the barrier unfired for good.
type barrier struct {
	pending map[*Entry]struct{}
	fired   bool
	fire    func()
}

func newBarrier(entries []*Entry, fire func()) *barrier {
	b := &barrier{
		pending: make(map[*Entry]struct{}, len(entries)),
		fire:    fire,
	}
	for _, e := range entries {
		b.pending[e] = struct{}{}
	}
	return b
}

func (b *barrier) settle(e *Entry, natural bool) {
	if b.fired {
		return
	}
	if _, ok := b.pending[e]; !ok {
		return
	}
	delete(b.pending, e)
	if natural && len(b.pending) == 0 {
		b.fired = true
		b.fire()
	}
}

// add puts a restarted entry back on the pending set of an unfired barrier.
func (b *barrier) add(e *Entry) {
	if !b.fired {
		b.pending[e] = struct{}{}
	}
}

func (b *barrier) remaining() int {
	return len(b.pending)
}
