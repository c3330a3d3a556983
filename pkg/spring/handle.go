package spring

import (
	"context"
	"sync"
)

// Handle resolves when the start that produced it comes to rest. A start
// superseded by a later start, or cancelled by Stop, may never resolve.
type Handle struct {
	done   chan struct{}
	once   sync.Once
	mu     sync.Mutex
	values Values
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

func (h *Handle) resolve(values Values) {
	h.once.Do(func() {
		h.mu.Lock()
		h.values = values
		h.mu.Unlock()
		close(h.done)
	})
}

// Done is closed once the start has come to rest.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Result returns the rest snapshot and whether the handle has resolved.
func (h *Handle) Result() (Values, bool) {
	select {
	case <-h.done:
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.values, true
	default:
		return nil, false
	}
}

// Wait blocks until the handle resolves or ctx is done. Entries only advance
// while the frame loop runs, so Wait must not be called from the goroutine
// that steps tickers.
func (h *Handle) Wait(ctx context.Context) (Values, error) {
	select {
	case <-h.done:
		values, _ := h.Result()
		return values, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
