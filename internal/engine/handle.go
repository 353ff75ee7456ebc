package engine

import "sync/atomic"

// Handle is the atomically swappable pointer to the live engine. Dataset
// upgrades build a whole new engine and swap it in; requests that already
// grabbed the old one finish against that snapshot.
type Handle struct {
	current atomic.Pointer[Engine]
}

func NewHandle(e *Engine) *Handle {
	h := &Handle{}
	h.current.Store(e)
	return h
}

func (h *Handle) Current() *Engine {
	return h.current.Load()
}

func (h *Handle) Swap(e *Engine) {
	h.current.Store(e)
}
