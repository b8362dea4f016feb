package registry

import (
	"sync/atomic"

	"forbidden-domains/internal/domain"
)

// Holder publishes the current Registry snapshot to concurrent readers.
// Snapshots are replaced as a whole and never mutated.
type Holder struct {
	value atomic.Pointer[domain.Registry]
}

func NewHolder() *Holder {
	h := &Holder{}
	h.value.Store(&domain.Registry{Blocklist: domain.NewBlocklist(nil)})
	return h
}

func (h *Holder) Get() *domain.Registry {
	return h.value.Load()
}

func (h *Holder) Set(reg *domain.Registry) {
	h.value.Store(reg)
}

// Loaded reports whether at least one real snapshot has been published.
func (h *Holder) Loaded() bool {
	reg := h.Get()
	return reg != nil && !reg.UpdatedAt.IsZero()
}
