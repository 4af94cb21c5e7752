package page

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/yhoon3002/schedule-bot/internal/session"
)

const (
	registrySize = 256
	bundleTTL    = 12 * time.Hour
)

// Registry hands out one core bundle per session identifier. Bundles
// live in an expirable LRU so sessions nobody polls anymore age out;
// eviction detaches the bundle from the connection store first.
type Registry struct {
	deps Deps

	mu  sync.Mutex
	lru *expirable.LRU[string, *Bundle]
}

// NewRegistry creates an empty registry building bundles from deps.
func NewRegistry(deps Deps) *Registry {
	r := &Registry{deps: deps}
	r.lru = expirable.NewLRU[string, *Bundle](registrySize, func(_ string, b *Bundle) {
		b.close()
	}, bundleTTL)
	return r
}

// Bundle returns the bundle for sid, building it on first use. The
// empty id selects the default bundle bound to the persisted session
// identifier; any other id gets its own bundle under that fixed
// identifier.
func (r *Registry) Bundle(sid string) *Bundle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b, ok := r.lru.Get(sid); ok {
		return b
	}

	ref := r.deps.Provider
	if sid != "" {
		ref = session.Static(sid)
	}
	b := newBundle(r.deps, ref)
	r.lru.Add(sid, b)
	return b
}
