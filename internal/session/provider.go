package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yhoon3002/schedule-bot/pkg/log"
)

// Provider is the durable session identifier source. The identifier
// lives in a Storage so it survives restarts; when the storage fails
// the provider degrades to an in-memory identifier for the process
// lifetime.
type Provider struct {
	l     log.Logger
	store Storage

	mu  sync.Mutex
	sid string
}

// NewProvider creates a provider over the given storage. The storage is
// only touched on first use, not here.
func NewProvider(l log.Logger, store Storage) *Provider {
	return &Provider{l: l, store: store}
}

// SessionID returns the stored identifier, minting and persisting a new
// one when none exists yet. A failed save is logged and the minted
// identifier kept in memory, so callers always get a stable id.
func (p *Provider) SessionID() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sid != "" {
		return p.sid
	}
	sid, err := p.store.Load()
	if err != nil {
		p.l.Warnf(context.Background(), "session: load identifier: %v", err)
	}
	if sid != "" {
		p.sid = sid
		return p.sid
	}

	p.sid = uuid.NewString()
	if err := p.store.Save(p.sid); err != nil {
		p.l.Warnf(context.Background(), "session: persist identifier: %v", err)
	}
	return p.sid
}

// Reset drops the identifier and its stored copy. The next SessionID
// call mints a fresh one.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sid = ""
	if err := p.store.Clear(); err != nil {
		p.l.Warnf(context.Background(), "session: clear identifier: %v", err)
	}
}

// Static is a fixed identifier, used when the caller already carries
// its own session id. Reset is a no-op: the identifier is not ours to
// rotate.
type Static string

func (s Static) SessionID() string { return string(s) }
func (s Static) Reset()            {}
