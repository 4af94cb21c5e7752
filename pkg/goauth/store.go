package goauth

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/oauth2"
)

// Record is the per-session token state persisted by the Store. It
// mirrors what the connect exchange learns: the token itself plus the
// profile and granted scope reported alongside it.
type Record struct {
	Token   *oauth2.Token `json:"token"`
	Email   string        `json:"email,omitempty"`
	Name    string        `json:"name,omitempty"`
	Picture string        `json:"picture,omitempty"`
	Scope   string        `json:"scope,omitempty"`
}

// Store persists token records as one JSON file per session under a
// directory, with a bounded TTL cache in front so hot sessions skip
// the disk.
type Store struct {
	dir   string
	mu    sync.Mutex
	cache *expirable.LRU[string, *Record]
}

// NewStore creates a store rooted at dir. The directory is created on
// first save, not here.
func NewStore(dir string) *Store {
	return &Store{
		dir:   dir,
		cache: expirable.NewLRU[string, *Record](256, nil, time.Hour),
	}
}

// Load returns the record for sessionID, or ErrNoToken when none is
// stored.
func (s *Store) Load(sessionID string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.cache.Get(sessionID); ok {
		return rec, nil
	}

	raw, err := os.ReadFile(s.path(sessionID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoToken
		}
		return nil, fmt.Errorf("read token record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode token record: %w", err)
	}
	s.cache.Add(sessionID, &rec)
	return &rec, nil
}

// Save writes the record for sessionID. Token files carry credentials,
// hence 0600.
func (s *Store) Save(sessionID string, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode token record: %w", err)
	}
	if err := os.WriteFile(s.path(sessionID), raw, 0o600); err != nil {
		return fmt.Errorf("write token record: %w", err)
	}
	s.cache.Add(sessionID, rec)
	return nil
}

// Delete removes the record for sessionID. Missing files are not an
// error: disconnect must be idempotent.
func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Remove(sessionID)
	if err := os.Remove(s.path(sessionID)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete token record: %w", err)
	}
	return nil
}

// UpdateToken swaps the token inside an existing record, keeping the
// profile fields.
func (s *Store) UpdateToken(sessionID string, tok *oauth2.Token) error {
	rec, err := s.Load(sessionID)
	if err != nil {
		return err
	}
	updated := *rec
	updated.Token = tok
	return s.Save(sessionID, &updated)
}

func (s *Store) path(sessionID string) string {
	// Session ids are client-supplied; keep them from walking the tree.
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ':':
			return '_'
		}
		return r
	}, sessionID)
	return filepath.Join(s.dir, name+".json")
}

// SessionTokenSource returns a refreshing token source for a stored
// session, writing refreshed tokens back to the store so the refresh
// only happens once across restarts.
func (c *Client) SessionTokenSource(ctx context.Context, store *Store, sessionID string) (oauth2.TokenSource, error) {
	rec, err := store.Load(sessionID)
	if err != nil {
		return nil, err
	}
	if rec.Token == nil || (rec.Token.AccessToken == "" && rec.Token.RefreshToken == "") {
		return nil, ErrNoToken
	}
	return &persistingSource{
		inner: c.cfg.TokenSource(ctx, rec.Token),
		store: store,
		sid:   sessionID,
		last:  rec.Token.AccessToken,
	}, nil
}

type persistingSource struct {
	inner oauth2.TokenSource
	store *Store
	sid   string

	mu   sync.Mutex
	last string
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := p.inner.Token()
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		// Persistence failure is survivable: the old record just
		// triggers another refresh next time.
		_ = p.store.UpdateToken(p.sid, tok)
	}
	return tok, nil
}
