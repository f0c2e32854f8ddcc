package itinerary

import (
	"sync"
	"time"

	"yatra/backend"
)

// Registry hands out one Store per browser session. The app shell owns
// the single registry, so no two pages can hold divergent mirrors for
// the same session.
type Registry struct {
	api *backend.Client
	ttl time.Duration

	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry builds a registry whose mirrors live at most ttl, the
// same lifetime as the session rows they shadow. An evicted mirror is
// rebuilt from the backend on next use.
func NewRegistry(api *backend.Client, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Registry{api: api, ttl: ttl, stores: make(map[string]*Store)}
}

// ForSession returns the session's store, creating it on first use.
// Guests get a throwaway store; every operation on it fails with
// ErrAuth anyway.
func (r *Registry) ForSession(sessionID string) *Store {
	if sessionID == "" {
		return NewStore(r.api)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[sessionID]; ok {
		return s
	}
	s := NewStore(r.api)
	r.stores[sessionID] = s

	// Evict alongside the session TTL so dead sessions cannot grow
	// the map forever.
	go func() {
		time.Sleep(r.ttl)
		r.Drop(sessionID)
	}()

	return s
}

// Drop forgets a session's mirror, e.g. on logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	delete(r.stores, sessionID)
	r.mu.Unlock()
}
