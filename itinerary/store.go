package itinerary

import (
	"context"
	"sync"

	"yatra/backend"
	"yatra/models"
	"yatra/normalize"
)

// Store mirrors one user's saved attractions. The mirror only changes
// after the backend confirms a mutation, so apart from the in-flight
// window it is always a subset view of what Load would return. A
// failed mutation leaves it untouched.
//
// Concurrent mutations are not queued; two racing adds are allowed and
// the last confirmation to land wins. The next Load restores truth.
type Store struct {
	api *backend.Client

	mu      sync.Mutex
	entries []models.ItineraryEntry
	loaded  bool
}

func NewStore(api *backend.Client) *Store {
	return &Store{api: api}
}

// Load fetches the full server list and replaces the mirror. With no
// token it fails with ErrAuth before any network call.
func (s *Store) Load(ctx context.Context, token string) ([]models.ItineraryEntry, error) {
	if token == "" {
		return nil, backend.ErrAuth
	}
	raw, err := s.api.ListItineraries(ctx, token)
	if err != nil {
		return nil, err
	}
	entries := make([]models.ItineraryEntry, 0, len(raw))
	for _, r := range raw {
		entries = append(entries, normalize.ItineraryEntry(r))
	}

	s.mu.Lock()
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()

	return s.Entries(), nil
}

// Add saves one attraction. The mirror is not touched until the server
// confirms; the entry id is server-assigned, so a confirmed add is
// followed by a reload to pick it up. A failed reload after a
// confirmed add only invalidates the mirror — the add itself stands.
func (s *Store) Add(ctx context.Context, token, attractionID string) error {
	if token == "" {
		return backend.ErrAuth
	}
	if err := s.api.AddItinerary(ctx, token, attractionID); err != nil {
		return err
	}
	if _, err := s.Load(ctx, token); err != nil {
		s.invalidate()
	}
	return nil
}

// Remove deletes one entry and drops it from the mirror only after the
// server confirms.
func (s *Store) Remove(ctx context.Context, token, entryID string) error {
	if token == "" {
		return backend.ErrAuth
	}
	if err := s.api.RemoveItinerary(ctx, token, entryID); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.EntryID != entryID {
			kept = append(kept, e)
		}
	}
	s.entries = kept
	s.mu.Unlock()

	return nil
}

// Entries returns a copy of the mirror.
func (s *Store) Entries() []models.ItineraryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ItineraryEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Contains reports whether an attraction is already saved, for the
// detail page's added/not-added button state.
func (s *Store) Contains(attractionID string) bool {
	if attractionID == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.AttractionID == attractionID {
			return true
		}
	}
	return false
}

// Loaded reports whether the mirror has been filled at least once.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.mu.Unlock()
}
