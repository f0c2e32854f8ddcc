package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"yatra/backend"
	"yatra/models"
)

// fakeItineraryBackend is a tiny in-memory stand-in for the real
// itinerary endpoints, including the duplicate rejection.
type fakeItineraryBackend struct {
	mu      sync.Mutex
	next    int
	entries map[string]string // entryID -> attractionID
	failAll bool
}

func newFakeItineraryBackend() *fakeItineraryBackend {
	return &fakeItineraryBackend{entries: make(map[string]string)}
}

func (f *fakeItineraryBackend) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Missing Authorization Header"})
			return
		}

		f.mu.Lock()
		defer f.mu.Unlock()

		if f.failAll {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		switch {
		case r.Method == "GET":
			out := make([]map[string]any, 0, len(f.entries))
			for id, attr := range f.entries {
				out = append(out, map[string]any{
					"id":            id,
					"attraction_id": attr,
					"name":          "Attraction " + attr,
					"category":      "Heritage",
					"images":        []string{},
					"best_season":   "Winter",
				})
			}
			_ = json.NewEncoder(w).Encode(out)

		case r.Method == "POST":
			var body struct {
				AttractionID string `json:"attraction_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			for _, attr := range f.entries {
				if attr == body.AttractionID {
					w.WriteHeader(http.StatusBadRequest)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "Already added"})
					return
				}
			}
			f.next++
			f.entries[fmt.Sprintf("e%d", f.next)] = body.AttractionID
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Attraction added to itinerary"})

		case r.Method == "DELETE":
			id := strings.TrimPrefix(r.URL.Path, "/api/itineraries/")
			if _, ok := f.entries[id]; !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Itinerary not found"})
				return
			}
			delete(f.entries, id)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Itinerary removed"})
		}
	})
}

func newTestStore(t *testing.T) (*Store, *fakeItineraryBackend, func()) {
	t.Helper()
	fake := newFakeItineraryBackend()
	srv := httptest.NewServer(fake.handler())
	return NewStore(backend.New(srv.URL)), fake, srv.Close
}

func TestLoadRequiresToken(t *testing.T) {
	// Unresolvable host: if a request went out this would be ErrNetwork.
	store := NewStore(backend.New("http://yatra.invalid"))
	_, err := store.Load(context.Background(), "")
	if !errors.Is(err, backend.ErrAuth) {
		t.Fatalf("err = %v, want ErrAuth", err)
	}
}

func TestEmptyItineraryIsNotAnError(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	entries, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %+v", entries)
	}
	if !store.Loaded() {
		t.Fatal("mirror not marked loaded")
	}
}

func TestAddThenLoadIncludesEntry(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	if err := store.Add(context.Background(), "tok", "a1"); err != nil {
		t.Fatalf("add: %v", err)
	}

	entries, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.AttractionID == "a1" {
			found = true
			if e.EntryID == "" {
				t.Fatal("server-assigned entry id missing")
			}
		}
	}
	if !found {
		t.Fatalf("a1 not in %+v", entries)
	}
	if !store.Contains("a1") {
		t.Fatal("Contains(a1) = false after confirmed add")
	}
}

func TestAddDuplicateLeavesMirrorUntouched(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	if err := store.Add(context.Background(), "tok", "a1"); err != nil {
		t.Fatalf("first add: %v", err)
	}
	before := store.Entries()

	err := store.Add(context.Background(), "tok", "a1")
	if !errors.Is(err, backend.ErrDuplicate) {
		t.Fatalf("err = %v, want ErrDuplicate", err)
	}
	after := store.Entries()
	if len(after) != len(before) {
		t.Fatalf("mirror changed on failed add: %d -> %d", len(before), len(after))
	}
}

func TestRemoveConfirmedDropsEntry(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	_ = store.Add(context.Background(), "tok", "a1")
	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("setup: %+v", entries)
	}

	if err := store.Remove(context.Background(), "tok", entries[0].EntryID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if store.Contains("a1") {
		t.Fatal("entry still mirrored after confirmed remove")
	}

	reloaded, err := store.Load(context.Background(), "tok")
	if err != nil {
		t.Fatal(err)
	}
	if len(reloaded) != 0 {
		t.Fatalf("server still has %+v", reloaded)
	}
}

func TestRemoveFailureKeepsEntryVisible(t *testing.T) {
	store, fake, done := newTestStore(t)
	defer done()

	_ = store.Add(context.Background(), "tok", "a1")
	entryID := store.Entries()[0].EntryID

	fake.mu.Lock()
	fake.failAll = true
	fake.mu.Unlock()

	err := store.Remove(context.Background(), "tok", entryID)
	if !errors.Is(err, backend.ErrServer) {
		t.Fatalf("err = %v, want ErrServer", err)
	}
	if !store.Contains("a1") {
		t.Fatal("entry vanished from mirror despite failed remove")
	}
}

func TestMutationsFailWithAuthErrorWhenLoggedOut(t *testing.T) {
	store, _, done := newTestStore(t)
	defer done()

	if err := store.Add(context.Background(), "", "a1"); !errors.Is(err, backend.ErrAuth) {
		t.Fatalf("add: %v", err)
	}
	if err := store.Remove(context.Background(), "", "e1"); !errors.Is(err, backend.ErrAuth) {
		t.Fatalf("remove: %v", err)
	}
}

func TestBuildPDF(t *testing.T) {
	entries := []models.ItineraryEntry{
		{EntryID: "e1", AttractionID: "a1", Name: "Hampi", Category: "Heritage", BestSeason: "Winter"},
		// No attraction id: listed without a QR deep link.
		{EntryID: "e2", Name: "Nameless Falls", Category: "Nature", BestSeason: "Monsoon"},
	}
	pdf, err := BuildPDF(entries, "http://localhost:8080")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("not a pdf: %q", pdf[:8])
	}
}

func TestBuildPDFEmpty(t *testing.T) {
	pdf, err := BuildPDF(nil, "http://localhost:8080")
	if err != nil || !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("err=%v", err)
	}
}
