package itinerary

import (
	"testing"
	"time"

	"yatra/backend"
)

func TestRegistryReusesStorePerSession(t *testing.T) {
	reg := NewRegistry(backend.New("http://yatra.invalid"), time.Hour)

	first := reg.ForSession("s1")
	if reg.ForSession("s1") != first {
		t.Fatal("same session should get the same store")
	}
	if reg.ForSession("s2") == first {
		t.Fatal("different sessions must not share a mirror")
	}
}

func TestRegistryGuestStoreIsThrowaway(t *testing.T) {
	reg := NewRegistry(backend.New("http://yatra.invalid"), time.Hour)

	if reg.ForSession("") == reg.ForSession("") {
		t.Fatal("guest stores must not be retained")
	}
}

func TestRegistryEvictsExpiredMirror(t *testing.T) {
	reg := NewRegistry(backend.New("http://yatra.invalid"), 20*time.Millisecond)

	first := reg.ForSession("s1")
	time.Sleep(80 * time.Millisecond)

	// The mirror expired with its session; the next use rebuilds it.
	if reg.ForSession("s1") == first {
		t.Fatal("expired mirror should have been evicted")
	}
}
