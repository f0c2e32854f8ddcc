package normalize

import (
	"encoding/json"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCanonicalIDPrecedence(t *testing.T) {
	oid := primitive.NewObjectID()

	cases := []struct {
		name     string
		raw      map[string]any
		fallback string
		want     string
	}{
		{"id wins", map[string]any{"id": "abc", "_id": "def"}, "zzz", "abc"},
		{"empty id skipped", map[string]any{"id": "", "_id": "def"}, "", "def"},
		{"underscore id string", map[string]any{"_id": "5f1a"}, "", "5f1a"},
		{"underscore id objectid", map[string]any{"_id": oid}, "", oid.Hex()},
		{"extended json oid", map[string]any{"_id": map[string]any{"$oid": "64b0c"}}, "", "64b0c"},
		{"fallback", map[string]any{"name": "Hampi"}, "from-route", "from-route"},
		{"nothing", map[string]any{"name": "Hampi"}, "", ""},
		{"nil underscore id", map[string]any{"_id": nil}, "fb", "fb"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanonicalID(tc.raw, tc.fallback); got != tc.want {
				t.Fatalf("CanonicalID = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCanonicalIDIdempotent(t *testing.T) {
	raw := map[string]any{"_id": map[string]any{"$oid": "64b0cafe"}}
	first := CanonicalID(raw, "")
	if first != "64b0cafe" {
		t.Fatalf("first pass = %q", first)
	}

	// Simulate a record that went through the boundary once: "id" now
	// holds the canonical value.
	raw["id"] = first
	if again := CanonicalID(raw, "other"); again != first {
		t.Fatalf("second pass = %q, want %q", again, first)
	}
}

func TestCanonicalIDSameEntitySameID(t *testing.T) {
	// Two raw shapes the backend considers the same entity must agree,
	// whichever optional fields came along.
	a := map[string]any{"_id": "5f1a", "name": "Hampi", "category": "Heritage"}
	b := map[string]any{"_id": "5f1a", "images": []any{"x.jpg"}}
	if CanonicalID(a, "") != CanonicalID(b, "") {
		t.Fatal("same _id normalized to different canonical ids")
	}
}

func TestCanonicalIDFromWireJSON(t *testing.T) {
	// Exactly what a decoded backend response looks like.
	var raw map[string]any
	if err := json.Unmarshal([]byte(`{"_id":{"$oid":"64b0c0ffee"},"name":"Badami"}`), &raw); err != nil {
		t.Fatal(err)
	}
	if got := CanonicalID(raw, ""); got != "64b0c0ffee" {
		t.Fatalf("got %q", got)
	}
}

func TestAttractionDefaults(t *testing.T) {
	ref := Attraction(map[string]any{"_id": "a1", "name": "Coorg"}, "")
	if ref.CanonicalID != "a1" {
		t.Fatalf("CanonicalID = %q", ref.CanonicalID)
	}
	if ref.Category != "Unknown" || ref.BestSeason != "All Year" {
		t.Fatalf("defaults not applied: %+v", ref)
	}
	if ref.Images == nil || len(ref.Images) != 0 {
		t.Fatalf("Images = %#v, want empty non-nil", ref.Images)
	}
}

func TestAttractionLoneStringImage(t *testing.T) {
	ref := Attraction(map[string]any{"_id": "a1", "images": "only.jpg"}, "")
	if len(ref.Images) != 1 || ref.Images[0] != "only.jpg" {
		t.Fatalf("Images = %#v", ref.Images)
	}
}

func TestAttractionEcoScoreClamp(t *testing.T) {
	for in, want := range map[float64]int{-5: 0, 42: 42, 250: 100} {
		ref := Attraction(map[string]any{"_id": "a1", "eco_score": in}, "")
		if ref.EcoScore != want {
			t.Fatalf("eco_score %v -> %d, want %d", in, ref.EcoScore, want)
		}
	}
}

func TestAttractionsUnidentifiableRecord(t *testing.T) {
	// A record with no id at all must still come through; rendering
	// keys fall back to the list index and nothing should panic.
	refs := Attractions([]map[string]any{
		{"name": "Nameless Falls"},
		{"_id": "b2", "name": "Belur"},
	})
	if len(refs) != 2 {
		t.Fatalf("len = %d", len(refs))
	}
	if refs[0].CanonicalID != "" {
		t.Fatalf("expected empty canonical id, got %q", refs[0].CanonicalID)
	}
	if refs[1].CanonicalID != "b2" {
		t.Fatalf("got %q", refs[1].CanonicalID)
	}
}

func TestFestival(t *testing.T) {
	ref := Festival(map[string]any{
		"_id":      map[string]any{"$oid": "f01"},
		"name":     "Mysore Dasara",
		"date":     "2025-10-02",
		"location": "Mysore",
	}, "")
	if ref.CanonicalID != "f01" || ref.Date != "2025-10-02" || ref.Location != "Mysore" {
		t.Fatalf("got %+v", ref)
	}
}

func TestItineraryEntry(t *testing.T) {
	entry := ItineraryEntry(map[string]any{
		"id":            "e9",
		"attraction_id": "a3",
		"name":          "Gokarna",
	})
	if entry.EntryID != "e9" || entry.AttractionID != "a3" {
		t.Fatalf("got %+v", entry)
	}
}
