package normalize

import (
	"fmt"
	"strconv"

	"yatra/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// This package is the single conversion boundary between the backend's
// raw record shapes and the refs the rest of the gateway renders. The
// backend mixes "id" and "_id" depending on the endpoint, and "_id" can
// be a hex string, a decoded ObjectID, or extended JSON {"$oid": ...}.
// Nothing outside this package looks at those keys.

// CanonicalID derives the one identifier used for routing, itinerary
// membership and list keys. Precedence: non-empty "id", then a
// stringified "_id", then the fallback, then "". An empty result means
// the record cannot be deep-linked; callers degrade to an index key.
// Idempotent: re-normalizing a record whose "id" already holds the
// canonical value returns the same value.
func CanonicalID(raw map[string]any, fallback string) string {
	if id, ok := raw["id"].(string); ok && id != "" {
		return id
	}
	if v, ok := raw["_id"]; ok {
		if s := stringifyID(v); s != "" {
			return s
		}
	}
	return fallback
}

// stringifyID converts the backend's native id type to its string form.
func stringifyID(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case primitive.ObjectID:
		return id.Hex()
	case map[string]any:
		// extended JSON: {"$oid": "..."}
		if oid, ok := id["$oid"].(string); ok {
			return oid
		}
		return ""
	case float64:
		return strconv.FormatInt(int64(id), 10)
	case int:
		return strconv.Itoa(id)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", id)
	}
}

// Attraction converts one raw attraction record. Missing fields get
// the same defaults the backend seeds new documents with.
func Attraction(raw map[string]any, fallback string) models.AttractionRef {
	return models.AttractionRef{
		CanonicalID:   CanonicalID(raw, fallback),
		Name:          strField(raw, "Unknown", "name"),
		Category:      strField(raw, "Unknown", "category"),
		Description:   strField(raw, "", "description"),
		EcoScore:      ecoScore(raw["eco_score"]),
		Images:        strList(raw["images"]),
		Videos:        strList(raw["videos"]),
		AudioStoryURL: strField(raw, "", "audio_story_url", "audio"),
		Tags:          strList(raw["tags"]),
		BestSeason:    strField(raw, "All Year", "best_season"),
		MapURL:        strField(raw, "", "map_url", "mapUrl"),
		ARModelURL:    strField(raw, "", "ar_model_url", "arModelUrl"),
	}
}

// Festival converts one raw festival record.
func Festival(raw map[string]any, fallback string) models.FestivalRef {
	return models.FestivalRef{
		CanonicalID: CanonicalID(raw, fallback),
		Name:        strField(raw, "Unknown", "name"),
		Date:        strField(raw, "", "date"),
		Location:    strField(raw, "", "location"),
		Description: strField(raw, "", "description"),
		Image:       strField(raw, "", "image"),
	}
}

// Attractions converts a whole listing. Records without any usable id
// are kept; they render with index keys and no detail link.
func Attractions(raw []map[string]any) []models.AttractionRef {
	refs := make([]models.AttractionRef, 0, len(raw))
	for _, r := range raw {
		refs = append(refs, Attraction(r, ""))
	}
	return refs
}

func Festivals(raw []map[string]any) []models.FestivalRef {
	refs := make([]models.FestivalRef, 0, len(raw))
	for _, r := range raw {
		refs = append(refs, Festival(r, ""))
	}
	return refs
}

// ItineraryEntry converts one raw itinerary row. The backend returns
// the entry id under "id" here, but older rows have carried "_id"; both
// go through CanonicalID.
func ItineraryEntry(raw map[string]any) models.ItineraryEntry {
	return models.ItineraryEntry{
		EntryID:      CanonicalID(raw, ""),
		AttractionID: stringifyID(raw["attraction_id"]),
		Name:         strField(raw, "Unknown", "name"),
		Category:     strField(raw, "Unknown", "category"),
		Images:       strList(raw["images"]),
		BestSeason:   strField(raw, "All Year", "best_season"),
	}
}

func strField(raw map[string]any, def string, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok && s != "" {
			return s
		}
	}
	return def
}

// strList accepts a list, a lone string, or nothing.
func strList(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		if val == "" {
			return []string{}
		}
		return []string{val}
	default:
		return []string{}
	}
}

// ecoScore coerces to the 0-100 range the UI renders.
func ecoScore(v any) int {
	var n int
	switch val := v.(type) {
	case float64:
		n = int(val)
	case int:
		n = val
	case string:
		n, _ = strconv.Atoi(val)
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
