package views

import (
	"context"
	"encoding/json"
	"time"

	"yatra/rdx"
)

// List responses change rarely and back most pages, so they sit in
// Redis for a minute. The cache is best effort on both sides: a miss
// or an unreachable Redis just means one more backend round-trip, and
// admin mutations read fresh lists directly so their edits show up
// immediately.

const listCacheTTL = time.Minute

func (h *Handlers) cachedAttractions(ctx context.Context) ([]map[string]any, error) {
	// Keys carry the backend base URL so entries never outlive a
	// backend switch.
	return cachedList(ctx, "cache:attractions:"+h.api.BaseURL(), h.api.ListAttractions)
}

func (h *Handlers) cachedFestivals(ctx context.Context) ([]map[string]any, error) {
	return cachedList(ctx, "cache:festivals:"+h.api.BaseURL(), h.api.ListFestivals)
}

func cachedList(ctx context.Context, key string, fetch func(context.Context) ([]map[string]any, error)) ([]map[string]any, error) {
	if val, err := rdx.Get(ctx, key); err == nil && val != "" {
		var raw []map[string]any
		if err := json.Unmarshal([]byte(val), &raw); err == nil {
			return raw, nil
		}
	}

	raw, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if buf, err := json.Marshal(raw); err == nil {
		_ = rdx.Set(ctx, key, string(buf), listCacheTTL)
	}
	return raw, nil
}
