package backend

import (
	"context"
	"net/url"
)

// ListItineraries returns the caller's saved entries in raw shape; the
// itinerary store normalizes the entry and attraction ids.
func (c *Client) ListItineraries(ctx context.Context, token string) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, "GET", "/api/itineraries", token, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AddItinerary saves one attraction. The backend rejects a second entry
// for the same attraction with ErrDuplicate.
func (c *Client) AddItinerary(ctx context.Context, token, attractionID string) error {
	body := map[string]any{"attraction_id": attractionID}
	return c.do(ctx, "POST", "/api/itineraries", token, body, nil)
}

func (c *Client) RemoveItinerary(ctx context.Context, token, entryID string) error {
	return c.do(ctx, "DELETE", "/api/itineraries/"+url.PathEscape(entryID), token, nil, nil)
}
