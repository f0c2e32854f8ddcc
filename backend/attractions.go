package backend

import (
	"context"
	"net/url"
)

// Attraction records come back in whatever shape the backend stored
// them ("id" vs "_id", optional fields), so list and get return raw
// maps; the normalize package is the only place that interprets them.

func (c *Client) ListAttractions(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, "GET", "/api/attractions/", "", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) GetAttraction(ctx context.Context, id string) (map[string]any, error) {
	var raw map[string]any
	if err := c.do(ctx, "GET", "/api/attractions/"+url.PathEscape(id), "", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Admin CRUD. The token must belong to an admin; the backend enforces
// that regardless of what this client believes.

func (c *Client) CreateAttraction(ctx context.Context, token string, doc map[string]any) (map[string]any, error) {
	var created map[string]any
	if err := c.do(ctx, "POST", "/api/attractions", token, doc, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateAttraction(ctx context.Context, token, id string, doc map[string]any) error {
	return c.do(ctx, "PUT", "/api/attractions/"+url.PathEscape(id), token, doc, nil)
}

func (c *Client) DeleteAttraction(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/api/attractions/"+url.PathEscape(id), token, nil, nil)
}
