package backend

import (
	"context"
	"net/url"
)

func (c *Client) ListFestivals(ctx context.Context) ([]map[string]any, error) {
	var raw []map[string]any
	if err := c.do(ctx, "GET", "/api/festivals/", "", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) GetFestival(ctx context.Context, id string) (map[string]any, error) {
	var raw map[string]any
	if err := c.do(ctx, "GET", "/api/festivals/"+url.PathEscape(id), "", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) CreateFestival(ctx context.Context, token string, doc map[string]any) (map[string]any, error) {
	var created map[string]any
	if err := c.do(ctx, "POST", "/api/festivals", token, doc, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) UpdateFestival(ctx context.Context, token, id string, doc map[string]any) error {
	return c.do(ctx, "PUT", "/api/festivals/"+url.PathEscape(id), token, doc, nil)
}

func (c *Client) DeleteFestival(ctx context.Context, token, id string) error {
	return c.do(ctx, "DELETE", "/api/festivals/"+url.PathEscape(id), token, nil, nil)
}
