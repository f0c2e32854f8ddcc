package backend

import (
	"context"

	"yatra/models"
)

// AdminCheck asks the backend whether this token really belongs to an
// admin. Local role gating is a UX convenience only; this call is the
// authority the dashboard trusts.
func (c *Client) AdminCheck(ctx context.Context, token string) error {
	return c.do(ctx, "GET", "/api/admin/check", token, nil, nil)
}

func (c *Client) AdminAnalytics(ctx context.Context, token string) (*models.Analytics, error) {
	var res models.Analytics
	if err := c.do(ctx, "GET", "/api/admin/analytics", token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
