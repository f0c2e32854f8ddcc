package backend

import (
	"context"

	"yatra/models"
)

func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, "POST", "/api/auth/login", "", creds, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, "POST", "/api/auth/register", "", reg, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) Me(ctx context.Context, token string) (*models.UserProfile, error) {
	var res struct {
		User models.UserProfile `json:"user"`
	}
	if err := c.do(ctx, "GET", "/api/auth/me", token, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token, bio string, interests []string) error {
	body := map[string]any{"bio": bio, "interests": interests}
	return c.do(ctx, "PUT", "/api/auth/profile", token, body, nil)
}

func (c *Client) Recommendations(ctx context.Context, token string) (*models.Recommendations, error) {
	var res models.Recommendations
	if err := c.do(ctx, "GET", "/api/recommendations", token, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
