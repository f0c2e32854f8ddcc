package backend

import (
	"context"

	"yatra/models"
)

// Chat forwards one user message to the assistant. Requires auth; the
// backend personalizes the reply from the stored interests.
func (c *Client) Chat(ctx context.Context, token, message string) (*models.ChatReply, error) {
	var res models.ChatReply
	body := map[string]any{"message": message}
	if err := c.do(ctx, "POST", "/api/chat", token, body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
