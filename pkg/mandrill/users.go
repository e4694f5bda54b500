package mandrill

import "context"

type keyPayload struct {
	Key string `json:"key"`
}

// Ping checks API connectivity and key validity through users/ping.
// The vendor answers with the literal string "PONG!".
func (c *Client) Ping(ctx context.Context) (string, error) {
	var pong string
	if err := c.call(ctx, "users/ping", &keyPayload{Key: c.apiKey}, &pong); err != nil {
		return "", err
	}
	return pong, nil
}
