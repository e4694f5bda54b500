package mandrill

import (
	"context"
	"errors"
)

// Healthcheck returns a closure that validates API connectivity and key
// validity for health endpoints. Compatible with standard health check
// interfaces that expect func(context.Context) error.
func Healthcheck(client *Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if _, err := client.Ping(ctx); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
