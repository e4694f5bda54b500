package redis

import (
	"context"
	"io"
)

// Shutdown adapts the client's Close to the shutdown hook signature so the
// connection pool drains alongside the rest of the process.
//
//	err := app.Run(addr, webapp.WithShutdownHook(redis.Shutdown(client)))
func Shutdown(client io.Closer) func(ctx context.Context) error {
	return func(context.Context) error {
		return client.Close()
	}
}
