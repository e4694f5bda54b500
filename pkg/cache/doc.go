// Package cache offers a small generic cache with two interchangeable
// backends, a process-local map and Redis.
//
// Both backends satisfy [Cache], so call sites depend on the interface and
// the binary picks a backend at startup. The demo web server runs on the
// in-memory backend by default and switches to Redis when a connection URL
// is configured, which lets several instances share one template listing.
//
// Every Set takes a TTL with the same meaning everywhere: positive values
// expire the entry after that duration, zero applies the backend's default
// (one hour unless overridden), and negative values keep the entry until
// it is deleted.
//
// A round trip against the in-memory backend:
//
//	c := cache.NewMemory[[]mandrill.TemplateInfo](
//	    cache.WithDefaultTTL(10 * time.Minute),
//	)
//	defer c.Close() // stops the background sweep
//
//	if err := c.Set(ctx, "templates", listing, 0); err != nil {
//	    return err
//	}
//	listing, err := c.Get(ctx, "templates")
//
// The Redis backend wraps an existing client and namespaces its keys:
//
//	client := redis.MustOpen(ctx, cfg.CacheRedisURL)
//	c := cache.NewRedis[[]mandrill.TemplateInfo](client, nil,
//	    cache.WithPrefix("sendbox"),
//	)
//
// Values cross the wire through a [Marshaler]; passing nil selects JSON.
//
// [GetOrSet] wraps the read-through pattern: it returns the cached value
// when present and otherwise runs the supplied loader, storing whatever
// the loader returns. Concurrent misses on one key collapse through
// singleflight so the loader runs once.
//
// Misses surface as [ErrNotFound]. Writes against a closed in-memory
// cache return [ErrClosed]. Codec failures wrap [ErrMarshal] or
// [ErrUnmarshal] and keep the cause inspectable through errors.Is.
package cache
