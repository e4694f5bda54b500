package demo

import (
	"context"
	"time"

	"github.com/dmitrymomot/sendbox/pkg/cache"
	"github.com/dmitrymomot/sendbox/pkg/mandrill"
)

// listingKey is the single cache key under which the catalog is stored.
const listingKey = "templates:list"

// Listing serves the vendor template catalog through a cache so the form
// page and the template demos do not hit templates/list on every request.
// Demos that change the catalog call Invalidate to drop the cached copy.
type Listing struct {
	client *mandrill.Client
	cache  cache.Cache[[]mandrill.TemplateInfo]
	ttl    time.Duration
}

// NewListing wires a template catalog view over the given client and
// cache. A non-positive ttl falls back to the cache's default.
func NewListing(client *mandrill.Client, c cache.Cache[[]mandrill.TemplateInfo], ttl time.Duration) *Listing {
	if ttl < 0 {
		ttl = 0
	}
	return &Listing{client: client, cache: c, ttl: ttl}
}

// List returns the account's templates, from cache when fresh. Concurrent
// cache misses collapse into a single templates/list call.
func (l *Listing) List(ctx context.Context) ([]mandrill.TemplateInfo, error) {
	return cache.GetOrSet(ctx, l.cache, listingKey, func(ctx context.Context) ([]mandrill.TemplateInfo, time.Duration, error) {
		infos, err := l.client.ListTemplates(ctx, "")
		if err != nil {
			return nil, 0, err
		}
		return infos, l.ttl, nil
	})
}

// Invalidate drops the cached catalog so the next List refetches it.
func (l *Listing) Invalidate(ctx context.Context) error {
	return l.cache.Delete(ctx, listingKey)
}
