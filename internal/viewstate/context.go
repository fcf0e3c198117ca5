package viewstate

import (
	"context"
	"errors"
)

type ctxKey struct{}

// ErrNotProvided is returned by FromContext when no cache was attached to the
// context. Hitting it means the wiring forgot to call NewContext — a bug, not
// a runtime condition to recover from.
var ErrNotProvided = errors.New("viewstate: cache not provided in context")

// NewContext returns a copy of ctx carrying the cache.
func NewContext(ctx context.Context, c *Cache) context.Context {
	return context.WithValue(ctx, ctxKey{}, c)
}

// FromContext returns the cache attached to ctx, or ErrNotProvided.
func FromContext(ctx context.Context) (*Cache, error) {
	c, ok := ctx.Value(ctxKey{}).(*Cache)
	if !ok || c == nil {
		return nil, ErrNotProvided
	}
	return c, nil
}

// MustFromContext is FromContext for call sites where a missing cache is
// unrecoverable. It panics rather than limping along with a default.
func MustFromContext(ctx context.Context) *Cache {
	c, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return c
}
