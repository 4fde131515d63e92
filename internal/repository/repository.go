package repository

import (
	"context"
	"time"
)

// Repository is a string-keyed item store holding serialized values.
// Reading a missing key is not an error and removing one is a no-op.
type Repository interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

// Item is a single stored row
type Item struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Options holds per-operation timeouts shared by the drivers
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// DefaultOptions returns the timeouts used when none are configured
func DefaultOptions() Options {
	return Options{
		QueryTimeout: 10 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// WithTimeout bounds ctx by d. An earlier parent deadline still wins; a
// non-positive d leaves ctx unchanged.
func WithTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
