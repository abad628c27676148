package repository

import (
	"context"
	"time"
)

// CacheRepository remembers short-lived keys, such as recently submitted emails.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
}
