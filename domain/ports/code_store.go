package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCodeNotFound is returned for a missing or expired code
var ErrCodeNotFound = errors.New("code not found or expired")

// CodeStorePort keeps short-lived verification codes keyed by identifier
type CodeStorePort interface {
	Save(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}
