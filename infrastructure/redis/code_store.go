package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
)

const codeKeyPrefix = "recovery:"

// CodeStore keeps recovery codes as plain keys with EX ttl
type CodeStore struct {
	client *Client
}

var _ ports.CodeStorePort = (*CodeStore)(nil)

func NewCodeStore(client *Client) *CodeStore {
	return &CodeStore{client: client}
}

func (s *CodeStore) Save(ctx context.Context, key, code string, ttl time.Duration) error {
	return s.client.Set(ctx, codeKeyPrefix+key, code, ttl)
}

func (s *CodeStore) Get(ctx context.Context, key string) (string, error) {
	code, err := s.client.Get(ctx, codeKeyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return "", ports.ErrCodeNotFound
	}
	return code, err
}

func (s *CodeStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, codeKeyPrefix+key)
}
