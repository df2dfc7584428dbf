// Package memory holds in-process fallbacks for when Redis is not configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// CodeStore is a mutex-guarded map with per-key expiry
type CodeStore struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

var _ ports.CodeStorePort = (*CodeStore)(nil)

func NewCodeStore() *CodeStore {
	return &CodeStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (s *CodeStore) Save(_ context.Context, key, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked()
	s.entries[key] = entry{code: code, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *CodeStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", ports.ErrCodeNotFound
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return "", ports.ErrCodeNotFound
	}
	return e.code, nil
}

func (s *CodeStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// purgeLocked drops expired entries so abandoned codes do not pile up
func (s *CodeStore) purgeLocked() {
	now := s.now()
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
