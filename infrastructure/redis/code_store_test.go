package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fco200/UES-Academic-Helper/domain/ports"
	"github.com/Fco200/UES-Academic-Helper/pkg/config"
)

func newTestStore(t *testing.T) (*CodeStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := NewClient(&config.RedisConfig{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewCodeStore(client), mr
}

func TestCodeStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, "a@x.com", "123456", 15*time.Minute))
	assert.True(t, mr.Exists("recovery:a@x.com"))
	assert.Equal(t, 15*time.Minute, mr.TTL("recovery:a@x.com"))

	code, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	require.NoError(t, store.Delete(ctx, "a@x.com"))
	_, err = store.Get(ctx, "a@x.com")
	assert.ErrorIs(t, err, ports.ErrCodeNotFound)
}

func TestCodeStoreExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestStore(t)

	require.NoError(t, store.Save(ctx, "+526621234567", "654321", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "+526621234567")
	assert.ErrorIs(t, err, ports.ErrCodeNotFound)
}

func TestCodeStoreOverwrite(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)

	require.NoError(t, store.Save(ctx, "a@x.com", "111111", time.Minute))
	require.NoError(t, store.Save(ctx, "a@x.com", "222222", time.Minute))

	code, err := store.Get(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}
