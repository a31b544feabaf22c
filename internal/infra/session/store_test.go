package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type fakeRedis struct {
	data map[string]string
	ttl  map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.data[key] = string(v)
	case string:
		f.data[key] = v
	}
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	rdb := newFakeRedis()
	store := NewStore(rdb, "session:")

	sess := &domain.Session{
		Token:     "abc",
		UserID:    7,
		Email:     "admin@example.com",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		ExpiresAt: time.Now().Add(time.Hour).UTC().Truncate(time.Second),
	}

	require.NoError(t, store.Save(ctx, sess))
	assert.Contains(t, rdb.data, "session:abc")
	assert.InDelta(t, time.Hour.Seconds(), rdb.ttl["session:abc"].Seconds(), 5)

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, domain.RoleAdmin, got.Role)
	assert.True(t, sess.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "abc"))
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// повторный выход не ошибка
	assert.NoError(t, store.Delete(ctx, "abc"))
}

func TestStore_SaveExpired(t *testing.T) {
	store := NewStore(newFakeRedis(), "session:")
	err := store.Save(context.Background(), &domain.Session{Token: "x", ExpiresAt: time.Now().Add(-time.Minute)})
	assert.ErrorIs(t, err, ErrEncode)
}
