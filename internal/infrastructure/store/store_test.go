package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
)

func newTestStore(t *testing.T) (*ListCacheStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewListCacheStore(rdb), mr
}

func TestSetAndGetPage(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	_, found, err := s.GetPage(ctx, "posts:list:p=1")
	require.NoError(t, err)
	assert.False(t, found)

	page := &contract.CachedPage{Items: []byte(`[{"title":"a"}]`), Total: 7}
	require.NoError(t, s.SetPage(ctx, "posts:list:p=1", page))

	got, found, err := s.GetPage(ctx, "posts:list:p=1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(7), got.Total)
	assert.JSONEq(t, `[{"title":"a"}]`, string(got.Items))
}

func TestPageExpires(t *testing.T) {
	s, mr := newTestStore(t)
	s.WithTTL(time.Minute)
	ctx := context.Background()

	require.NoError(t, s.SetPage(ctx, "k", &contract.CachedPage{Items: []byte(`[]`)}))
	mr.FastForward(2 * time.Minute)

	_, found, err := s.GetPage(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	s, mr := newTestStore(t)
	require.NoError(t, mr.Set("k", "{not json"))

	_, found, err := s.GetPage(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidatePrefix(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 450; i++ {
		require.NoError(t, s.SetPage(ctx, fmt.Sprintf("posts:list:p=%d", i), &contract.CachedPage{Items: []byte(`[]`)}))
	}
	require.NoError(t, s.SetPage(ctx, "categories:list:p=1", &contract.CachedPage{Items: []byte(`[]`)}))

	require.NoError(t, s.InvalidatePrefix(ctx, "posts:list:"))

	assert.Len(t, mr.Keys(), 1)
	assert.True(t, mr.Exists("categories:list:p=1"))
}
