package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Quill/internal/infrastructure/logger"
)

func TestNewRedisFromURL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	log := logger.NewNopLogger()

	rdb := NewRedisFromURL(context.Background(), mr.Addr(), log)
	require.NotNil(t, rdb)
	defer Close(rdb)
	assert.NoError(t, rdb.Set(context.Background(), "k", "v", 0).Err())

	rdb2 := NewRedisFromURL(context.Background(), "redis://"+mr.Addr()+"/0", log)
	require.NotNil(t, rdb2)
	Close(rdb2)
}

func TestNewRedisFromURL_Invalid(t *testing.T) {
	log := logger.NewNopLogger()
	assert.Nil(t, NewRedisFromURL(context.Background(), "redis://:bad url", log))

	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()
	assert.Nil(t, NewRedisFromURL(context.Background(), addr, log))

	Close(nil)
}
