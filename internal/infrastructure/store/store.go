package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
)

const defaultListTTL = 10 * time.Minute

// ListCacheStore keeps list pages in redis as JSON.
type ListCacheStore struct {
	rdb     *redis.Client
	listTTL time.Duration
}

var _ contract.IListCache = (*ListCacheStore)(nil)

func NewListCacheStore(rdb *redis.Client) *ListCacheStore {
	return &ListCacheStore{
		rdb:     rdb,
		listTTL: defaultListTTL,
	}
}

// WithTTL overrides how long a page lives.
func (c *ListCacheStore) WithTTL(ttl time.Duration) *ListCacheStore {
	c.listTTL = ttl
	return c
}

// GetPage returns the cached page under key. An undecodable entry counts as a miss.
func (c *ListCacheStore) GetPage(ctx context.Context, key string) (*contract.CachedPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *ListCacheStore) SetPage(ctx context.Context, key string, page *contract.CachedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidatePrefix deletes every key starting with prefix, in batches of 200.
func (c *ListCacheStore) InvalidatePrefix(ctx context.Context, prefix string) error {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 1000).Iterator()
	pipe := c.rdb.Pipeline()
	n := 0
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		n++
		if n%200 == 0 {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if n%200 != 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
