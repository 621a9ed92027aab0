package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// listCache wraps an optional IListCache for one listing. A nil cache
// turns every call into a miss or no-op.
type listCache struct {
	cache  contract.IListCache
	name   string
	logger usecasecontract.IAppLogger
}

func (lc *listCache) prefix() string {
	return lc.name + ":list:"
}

// key builds a stable cache key for one page of the listing
func (lc *listCache) key(opts contract.ListOptions) string {
	return fmt.Sprintf("%sp=%d:l=%d:q=%s", lc.prefix(), opts.Page, opts.Limit, strings.ToLower(opts.Search))
}

// get decodes a cached page into items. It reports false on a miss or any cache failure.
func (lc *listCache) get(ctx context.Context, opts contract.ListOptions, items interface{}) (int64, bool) {
	if lc.cache == nil {
		return 0, false
	}
	key := lc.key(opts)
	t0 := time.Now()
	cached, found, err := lc.cache.GetPage(ctx, key)
	elapsed := time.Since(t0)
	if err != nil {
		lc.logger.Warnf("cache error: %s key=%s err=%v took=%s", lc.name, key, err, elapsed)
		metrics.IncCacheLookup(lc.name, "error")
		return 0, false
	}
	if !found || cached == nil {
		metrics.IncCacheLookup(lc.name, "miss")
		return 0, false
	}
	if err := json.Unmarshal(cached.Items, items); err != nil {
		lc.logger.Warnf("cache decode: %s key=%s err=%v", lc.name, key, err)
		metrics.IncCacheLookup(lc.name, "error")
		return 0, false
	}
	metrics.IncCacheLookup(lc.name, "hit")
	lc.logger.Debugf("cache hit: %s key=%s took=%s", lc.name, key, elapsed)
	return cached.Total, true
}

func (lc *listCache) set(ctx context.Context, opts contract.ListOptions, items interface{}, total int64) {
	if lc.cache == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		lc.logger.Warnf("cache encode: %s err=%v", lc.name, err)
		return
	}
	if err := lc.cache.SetPage(ctx, lc.key(opts), &contract.CachedPage{Items: data, Total: total}); err != nil {
		lc.logger.Warnf("cache set: %s err=%v", lc.name, err)
	}
}

func (lc *listCache) invalidate(ctx context.Context) {
	if lc.cache == nil {
		return
	}
	if err := lc.cache.InvalidatePrefix(ctx, lc.prefix()); err != nil {
		lc.logger.Warnf("cache invalidate: %s err=%v", lc.name, err)
	}
}

// normalizeListOptions applies the page defaults of a listing.
func normalizeListOptions(opts contract.ListOptions, defaultLimit int) contract.ListOptions {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultLimit
	}
	opts.Search = strings.TrimSpace(opts.Search)
	return opts
}
