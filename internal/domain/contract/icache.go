package contract

import (
	"context"
	"encoding/json"
)

// CachedPage is a cached list response. Items holds the encoded page items so
// one cache serves every listing.
type CachedPage struct {
	Items json.RawMessage `json:"items"`
	Total int64           `json:"total"`
}

// IListCache caches list pages under keys built by the usecase.
// Every key of a listing shares the listing's prefix so writes can drop them together.
type IListCache interface {
	GetPage(ctx context.Context, key string) (*CachedPage, bool, error)
	SetPage(ctx context.Context, key string, page *CachedPage) error
	InvalidatePrefix(ctx context.Context, prefix string) error
}
