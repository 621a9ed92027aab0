package contract

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// ListOptions describes one page of a listing. Search, when set, is a
// case-insensitive substring match on the listing's title-like field.
type ListOptions struct {
	Page   int
	Limit  int
	Search string
}

// Skip is the number of documents before the requested page.
func (o ListOptions) Skip() int {
	if o.Page <= 1 {
		return 0
	}
	return (o.Page - 1) * o.Limit
}

// IPrincipalRepository persists principals of one family.
type IPrincipalRepository interface {
	Create(ctx context.Context, principal *entity.Principal) error
	GetByID(ctx context.Context, id string) (*entity.Principal, error)
	GetByEmail(ctx context.Context, email string) (*entity.Principal, error)
	GetByMobile(ctx context.Context, mobile string) (*entity.Principal, error)
	// GetByResetTokenHash finds the principal whose pending reset matches hash and
	// has not expired at now.
	GetByResetTokenHash(ctx context.Context, hash string, now time.Time) (*entity.Principal, error)
	// List returns one page and the number of principals matching opts.Search.
	List(ctx context.Context, opts ListOptions) ([]entity.Principal, int64, error)
	Count(ctx context.Context) (int64, error)
	// Replace writes principal only if the stored version equals principal.Version,
	// and bumps the version on success. ErrVersionConflict otherwise.
	Replace(ctx context.Context, principal *entity.Principal) error
	Delete(ctx context.Context, id string) error
}
