package contract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// IPostRepository persists blog posts with their embedded comments.
type IPostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	GetByIDs(ctx context.Context, ids []string) ([]entity.Post, error)
	GetByTitle(ctx context.Context, title string) (*entity.Post, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Post, error)
	// List returns one page, newest first, and the total number of matches.
	List(ctx context.Context, opts ListOptions) ([]entity.Post, int64, error)
	// IncrementViews atomically bumps the view counter and returns the updated post.
	IncrementViews(ctx context.Context, id string) (*entity.Post, error)
	// Replace is a versioned write, see IPrincipalRepository.Replace.
	Replace(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id string) error
}
