package contract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

type ICategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByTitle(ctx context.Context, title string) (*entity.Category, error)
	List(ctx context.Context, opts ListOptions) ([]entity.Category, int64, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}
