package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

type ICategoryUseCase interface {
	Create(ctx context.Context, in CategoryInput) (*entity.Category, error)
	List(ctx context.Context, opts contract.ListOptions) ([]entity.Category, int64, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, id string, in CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
