package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

type IPostUseCase interface {
	Create(ctx context.Context, in CreatePostInput) (*entity.Post, error)
	List(ctx context.Context, opts contract.ListOptions) ([]entity.Post, int64, error)
	// GetByID counts a view and returns the post as it is after the increment.
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	ToggleReaction(ctx context.Context, postID, principalID string) (entity.Reaction, error)
}
