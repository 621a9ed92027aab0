package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

type ICommentUseCase interface {
	// Upsert edits the caller's comment on the post, or adds one. The bool is true when a comment was added.
	Upsert(ctx context.Context, postID string, caller Caller, text string) (*entity.Comment, bool, error)
	Update(ctx context.Context, postID, commentID string, caller Caller, text string) (*entity.Comment, error)
	Delete(ctx context.Context, postID, commentID string, caller Caller) error
	List(ctx context.Context, postID string) ([]entity.Comment, error)
}
