package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const maxCommentLength = 500

// CommentUsecase manages the comments embedded in posts.
type CommentUsecase struct {
	postRepo contract.IPostRepository
	uuidgen  contract.IUUIDGenerator
	logger   usecasecontract.IAppLogger
	// posts is the post list cache; comments are part of each cached post.
	posts *listCache
	now   func() time.Time
}

func NewCommentUsecase(postRepo contract.IPostRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger) *CommentUsecase {
	return &CommentUsecase{
		postRepo: postRepo,
		uuidgen:  uuidgen,
		logger:   logger,
		posts:    &listCache{name: "posts", logger: logger},
		now:      time.Now,
	}
}

var _ usecasecontract.ICommentUseCase = (*CommentUsecase)(nil)

// SetListCache shares the post list cache so comment writes invalidate it.
func (uc *CommentUsecase) SetListCache(cache contract.IListCache) {
	uc.posts.cache = cache
}

func validateCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperror.Validation("comment is required")
	}
	if len([]rune(text)) > maxCommentLength {
		return "", apperror.Validation("comment must be at most 500 characters")
	}
	return text, nil
}

// Upsert overwrites the caller's existing comment on the post, or appends a new one.
func (uc *CommentUsecase) Upsert(ctx context.Context, postID string, caller usecasecontract.Caller, text string) (*entity.Comment, bool, error) {
	text, err := validateCommentText(text)
	if err != nil {
		return nil, false, err
	}

	var (
		comment entity.Comment
		created bool
	)
	err = retryOnConflict(func() error {
		post, err := uc.postRepo.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "upsert comment: get post", err, errPostNotFound)
		}
		comment, created = post.UpsertComment(uc.uuidgen.NewUUID(), caller.ID, caller.Role, text, uc.now())
		if err := uc.postRepo.Replace(ctx, post); err != nil {
			return storeError(uc.logger, "upsert comment: replace post", err, errPostNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	uc.posts.invalidate(ctx)
	return &comment, created, nil
}

// Update edits a comment. Only its author may do so.
func (uc *CommentUsecase) Update(ctx context.Context, postID, commentID string, caller usecasecontract.Caller, text string) (*entity.Comment, error) {
	text, err := validateCommentText(text)
	if err != nil {
		return nil, err
	}

	var comment entity.Comment
	err = retryOnConflict(func() error {
		post, err := uc.postRepo.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "update comment: get post", err, errPostNotFound)
		}
		comment, err = post.UpdateComment(commentID, caller.ID, text, uc.now())
		if err != nil {
			return err
		}
		if err := uc.postRepo.Replace(ctx, post); err != nil {
			return storeError(uc.logger, "update comment: replace post", err, errPostNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.posts.invalidate(ctx)
	return &comment, nil
}

// Delete removes a comment. Only its author may do so.
func (uc *CommentUsecase) Delete(ctx context.Context, postID, commentID string, caller usecasecontract.Caller) error {
	err := retryOnConflict(func() error {
		post, err := uc.postRepo.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "delete comment: get post", err, errPostNotFound)
		}
		if err := post.DeleteComment(commentID, caller.ID); err != nil {
			return err
		}
		if err := uc.postRepo.Replace(ctx, post); err != nil {
			return storeError(uc.logger, "delete comment: replace post", err, errPostNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	uc.posts.invalidate(ctx)
	return nil
}

func (uc *CommentUsecase) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, storeError(uc.logger, "list comments: get post", err, errPostNotFound)
	}
	if post.Comments == nil {
		return []entity.Comment{}, nil
	}
	return post.Comments, nil
}
