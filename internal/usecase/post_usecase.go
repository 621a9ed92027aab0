package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
	"github.com/mikiasgoitom/Quill/internal/utils"
)

const (
	defaultPostPageSize = 10
	errPostNotFound     = "blog not found"
)

// PostUsecase implements the IPostUseCase interface.
type PostUsecase struct {
	postRepo  contract.IPostRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
	lists     *listCache
	now       func() time.Time
}

// NewPostUsecase creates a new PostUsecase.
func NewPostUsecase(postRepo contract.IPostRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator) *PostUsecase {
	return &PostUsecase{
		postRepo:  postRepo,
		uuidgen:   uuidgen,
		logger:    logger,
		validator: validator,
		lists:     &listCache{name: "posts", logger: logger},
		now:       time.Now,
	}
}

// check if PostUsecase implements the IPostUseCase
var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

// SetListCache enables caching of list pages.
func (uc *PostUsecase) SetListCache(cache contract.IListCache) {
	uc.lists.cache = cache
}

// Create publishes a new post authored by the caller.
func (uc *PostUsecase) Create(ctx context.Context, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := uc.ensureTitleFree(ctx, "", in.Title); err != nil {
		return nil, err
	}
	slug, err := uc.freeSlug(ctx, "", in.Title)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	post := &entity.Post{
		ID:            uc.uuidgen.NewUUID(),
		PostedBy:      in.PostedBy,
		PostedByRole:  in.PostedByRole,
		Title:         in.Title,
		Slug:          slug,
		Description:   in.Description,
		Images:        in.Images,
		LikedUsers:    []string{},
		DislikedUsers: []string{},
		Comments:      []entity.Comment{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := uc.postRepo.Create(ctx, post); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict("blog with this title already exists")
		}
		return nil, storeError(uc.logger, "create post", err, errPostNotFound)
	}
	uc.lists.invalidate(ctx)
	return post, nil
}

func (uc *PostUsecase) ensureTitleFree(ctx context.Context, selfID, title string) error {
	existing, err := uc.postRepo.GetByTitle(ctx, title)
	if err != nil && !errors.Is(err, contract.ErrNotFound) {
		return storeError(uc.logger, "check post title", err, errPostNotFound)
	}
	if existing != nil && existing.ID != selfID {
		return apperror.Conflict("blog with this title already exists")
	}
	return nil
}

func (uc *PostUsecase) freeSlug(ctx context.Context, selfID, title string) (string, error) {
	slug, err := utils.UniqueSlug(ctx, utils.Slugify(title), func(ctx context.Context, s string) (bool, error) {
		existing, err := uc.postRepo.GetBySlug(ctx, s)
		if errors.Is(err, contract.ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return existing.ID != selfID, nil
	})
	if err != nil {
		uc.logger.Errorf("failed to derive slug for %q: %v", title, err)
		return "", apperror.Internal(err)
	}
	return slug, nil
}

// List returns one page of posts, newest first, optionally filtered by title.
func (uc *PostUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Post, int64, error) {
	opts = normalizeListOptions(opts, defaultPostPageSize)

	var cached []entity.Post
	if total, ok := uc.lists.get(ctx, opts, &cached); ok {
		return cached, total, nil
	}

	posts, total, err := uc.postRepo.List(ctx, opts)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list posts", err, errPostNotFound)
	}
	uc.lists.set(ctx, opts, posts, total)
	return posts, total, nil
}

func (uc *PostUsecase) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	post, err := uc.postRepo.IncrementViews(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get post", err, errPostNotFound)
	}
	return post, nil
}

// Update edits title, description and images. A new title regenerates the slug.
func (uc *PostUsecase) Update(ctx context.Context, id string, in usecasecontract.UpdatePostInput) (*entity.Post, error) {
	if in.Title != nil {
		trimmed := strings.TrimSpace(*in.Title)
		in.Title = &trimmed
	}
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var updated *entity.Post
	err := retryOnConflict(func() error {
		post, err := uc.postRepo.GetByID(ctx, id)
		if err != nil {
			return storeError(uc.logger, "update post: get", err, errPostNotFound)
		}
		if in.Title != nil && *in.Title != post.Title {
			if err := uc.ensureTitleFree(ctx, post.ID, *in.Title); err != nil {
				return err
			}
			slug, err := uc.freeSlug(ctx, post.ID, *in.Title)
			if err != nil {
				return err
			}
			post.Title = *in.Title
			post.Slug = slug
		}
		if in.Description != nil {
			post.Description = *in.Description
		}
		if in.Images != nil {
			post.Images = in.Images
		}
		post.UpdatedAt = uc.now()

		if err := uc.postRepo.Replace(ctx, post); err != nil {
			if errors.Is(err, contract.ErrDuplicateKey) {
				return apperror.Conflict("blog with this title already exists")
			}
			return storeError(uc.logger, "update post: replace", err, errPostNotFound)
		}
		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.lists.invalidate(ctx)
	return updated, nil
}

func (uc *PostUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.postRepo.Delete(ctx, id); err != nil {
		return storeError(uc.logger, "delete post", err, errPostNotFound)
	}
	uc.lists.invalidate(ctx)
	return nil
}

// ToggleReaction advances the caller through the like/dislike cycle on a post.
func (uc *PostUsecase) ToggleReaction(ctx context.Context, postID, principalID string) (entity.Reaction, error) {
	var reaction entity.Reaction
	err := retryOnConflict(func() error {
		post, err := uc.postRepo.GetByID(ctx, postID)
		if err != nil {
			return storeError(uc.logger, "toggle reaction: get post", err, errPostNotFound)
		}
		reaction = post.ToggleReaction(principalID)
		post.UpdatedAt = uc.now()
		if err := uc.postRepo.Replace(ctx, post); err != nil {
			return storeError(uc.logger, "toggle reaction: replace post", err, errPostNotFound)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	metrics.IncReaction(string(reaction))
	uc.lists.invalidate(ctx)
	return reaction, nil
}
