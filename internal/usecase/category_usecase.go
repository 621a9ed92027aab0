package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

const (
	defaultCategoryPageSize = 5
	errCategoryNotFound     = "category not found"
	errCategoryExists       = "category with this title already exists"
)

type CategoryUsecase struct {
	repo      contract.ICategoryRepository
	uuidgen   contract.IUUIDGenerator
	logger    usecasecontract.IAppLogger
	validator usecasecontract.IValidator
	lists     *listCache
	now       func() time.Time
}

func NewCategoryUsecase(repo contract.ICategoryRepository, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger, validator usecasecontract.IValidator) *CategoryUsecase {
	return &CategoryUsecase{
		repo:      repo,
		uuidgen:   uuidgen,
		logger:    logger,
		validator: validator,
		lists:     &listCache{name: "categories", logger: logger},
		now:       time.Now,
	}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUsecase)(nil)

// SetListCache enables caching of list pages.
func (uc *CategoryUsecase) SetListCache(cache contract.IListCache) {
	uc.lists.cache = cache
}

func (uc *CategoryUsecase) Create(ctx context.Context, in usecasecontract.CategoryInput) (*entity.Category, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	if err := uc.ensureTitleFree(ctx, "", in.Title); err != nil {
		return nil, err
	}

	now := uc.now()
	category := &entity.Category{
		ID:        uc.uuidgen.NewUUID(),
		Title:     in.Title,
		Icon:      in.Icon,
		Color:     in.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict(errCategoryExists)
		}
		return nil, storeError(uc.logger, "create category", err, errCategoryNotFound)
	}
	uc.lists.invalidate(ctx)
	return category, nil
}

func (uc *CategoryUsecase) ensureTitleFree(ctx context.Context, selfID, title string) error {
	existing, err := uc.repo.GetByTitle(ctx, title)
	if err != nil && !errors.Is(err, contract.ErrNotFound) {
		return storeError(uc.logger, "check category title", err, errCategoryNotFound)
	}
	if existing != nil && existing.ID != selfID {
		return apperror.Conflict(errCategoryExists)
	}
	return nil
}

func (uc *CategoryUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Category, int64, error) {
	opts = normalizeListOptions(opts, defaultCategoryPageSize)

	var cached []entity.Category
	if total, ok := uc.lists.get(ctx, opts, &cached); ok {
		return cached, total, nil
	}

	categories, total, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list categories", err, errCategoryNotFound)
	}
	uc.lists.set(ctx, opts, categories, total)
	return categories, total, nil
}

func (uc *CategoryUsecase) Count(ctx context.Context) (int64, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, storeError(uc.logger, "count categories", err, errCategoryNotFound)
	}
	return total, nil
}

func (uc *CategoryUsecase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get category", err, errCategoryNotFound)
	}
	return category, nil
}

func (uc *CategoryUsecase) Update(ctx context.Context, id string, in usecasecontract.CategoryInput) (*entity.Category, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "update category: get", err, errCategoryNotFound)
	}
	if in.Title != category.Title {
		if err := uc.ensureTitleFree(ctx, category.ID, in.Title); err != nil {
			return nil, err
		}
	}
	category.Title = in.Title
	category.Icon = in.Icon
	category.Color = in.Color
	category.UpdatedAt = uc.now()

	if err := uc.repo.Update(ctx, category); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict(errCategoryExists)
		}
		return nil, storeError(uc.logger, "update category", err, errCategoryNotFound)
	}
	uc.lists.invalidate(ctx)
	return category, nil
}

func (uc *CategoryUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return storeError(uc.logger, "delete category", err, errCategoryNotFound)
	}
	uc.lists.invalidate(ctx)
	return nil
}
