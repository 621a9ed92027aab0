package mocks

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// MockCategoryUsecase is a mock implementation of the ICategoryUseCase interface
type MockCategoryUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool

	MockCategory entity.Category
	LastListOpts contract.ListOptions
}

var _ usecasecontract.ICategoryUseCase = (*MockCategoryUsecase)(nil)

func NewMockCategoryUsecase() *MockCategoryUsecase {
	return &MockCategoryUsecase{
		MockCategory: entity.Category{ID: "cat-1", Title: "Tech", Icon: "chip", Color: "#333"},
	}
}

func (m *MockCategoryUsecase) Create(ctx context.Context, in usecasecontract.CategoryInput) (*entity.Category, error) {
	if m.ShouldFailCreate {
		return nil, apperror.Conflict("category with this title already exists")
	}
	c := m.MockCategory
	c.Title = in.Title
	return &c, nil
}

func (m *MockCategoryUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Category, int64, error) {
	m.LastListOpts = opts
	return []entity.Category{m.MockCategory}, 1, nil
}

func (m *MockCategoryUsecase) Count(ctx context.Context) (int64, error) {
	return 1, nil
}

func (m *MockCategoryUsecase) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if m.ShouldFailGet {
		return nil, apperror.NotFound("category not found")
	}
	return &m.MockCategory, nil
}

func (m *MockCategoryUsecase) Update(ctx context.Context, id string, in usecasecontract.CategoryInput) (*entity.Category, error) {
	if m.ShouldFailGet {
		return nil, apperror.NotFound("category not found")
	}
	return &m.MockCategory, nil
}

func (m *MockCategoryUsecase) Delete(ctx context.Context, id string) error {
	if m.ShouldFailGet {
		return apperror.NotFound("category not found")
	}
	return nil
}
