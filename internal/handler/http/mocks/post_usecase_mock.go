package mocks

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// MockPostUsecase is a mock implementation of the IPostUseCase interface
type MockPostUsecase struct {
	ShouldFailCreate bool
	ShouldFailGet    bool
	ShouldFailUpdate bool
	ShouldFailDelete bool
	ShouldFailReact  bool

	MockPost     entity.Post
	MockReaction entity.Reaction

	LastCreate   usecasecontract.CreatePostInput
	LastListOpts contract.ListOptions
	LastReactor  string
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:          "post-1",
			Title:       "Mock post",
			Slug:        "mock-post",
			Description: "a description long enough to pass",
			PostedBy:    "admin-1",
		},
		MockReaction: entity.ReactionLiked,
	}
}

func (m *MockPostUsecase) Create(ctx context.Context, in usecasecontract.CreatePostInput) (*entity.Post, error) {
	m.LastCreate = in
	if m.ShouldFailCreate {
		return nil, apperror.Conflict("blog with this title already exists")
	}
	p := m.MockPost
	p.Title = in.Title
	p.PostedBy = in.PostedBy
	p.PostedByRole = in.PostedByRole
	return &p, nil
}

func (m *MockPostUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Post, int64, error) {
	m.LastListOpts = opts
	return []entity.Post{m.MockPost}, 25, nil
}

func (m *MockPostUsecase) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	if m.ShouldFailGet {
		return nil, apperror.NotFound("blog not found")
	}
	return &m.MockPost, nil
}

func (m *MockPostUsecase) Update(ctx context.Context, id string, in usecasecontract.UpdatePostInput) (*entity.Post, error) {
	if m.ShouldFailUpdate {
		return nil, apperror.NotFound("blog not found")
	}
	return &m.MockPost, nil
}

func (m *MockPostUsecase) Delete(ctx context.Context, id string) error {
	if m.ShouldFailDelete {
		return apperror.NotFound("blog not found")
	}
	return nil
}

func (m *MockPostUsecase) ToggleReaction(ctx context.Context, postID, principalID string) (entity.Reaction, error) {
	m.LastReactor = principalID
	if m.ShouldFailReact {
		return "", apperror.Conflict("resource is being modified concurrently, please retry")
	}
	return m.MockReaction, nil
}
