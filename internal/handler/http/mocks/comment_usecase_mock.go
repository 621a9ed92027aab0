package mocks

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// MockCommentUsecase is a mock implementation of the ICommentUseCase interface
type MockCommentUsecase struct {
	ShouldFailUpsert    bool
	ShouldForbidChanges bool
	Created             bool

	MockComment entity.Comment
	LastCaller  usecasecontract.Caller
}

var _ usecasecontract.ICommentUseCase = (*MockCommentUsecase)(nil)

func NewMockCommentUsecase() *MockCommentUsecase {
	return &MockCommentUsecase{
		Created:     true,
		MockComment: entity.Comment{ID: "comment-1", Comment: "nice post", CommentedBy: "user-1", CommentedByRole: entity.RoleUser},
	}
}

func (m *MockCommentUsecase) Upsert(ctx context.Context, postID string, caller usecasecontract.Caller, text string) (*entity.Comment, bool, error) {
	m.LastCaller = caller
	if m.ShouldFailUpsert {
		return nil, false, apperror.NotFound("blog not found")
	}
	c := m.MockComment
	c.Comment = text
	return &c, m.Created, nil
}

func (m *MockCommentUsecase) Update(ctx context.Context, postID, commentID string, caller usecasecontract.Caller, text string) (*entity.Comment, error) {
	m.LastCaller = caller
	if m.ShouldForbidChanges {
		return nil, apperror.Forbidden("unauthorized to update comment")
	}
	c := m.MockComment
	c.Comment = text
	return &c, nil
}

func (m *MockCommentUsecase) Delete(ctx context.Context, postID, commentID string, caller usecasecontract.Caller) error {
	m.LastCaller = caller
	if m.ShouldForbidChanges {
		return apperror.Forbidden("unauthorized to delete comment")
	}
	return nil
}

func (m *MockCommentUsecase) List(ctx context.Context, postID string) ([]entity.Comment, error) {
	return []entity.Comment{m.MockComment}, nil
}
