package mocks

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// MockPrincipalUsecase is a mock implementation of the IPrincipalUseCase interface
type MockPrincipalUsecase struct {
	// Control mock behavior
	ShouldFailRegister       bool
	ShouldFailLogin          bool
	ShouldFailChangePassword bool
	ShouldFailForgotPassword bool
	ShouldFailResetPassword  bool
	ShouldFailGetByID        bool
	ShouldFailList           bool
	ShouldFailUpdate         bool
	ShouldFailDelete         bool
	ShouldFailToggleSaved    bool

	// Return values
	FamilyRole    entity.Role
	MockPrincipal entity.Principal
	MockToken     string
	MockPosts     []entity.Post
	Saved         bool

	// Recorded arguments
	LastPrincipalID string
	LastResetToken  string
	LastUpdate      usecasecontract.UpdatePrincipalInput
}

var _ usecasecontract.IPrincipalUseCase = (*MockPrincipalUsecase)(nil)

func NewMockPrincipalUsecase(family entity.Role) *MockPrincipalUsecase {
	return &MockPrincipalUsecase{
		FamilyRole: family,
		MockPrincipal: entity.Principal{
			ID:           "mock-principal-id",
			UserName:     "testuser",
			Email:        "test@example.com",
			Mobile:       "09123456789",
			Country:      "Ethiopia",
			City:         "Addis Ababa",
			PasswordHash: "$2a$10$secret-hash",
			Role:         family,
			SavedPosts:   []string{},
		},
		MockToken: "mock_access_token",
		MockPosts: []entity.Post{{ID: "post-1", Title: "Saved post", Description: "a saved post description", PostedBy: "admin-1"}},
		Saved:     true,
	}
}

func (m *MockPrincipalUsecase) Family() entity.Role {
	return m.FamilyRole
}

func (m *MockPrincipalUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.Principal, error) {
	if m.ShouldFailRegister {
		return nil, apperror.Conflict(m.FamilyRole.Label() + " with this email already exists")
	}
	p := m.MockPrincipal
	p.UserName = in.UserName
	p.Email = in.Email
	return &p, nil
}

func (m *MockPrincipalUsecase) Login(ctx context.Context, email, password string) (*entity.Principal, string, error) {
	if m.ShouldFailLogin {
		return nil, "", apperror.Unauthenticated("incorrect password")
	}
	return &m.MockPrincipal, m.MockToken, nil
}

func (m *MockPrincipalUsecase) ChangePassword(ctx context.Context, principalID, oldPassword, newPassword string) error {
	m.LastPrincipalID = principalID
	if m.ShouldFailChangePassword {
		return apperror.Unauthenticated("incorrect password")
	}
	return nil
}

func (m *MockPrincipalUsecase) ForgotPassword(ctx context.Context, email string) error {
	if m.ShouldFailForgotPassword {
		return apperror.NotFound(m.FamilyRole.Label() + " with this email not found")
	}
	return nil
}

func (m *MockPrincipalUsecase) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	m.LastResetToken = rawToken
	if m.ShouldFailResetPassword {
		return apperror.New(apperror.KindResetTokenInvalid, "token expired or invalid")
	}
	return nil
}

func (m *MockPrincipalUsecase) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	m.LastPrincipalID = id
	if m.ShouldFailGetByID {
		return nil, apperror.NotFound(m.FamilyRole.Label() + " not found")
	}
	return &m.MockPrincipal, nil
}

func (m *MockPrincipalUsecase) GetProfile(ctx context.Context, principalID string) (*entity.Principal, error) {
	return m.GetByID(ctx, principalID)
}

func (m *MockPrincipalUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Principal, int64, error) {
	if m.ShouldFailList {
		return nil, 0, apperror.Internal(nil)
	}
	return []entity.Principal{m.MockPrincipal}, 1, nil
}

func (m *MockPrincipalUsecase) Count(ctx context.Context) (int64, error) {
	if m.ShouldFailList {
		return 0, apperror.Internal(nil)
	}
	return 1, nil
}

func (m *MockPrincipalUsecase) UpdateByID(ctx context.Context, id string, in usecasecontract.UpdatePrincipalInput) (*entity.Principal, error) {
	m.LastPrincipalID = id
	m.LastUpdate = in
	if m.ShouldFailUpdate {
		return nil, apperror.Conflict(m.FamilyRole.Label() + " with this mobile already exists")
	}
	p := m.MockPrincipal
	if in.UserName != nil {
		p.UserName = *in.UserName
	}
	return &p, nil
}

func (m *MockPrincipalUsecase) UpdateProfile(ctx context.Context, principalID string, in usecasecontract.UpdatePrincipalInput) (*entity.Principal, error) {
	return m.UpdateByID(ctx, principalID, in)
}

func (m *MockPrincipalUsecase) Delete(ctx context.Context, id string) error {
	m.LastPrincipalID = id
	if m.ShouldFailDelete {
		return apperror.NotFound(m.FamilyRole.Label() + " not found")
	}
	return nil
}

func (m *MockPrincipalUsecase) ToggleSavedPost(ctx context.Context, principalID, postID string) (bool, error) {
	m.LastPrincipalID = principalID
	if m.ShouldFailToggleSaved {
		return false, apperror.NotFound("blog not found")
	}
	return m.Saved, nil
}

func (m *MockPrincipalUsecase) GetSavedPosts(ctx context.Context, principalID string) ([]entity.Post, error) {
	m.LastPrincipalID = principalID
	return m.MockPosts, nil
}

func (m *MockPrincipalUsecase) Bootstrap(ctx context.Context, in usecasecontract.RegisterInput) (bool, error) {
	return false, nil
}
