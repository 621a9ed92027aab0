package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// IPrincipalUseCase is the account workflow of one principal family.
type IPrincipalUseCase interface {
	Family() entity.Role
	Register(ctx context.Context, in RegisterInput) (*entity.Principal, error)
	Login(ctx context.Context, email, password string) (*entity.Principal, string, error)
	ChangePassword(ctx context.Context, principalID, oldPassword, newPassword string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, rawToken, newPassword string) error
	GetByID(ctx context.Context, id string) (*entity.Principal, error)
	GetProfile(ctx context.Context, principalID string) (*entity.Principal, error)
	List(ctx context.Context, opts contract.ListOptions) ([]entity.Principal, int64, error)
	Count(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, id string, in UpdatePrincipalInput) (*entity.Principal, error)
	UpdateProfile(ctx context.Context, principalID string, in UpdatePrincipalInput) (*entity.Principal, error)
	Delete(ctx context.Context, id string) error
	ToggleSavedPost(ctx context.Context, principalID, postID string) (bool, error)
	GetSavedPosts(ctx context.Context, principalID string) ([]entity.Post, error)
	Bootstrap(ctx context.Context, in RegisterInput) (bool, error)
}
