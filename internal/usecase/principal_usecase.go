package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// resetTokenBytes is the entropy of an emailed password reset token.
const resetTokenBytes = 32

// PrincipalUsecase implements the account workflow for one principal family.
// The three families share this type and differ only by role and repository.
type PrincipalUsecase struct {
	family          entity.Role
	repo            contract.IPrincipalRepository
	postRepo        contract.IPostRepository
	hasher          contract.IHasher
	jwtService      JWTService
	mailService     contract.IEmailService
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	validator       usecasecontract.IValidator
	uuidGenerator   contract.IUUIDGenerator
	randomGenerator contract.IRandomGenerator
	now             func() time.Time
}

// NewPrincipalUsecase creates a PrincipalUsecase for the given family.
func NewPrincipalUsecase(
	family entity.Role,
	repo contract.IPrincipalRepository,
	postRepo contract.IPostRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	mailService contract.IEmailService,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
	randomGenerator contract.IRandomGenerator,
) *PrincipalUsecase {
	return &PrincipalUsecase{
		family:          family,
		repo:            repo,
		postRepo:        postRepo,
		hasher:          hasher,
		jwtService:      jwtService,
		mailService:     mailService,
		logger:          logger,
		config:          cfg,
		validator:       validator,
		uuidGenerator:   uuidGenerator,
		randomGenerator: randomGenerator,
		now:             time.Now,
	}
}

// check if PrincipalUsecase implements the IPrincipalUseCase
var _ usecasecontract.IPrincipalUseCase = (*PrincipalUsecase)(nil)

func (uc *PrincipalUsecase) Family() entity.Role {
	return uc.family
}

func (uc *PrincipalUsecase) notFound() string {
	return fmt.Sprintf("%s not found", uc.family.Label())
}

// Register creates a principal of this family.
func (uc *PrincipalUsecase) Register(ctx context.Context, in usecasecontract.RegisterInput) (*entity.Principal, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.UserName = strings.TrimSpace(in.UserName)
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	if err := uc.ensureUnique(ctx, "", in.Email, in.Mobile); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, apperror.Internal(err)
	}

	now := uc.now()
	principal := &entity.Principal{
		ID:           uc.uuidGenerator.NewUUID(),
		UserName:     in.UserName,
		Email:        in.Email,
		Mobile:       in.Mobile,
		Country:      in.Country,
		City:         in.City,
		PasswordHash: hashedPassword,
		Role:         uc.family,
		SavedPosts:   []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.repo.Create(ctx, principal); err != nil {
		if errors.Is(err, contract.ErrDuplicateKey) {
			return nil, apperror.Conflict(fmt.Sprintf("%s with this email or mobile already exists", uc.family.Label()))
		}
		return nil, storeError(uc.logger, "register: create principal", err, uc.notFound())
	}
	return principal, nil
}

// ensureUnique rejects an email or mobile already held by a principal other than selfID.
// Empty values are not checked.
func (uc *PrincipalUsecase) ensureUnique(ctx context.Context, selfID, email, mobile string) error {
	if email != "" {
		existing, err := uc.repo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, contract.ErrNotFound) {
			return storeError(uc.logger, "check email uniqueness", err, uc.notFound())
		}
		if existing != nil && existing.ID != selfID {
			return apperror.Conflict(fmt.Sprintf("%s with this email already exists", uc.family.Label()))
		}
	}
	if mobile != "" {
		existing, err := uc.repo.GetByMobile(ctx, mobile)
		if err != nil && !errors.Is(err, contract.ErrNotFound) {
			return storeError(uc.logger, "check mobile uniqueness", err, uc.notFound())
		}
		if existing != nil && existing.ID != selfID {
			return apperror.Conflict(fmt.Sprintf("%s with this mobile already exists", uc.family.Label()))
		}
	}
	return nil
}

// Login verifies credentials and issues a credential for the principal.
func (uc *PrincipalUsecase) Login(ctx context.Context, email, password string) (*entity.Principal, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", apperror.Validation("a valid email is required")
	}

	principal, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", storeError(uc.logger, "login: get principal", err,
			fmt.Sprintf("%s with this email not found", uc.family.Label()))
	}

	if err := uc.hasher.ComparePasswordHash(password, principal.PasswordHash); err != nil {
		return nil, "", apperror.Unauthenticated("incorrect password")
	}

	token, err := uc.jwtService.GenerateAccessToken(principal.ID, principal.Role)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", apperror.Internal(err)
	}
	return principal, token, nil
}

// ChangePassword replaces the password after checking the current one.
func (uc *PrincipalUsecase) ChangePassword(ctx context.Context, principalID, oldPassword, newPassword string) error {
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return apperror.Validation(err.Error())
	}

	return retryOnConflict(func() error {
		principal, err := uc.repo.GetByID(ctx, principalID)
		if err != nil {
			return storeError(uc.logger, "change password: get principal", err, uc.notFound())
		}
		if err := uc.hasher.ComparePasswordHash(oldPassword, principal.PasswordHash); err != nil {
			return apperror.Unauthenticated("incorrect password")
		}
		if err := uc.setPassword(principal, newPassword); err != nil {
			return err
		}
		if err := uc.repo.Replace(ctx, principal); err != nil {
			return storeError(uc.logger, "change password: replace principal", err, uc.notFound())
		}
		return nil
	})
}

func (uc *PrincipalUsecase) setPassword(principal *entity.Principal, password string) error {
	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return apperror.Internal(err)
	}
	now := uc.now()
	principal.PasswordHash = hashedPassword
	principal.PasswordChangedAt = &now
	principal.UpdatedAt = now
	return nil
}

// ForgotPassword opens a reset flow and emails the raw token. Only its hash is stored.
func (uc *PrincipalUsecase) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := uc.validator.ValidateEmail(email); err != nil {
		return apperror.Validation("a valid email is required")
	}

	rawToken, err := uc.randomGenerator.GenerateRandomToken(resetTokenBytes)
	if err != nil {
		uc.logger.Errorf("failed to generate reset token: %v", err)
		return apperror.Internal(err)
	}

	var principal *entity.Principal
	err = retryOnConflict(func() error {
		p, err := uc.repo.GetByEmail(ctx, email)
		if err != nil {
			return storeError(uc.logger, "forgot password: get principal", err,
				fmt.Sprintf("%s with this email not found", uc.family.Label()))
		}
		p.PasswordReset = &entity.PasswordReset{
			TokenHash: uc.hasher.HashString(rawToken),
			ExpiresAt: uc.now().Add(uc.config.GetPasswordResetTokenExpiry()),
		}
		if err := uc.repo.Replace(ctx, p); err != nil {
			return storeError(uc.logger, "forgot password: store reset token", err, uc.notFound())
		}
		principal = p
		return nil
	})
	if err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/api/%s/resetPassword/%s", strings.TrimRight(uc.config.GetAppBaseURL(), "/"), uc.family, rawToken)
	subject := "Password Reset Request"
	body := fmt.Sprintf("Hi %s,\n\nYou have requested to reset your password. Send a PUT request with your new password to: %s\n\nThe link expires in %s. If you did not request this, please ignore this email.\n",
		principal.UserName, resetLink, uc.config.GetPasswordResetTokenExpiry())

	if err := uc.mailService.SendEmail(ctx, principal.Email, subject, body); err != nil {
		uc.logger.Errorf("failed to send password reset email to %s: %v", principal.Email, err)
		uc.abandonReset(ctx, principal.ID)
		return apperror.Wrap(apperror.KindInternal, "failed to send password reset email", err)
	}
	return nil
}

// abandonReset clears a reset flow whose email never went out.
func (uc *PrincipalUsecase) abandonReset(ctx context.Context, principalID string) {
	err := retryOnConflict(func() error {
		p, err := uc.repo.GetByID(ctx, principalID)
		if err != nil {
			return err
		}
		p.PasswordReset = nil
		return uc.repo.Replace(ctx, p)
	})
	if err != nil {
		uc.logger.Warnf("failed to clear reset token for %s: %v", principalID, err)
	}
}

// ResetPassword completes a reset flow. Unknown, used and expired tokens fail alike.
func (uc *PrincipalUsecase) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return apperror.Validation(err.Error())
	}
	tokenHash := uc.hasher.HashString(rawToken)

	return retryOnConflict(func() error {
		principal, err := uc.repo.GetByResetTokenHash(ctx, tokenHash, uc.now())
		if err != nil {
			if errors.Is(err, contract.ErrNotFound) {
				return apperror.New(apperror.KindResetTokenInvalid, "token expired or invalid")
			}
			return storeError(uc.logger, "reset password: find token", err, uc.notFound())
		}
		if err := uc.setPassword(principal, newPassword); err != nil {
			return err
		}
		principal.PasswordReset = nil
		if err := uc.repo.Replace(ctx, principal); err != nil {
			return storeError(uc.logger, "reset password: replace principal", err, uc.notFound())
		}
		return nil
	})
}

func (uc *PrincipalUsecase) GetByID(ctx context.Context, id string) (*entity.Principal, error) {
	principal, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(uc.logger, "get principal", err, uc.notFound())
	}
	return principal, nil
}

// GetProfile returns the caller's own account.
func (uc *PrincipalUsecase) GetProfile(ctx context.Context, principalID string) (*entity.Principal, error) {
	return uc.GetByID(ctx, principalID)
}

func (uc *PrincipalUsecase) List(ctx context.Context, opts contract.ListOptions) ([]entity.Principal, int64, error) {
	principals, total, err := uc.repo.List(ctx, opts)
	if err != nil {
		return nil, 0, storeError(uc.logger, "list principals", err, uc.notFound())
	}
	return principals, total, nil
}

func (uc *PrincipalUsecase) Count(ctx context.Context) (int64, error) {
	total, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, storeError(uc.logger, "count principals", err, uc.notFound())
	}
	return total, nil
}

// UpdateByID changes profile fields of any principal in the family.
func (uc *PrincipalUsecase) UpdateByID(ctx context.Context, id string, in usecasecontract.UpdatePrincipalInput) (*entity.Principal, error) {
	if err := uc.validator.ValidateStruct(in); err != nil {
		return nil, apperror.Validation(err.Error())
	}

	var updated *entity.Principal
	err := retryOnConflict(func() error {
		principal, err := uc.repo.GetByID(ctx, id)
		if err != nil {
			return storeError(uc.logger, "update principal: get", err, uc.notFound())
		}
		if in.Mobile != nil && *in.Mobile != principal.Mobile {
			if err := uc.ensureUnique(ctx, principal.ID, "", *in.Mobile); err != nil {
				return err
			}
			principal.Mobile = *in.Mobile
		}
		if in.UserName != nil {
			principal.UserName = strings.TrimSpace(*in.UserName)
		}
		if in.Country != nil {
			principal.Country = *in.Country
		}
		if in.City != nil {
			principal.City = *in.City
		}
		principal.UpdatedAt = uc.now()

		if err := uc.repo.Replace(ctx, principal); err != nil {
			if errors.Is(err, contract.ErrDuplicateKey) {
				return apperror.Conflict(fmt.Sprintf("%s with this mobile already exists", uc.family.Label()))
			}
			return storeError(uc.logger, "update principal: replace", err, uc.notFound())
		}
		updated = principal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateProfile changes the caller's own profile fields.
func (uc *PrincipalUsecase) UpdateProfile(ctx context.Context, principalID string, in usecasecontract.UpdatePrincipalInput) (*entity.Principal, error) {
	return uc.UpdateByID(ctx, principalID, in)
}

func (uc *PrincipalUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return storeError(uc.logger, "delete principal", err, uc.notFound())
	}
	return nil
}

// ToggleSavedPost saves postID to the principal's reading list, or removes it when already saved.
// Only saving requires the post to exist, so ids of deleted posts can still be removed.
func (uc *PrincipalUsecase) ToggleSavedPost(ctx context.Context, principalID, postID string) (bool, error) {
	var saved bool
	err := retryOnConflict(func() error {
		principal, err := uc.repo.GetByID(ctx, principalID)
		if err != nil {
			return storeError(uc.logger, "toggle saved post: get principal", err, uc.notFound())
		}
		if !principal.HasSaved(postID) {
			if _, err := uc.postRepo.GetByID(ctx, postID); err != nil {
				return storeError(uc.logger, "toggle saved post: get post", err, "blog not found")
			}
		}
		saved = principal.ToggleSavedPost(postID)
		principal.UpdatedAt = uc.now()
		if err := uc.repo.Replace(ctx, principal); err != nil {
			return storeError(uc.logger, "toggle saved post: replace principal", err, uc.notFound())
		}
		return nil
	})
	return saved, err
}

// GetSavedPosts resolves the reading list. Posts deleted since saving are skipped.
func (uc *PrincipalUsecase) GetSavedPosts(ctx context.Context, principalID string) ([]entity.Post, error) {
	principal, err := uc.repo.GetByID(ctx, principalID)
	if err != nil {
		return nil, storeError(uc.logger, "saved posts: get principal", err, uc.notFound())
	}
	if len(principal.SavedPosts) == 0 {
		return []entity.Post{}, nil
	}
	posts, err := uc.postRepo.GetByIDs(ctx, principal.SavedPosts)
	if err != nil {
		return nil, storeError(uc.logger, "saved posts: get posts", err, "blog not found")
	}
	return posts, nil
}

// Bootstrap registers in when the family has no principals yet. It reports whether one was created.
func (uc *PrincipalUsecase) Bootstrap(ctx context.Context, in usecasecontract.RegisterInput) (bool, error) {
	total, err := uc.Count(ctx)
	if err != nil {
		return false, err
	}
	if total > 0 {
		return false, nil
	}
	if _, err := uc.Register(ctx, in); err != nil {
		return false, err
	}
	uc.logger.Infof("bootstrapped first %s account %s", uc.family, strings.ToLower(in.Email))
	return true, nil
}
