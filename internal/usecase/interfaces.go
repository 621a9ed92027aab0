package usecase

import (
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
)

// JWTService defines the interface for credential operations.
type JWTService interface {
	GenerateAccessToken(principalID string, role entity.Role) (string, error)
	// ParseAccessToken fails with apperror kinds TokenExpired or InvalidToken.
	ParseAccessToken(token string) (*entity.Claims, error)
}
