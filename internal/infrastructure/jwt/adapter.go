package jwt

import (
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

// GenerateAccessToken issues an access token for a principal.
func (a *JWTServiceAdapter) GenerateAccessToken(principalID string, role entity.Role) (string, error) {
	return a.mgr.GenerateAccessToken(principalID, string(role))
}

// ParseAccessToken validates an access token and returns Claims.
// The role tag is returned as signed; callers decide whether it is known.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	customClaims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		PrincipalID:      customClaims.Subject,
		Role:             entity.Role(customClaims.Role),
		RegisteredClaims: customClaims.RegisteredClaims,
	}, nil
}
