package mocks

import (
	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/usecase"
)

// MockJWTService accepts tokens registered in Tokens and rejects everything else.
type MockJWTService struct {
	Tokens  map[string]entity.Claims
	Expired map[string]bool
}

var _ usecase.JWTService = (*MockJWTService)(nil)

func NewMockJWTService() *MockJWTService {
	return &MockJWTService{Tokens: map[string]entity.Claims{}, Expired: map[string]bool{}}
}

// Issue registers a token for the principal and returns it.
func (m *MockJWTService) Issue(principalID string, role entity.Role) string {
	token := "token-" + string(role) + "-" + principalID
	m.Tokens[token] = entity.Claims{PrincipalID: principalID, Role: role}
	return token
}

func (m *MockJWTService) GenerateAccessToken(principalID string, role entity.Role) (string, error) {
	return m.Issue(principalID, role), nil
}

func (m *MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	if m.Expired[token] {
		return nil, apperror.New(apperror.KindTokenExpired, "token expired")
	}
	claims, ok := m.Tokens[token]
	if !ok {
		return nil, apperror.New(apperror.KindInvalidToken, "invalid token")
	}
	return &claims, nil
}
