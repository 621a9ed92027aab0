package jwt

import (
	"errors"
	"fmt"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
)

// CustomClaims is the signed payload of an access token. Subject carries the principal id.
type CustomClaims struct {
	Role string `json:"role"`
	gojwt.RegisteredClaims
}

// JWTManager signs and verifies HS256 access tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateAccessToken issues a token for principalID carrying its role tag.
func (m *JWTManager) GenerateAccessToken(principalID, role string) (string, error) {
	now := m.now()
	claims := &CustomClaims{
		Role: role,
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   principalID,
			ExpiresAt: gojwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  gojwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks signature and expiry. It fails with apperror kind
// TokenExpired for an expired token and InvalidToken for anything else.
func (m *JWTManager) VerifyToken(tokenStr string) (*CustomClaims, error) {
	claims := new(CustomClaims)
	parser := gojwt.NewParser(
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
		gojwt.WithTimeFunc(m.now),
	)
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*gojwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, gojwt.ErrTokenExpired) {
			return nil, apperror.Wrap(apperror.KindTokenExpired, "token expired", err)
		}
		return nil, apperror.Wrap(apperror.KindInvalidToken, "invalid token", err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, apperror.New(apperror.KindInvalidToken, "invalid token")
	}
	return claims, nil
}
