package entity

import "github.com/golang-jwt/jwt/v5"

// Claims is the verified content of a credential.
type Claims struct {
	PrincipalID string `json:"userId"`
	Role        Role   `json:"role"`
	jwt.RegisteredClaims
}
