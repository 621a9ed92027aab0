package contract

import "context"

// IHasher hashes passwords and one-way hashes opaque tokens.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces n random bytes encoded as hex.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
