package uuidgen

import (
	"github.com/google/uuid"
	"github.com/mikiasgoitom/Quill/internal/domain/contract"
)

// Generator issues time-ordered (v7) UUIDs so ids sort by creation.
type Generator struct{}

// NewGenerator creates a new UUID generator.
func NewGenerator() contract.IUUIDGenerator {
	return &Generator{}
}

// Ensure Generator implements the contract.IUUIDGenerator interface
var _ contract.IUUIDGenerator = (*Generator)(nil)

// NewUUID generates a new UUID, falling back to v4 if the clock source fails.
func (g *Generator) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// Valid reports whether s is a well-formed UUID.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
