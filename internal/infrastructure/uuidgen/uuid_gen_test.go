package uuidgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUUID(t *testing.T) {
	g := NewGenerator()
	a, b := g.NewUUID(), g.NewUUID()

	assert.True(t, Valid(a))
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "v7 ids sort by creation time")
}

func TestValid(t *testing.T) {
	assert.False(t, Valid("nope"))
	assert.False(t, Valid(""))
	assert.True(t, Valid("0190a7c4-8f1e-7c3a-9b2d-4e5f6a7b8c9d"))
}
