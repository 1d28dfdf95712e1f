package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("password123")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	_, err = service.HashPassword("")
	assert.Error(t, err)
}

func TestComparePassword(t *testing.T) {
	service := &HashService{}

	hash, err := service.HashPassword("password123")
	assert.NoError(t, err)

	assert.True(t, service.ComparePassword(hash, "password123"))
	assert.False(t, service.ComparePassword(hash, "wrong"))
	assert.False(t, service.ComparePassword("not-a-hash", "password123"))
}
