package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	require.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPasswordHash("supersecret", hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestGenerateCode(t *testing.T) {
	code := GenerateCode(6)
	require.Len(t, code, 6)
	for _, c := range code {
		assert.True(t, c >= '0' && c <= '9')
	}

	// Non-positive length falls back to the default
	assert.Len(t, GenerateCode(0), 6)
	assert.Len(t, GenerateCode(4), 4)
}
