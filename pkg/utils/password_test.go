package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_SaltedAndVerifiable(t *testing.T) {
	h1, err := HashPassword("abcd")
	require.NoError(t, err)
	h2, err := HashPassword("abcd")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "hashes of the same password must differ")
	assert.True(t, VerifyPassword("abcd", h1))
	assert.True(t, VerifyPassword("abcd", h2))

	cost, err := bcrypt.Cost([]byte(h1))
	require.NoError(t, err)
	assert.Equal(t, SaltRounds, cost)
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)

	assert.False(t, VerifyPassword("Secret", h))
	assert.False(t, VerifyPassword("", h))
	assert.False(t, VerifyPassword("secret", "not-a-hash"))
}
