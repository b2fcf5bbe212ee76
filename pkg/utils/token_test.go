package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyToken(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	tok, err := IssueToken("64b7f0c2a1b2c3d4e5f60718", secret)
	require.NoError(t, err)

	userID, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", userID)
}

func TestIssueToken_FarFutureExpiry(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("u1", []byte("k"))
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now().AddDate(998, 0, 0)))
}

func TestVerifyToken_Failures(t *testing.T) {
	t.Parallel()

	good, err := IssueToken("u2", []byte("right-secret"))
	require.NoError(t, err)

	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
		UserID:           "u3",
	}).SignedString([]byte("right-secret"))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{}).SignedString([]byte("right-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"wrong secret", good},
		{"expired", expired},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
		{"missing user id", noUser},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			secret := []byte("right-secret")
			if tc.name == "wrong secret" {
				secret = []byte("wrong-secret")
			}
			_, err := VerifyToken(tc.token, secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{UserID: "u4"}).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("k"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}
