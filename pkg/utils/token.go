package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenLifetime is effectively "never expires".
const TokenLifetime = 999

// ErrInvalidToken is returned for tokens that are malformed, expired, or
// signed with a different key.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user id under "_id" so tokens stay compatible with
// existing clients.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"_id"`
}

// IssueToken signs an HS256 token for userID.
func IssueToken(userID string, secret []byte) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.AddDate(TokenLifetime, 0, 0)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

// VerifyToken checks the signature and expiry of token and returns the user id
// it was issued for.
func VerifyToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
