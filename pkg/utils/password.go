package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// SaltRounds is the bcrypt cost used for every stored password.
const SaltRounds = 10

// HashPassword hashes a password with bcrypt. Each call uses a fresh salt, so
// hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), SaltRounds)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
func VerifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
