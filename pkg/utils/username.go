package utils

import (
	"regexp"
	"unicode/utf8"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 4

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// IsAlphanumeric reports whether username consists only of ASCII letters and
// digits.
func IsAlphanumeric(username string) bool {
	return usernameRegex.MatchString(username)
}

// IsPasswordLongEnough reports whether password has at least
// MinPasswordLength characters.
func IsPasswordLongEnough(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}
