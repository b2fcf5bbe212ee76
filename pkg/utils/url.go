package utils

import "regexp"

var urlRegex = regexp.MustCompile(`https?://(www\.)?[-a-zA-Z0-9@:%._\+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b([-a-zA-Z0-9()@:%_\+.~#?&//=]*)`)

// ValidateURL reports whether s contains an http(s) URL. The check is purely
// syntactic and, like a search, matches anywhere in s.
func ValidateURL(s string) bool {
	return urlRegex.MatchString(s)
}
