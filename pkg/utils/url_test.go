package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com", true},
		{"http://www.example.com/images/lunch.jpg", true},
		{"https://res.cloudinary.com/demo/image/upload/v1/meals/a.png?x=1", true},
		{"not a url", false},
		{"ftp://example.com/file", false},
		{"example.com", false},
		{"http://localhost", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ValidateURL(tc.in), "ValidateURL(%q)", tc.in)
	}
}
