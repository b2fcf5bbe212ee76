package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/meals_dev", "meals_dev"},
		{"mongodb+srv://bob:pw@cluster0.abc.mongodb.net/mealapp?retryWrites=true&w=majority", "mealapp"},
		{"mongodb://localhost:27017", DefaultDatabaseName},
		{"mongodb://localhost:27017/", DefaultDatabaseName},
		{"mongodb://localhost:27017/?authSource=admin", DefaultDatabaseName},
		{"", DefaultDatabaseName},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DatabaseName(tc.uri), tc.uri)
	}
}
