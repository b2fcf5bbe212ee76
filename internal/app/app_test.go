package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshRaj112/mealtracker-backend/internal/config"
)

func TestNewWithMemoryStore(t *testing.T) {
	cfg := &config.Config{
		JWTSecret:      "secret",
		Port:           "4000",
		AllowedOrigins: []string{"*"},
		Environment:    "development",
		Store:          "memory",
	}

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.Mongo)
	assert.Nil(t, a.Redis)

	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meals", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meals":[],"total_meals":0,"total_pages":0,"limit_per_page":8}`, rec.Body.String())
}

func TestNewWithUnreachableRedisStillStarts(t *testing.T) {
	cfg := &config.Config{
		RedisURI:       "redis://127.0.0.1:1/0",
		AllowedOrigins: []string{"*"},
		Store:          "memory",
	}

	a, err := New(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	defer a.Close()
	assert.Nil(t, a.Redis)
}

func TestCloseWithoutConnections(t *testing.T) {
	assert.NoError(t, (&App{}).Close())
}
