package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"MONGODB_URI", "MONGO_URI", "REDIS_URI", "JWT_SECRET", "PORT", "ALLOWED_ORIGINS", "ENV", "STORE", "LOG_LEVEL",
		"CLOUDINARY_CLOUD_NAME", "CLOUDINARY_API_KEY", "CLOUDINARY_API_SECRET"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "mongodb://localhost:27017/mealtracker", cfg.MongoURI)
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.JWTSecret)
	assert.Empty(t, cfg.RedisURI)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.UseMemoryStore())
	assert.False(t, cfg.CloudinaryEnabled())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URI", "mongodb://db:27017/meals")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("ALLOWED_ORIGINS", " https://meals.example.com , http://localhost:3000,")
	t.Setenv("ENV", " Production ")
	t.Setenv("STORE", "MEMORY")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg := Load()
	assert.Equal(t, "mongodb://db:27017/meals", cfg.MongoURI)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://meals.example.com", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.UseMemoryStore())
	assert.True(t, cfg.CloudinaryEnabled())

	t.Setenv("MONGODB_URI", "mongodb://primary:27017/meals")
	assert.Equal(t, "mongodb://primary:27017/meals", Load().MongoURI)
}
