package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/AnshRaj112/mealtracker-backend/internal/config"
	"github.com/AnshRaj112/mealtracker-backend/internal/database"
	"github.com/AnshRaj112/mealtracker-backend/internal/handlers"
	"github.com/AnshRaj112/mealtracker-backend/internal/middleware"
	"github.com/AnshRaj112/mealtracker-backend/internal/routes"
	"github.com/AnshRaj112/mealtracker-backend/internal/services"
)

// App owns the long-lived connections and the HTTP handler built on them.
type App struct {
	Config  *config.Config
	Mongo   *mongo.Client
	Redis   *redis.Client
	Handler http.Handler

	StartedAt time.Time
}

// New connects the configured store and optional Redis and Cloudinary, then
// wires services, handlers and routes. A store failure is fatal; optional
// services only log.
func New(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	a := &App{Config: cfg, StartedAt: time.Now()}

	var (
		userRepo services.UserRepository
		mealRepo services.MealRepository
	)
	if cfg.UseMemoryStore() {
		log.Warn().Msg("using in-memory store, data is lost on restart")
		userRepo = database.NewMemoryUserRepository()
		mealRepo = database.NewMemoryMealRepository()
	} else {
		client, db, err := database.Connect(ctx, cfg.MongoURI, log)
		if err != nil {
			return nil, fmt.Errorf("connect mongodb failed: %w", err)
		}
		a.Mongo = client

		indexCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		err = database.EnsureIndexes(indexCtx, db)
		cancel()
		if err != nil {
			log.Warn().Err(err).Msg("failed to ensure MongoDB indexes")
		} else {
			log.Info().Msg("MongoDB indexes ensured")
		}

		userRepo = database.NewUserRepository(db)
		mealRepo = database.NewMealRepository(db)
	}

	var authLimiter func(http.Handler) http.Handler
	if cfg.RedisURI != "" {
		client, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, signup and login are not rate limited")
		} else {
			a.Redis = client
			authLimiter = middleware.NewRedisRateLimiter(client, log).Middleware
			userRepo = services.NewCachedUserRepository(userRepo, services.NewCacheService(client), log)
			log.Info().Msg("redis enabled for auth rate limiting and user cache")
		}
	}

	var uploader handlers.PictureUploader
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Cloudinary, picture uploads disabled")
		} else {
			uploader = cld
			log.Info().Msg("Cloudinary service initialized")
		}
	} else {
		log.Info().Msg("Cloudinary credentials not found, picture uploads disabled")
	}

	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	mealService := services.NewMealService(mealRepo)

	a.Handler = routes.NewRouter(routes.Options{
		Users:          handlers.NewUserHandler(userService, log),
		Meals:          handlers.NewMealHandler(mealService, log),
		Upload:         handlers.NewUploadHandler(uploader, log),
		Authenticator:  userService,
		AuthLimiter:    authLimiter,
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
		Log:            log,
	})

	return a, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Mongo != nil {
		if err := database.Disconnect(a.Mongo); err != nil {
			closeErr = err
		}
	}
	return closeErr
}
