package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AnshRaj112/mealtracker-backend/pkg/clientip"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	// AuthRateLimitWindow is the counting window for signup/login attempts.
	AuthRateLimitWindow = 120 * time.Second
	// AuthRateLimitMaxRequests is the number of attempts allowed per window.
	AuthRateLimitMaxRequests = 25
	// AuthBlockDuration is how long an IP stays blocked after exceeding the limit.
	AuthBlockDuration = 15 * time.Minute

	RateLimitKeyPrefix = "ratelimit:auth:"
	BlockedIPKeyPrefix = "blocked_ip:auth:"
)

// RedisRateLimiter counts requests per IP in Redis so the limit holds across
// several API instances. Redis failures let the request through.
type RedisRateLimiter struct {
	client      *redis.Client
	window      time.Duration
	maxRequests int64
	blockFor    time.Duration
	log         zerolog.Logger
}

func NewRedisRateLimiter(client *redis.Client, log zerolog.Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:      client,
		window:      AuthRateLimitWindow,
		maxRequests: AuthRateLimitMaxRequests,
		blockFor:    AuthBlockDuration,
		log:         log,
	}
}

func (l *RedisRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ip := clientip.RealClientIP(r)
		blockedKey := BlockedIPKeyPrefix + ip

		isBlocked, err := l.client.Exists(ctx, blockedKey).Result()
		if err == nil && isBlocked > 0 {
			writeError(w, http.StatusTooManyRequests, "Too many attempts. Please try again later.")
			return
		}

		rateLimitKey := RateLimitKeyPrefix + ip
		count, err := l.client.Incr(ctx, rateLimitKey).Result()
		if err != nil {
			l.log.Warn().Err(err).Msg("rate limiter unavailable, allowing request")
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			l.client.Expire(ctx, rateLimitKey, l.window)
		}

		if count > l.maxRequests {
			if err := l.client.Set(ctx, blockedKey, "1", l.blockFor).Err(); err != nil {
				l.log.Warn().Err(err).Str("ip", ip).Msg("failed to record blocked ip")
			}
			w.Header().Set("Retry-After", strconv.Itoa(int(l.blockFor.Seconds())))
			writeError(w, http.StatusTooManyRequests, "Too many attempts. Please try again later.")
			return
		}

		w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(l.maxRequests, 10))
		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(l.maxRequests-count, 10))
		next.ServeHTTP(w, r)
	})
}
