package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/choice-battle/backend/internal/errs"
	"github.com/choice-battle/backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStoreTimeout bounds one rate limit check against Redis.
const RedisStoreTimeout = 500 * time.Millisecond

// RedisStore is a fixed one-second window counter in Redis, shared by
// every API instance. It satisfies echo's middleware.RateLimiterStore.
type RedisStore struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    *zerolog.Logger
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, limit int, log *zerolog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		limit:  limit,
		window: time.Second,
		log:    log,
		now:    time.Now,
	}
}

func (s *RedisStore) key(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%d", identifier, s.now().Unix())
}

// Allow counts one request for identifier. When Redis is unavailable the
// request is allowed.
func (s *RedisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), RedisStoreTimeout)
	defer cancel()

	key := s.key(identifier)

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*s.window)

	if _, err := pipe.Exec(ctx); err != nil {
		s.log.Warn().Err(errors.Wrap(err, "rate limit check")).Str("key", key).Msg("rate limiter unavailable, allowing request")
		return true, nil
	}

	return incr.Val() <= int64(s.limit), nil
}

type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Enabled reports whether a limit is configured and Redis is connected.
func (r *RateLimitMiddleware) Enabled() bool {
	return r.server.Redis != nil && r.server.Config.Server.RateLimit > 0
}

// Limit rejects clients above server.rate_limit requests per second with
// 429. It passes everything through when not Enabled.
func (r *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	if !r.Enabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	store := NewRedisStore(r.server.Redis, r.server.Config.Server.RateLimit, r.server.Logger)
	return r.limitWith(store)
}

func (r *RateLimitMiddleware) limitWith(store middleware.RateLimiterStore) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().Str("client", identifier).Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError()
		},
	})
}

// RecordRateLimitHit sends a RateLimitHit custom event to New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]any{
			"endpoint": endpoint,
		})
	}
}
