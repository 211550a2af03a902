package http

import (
	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// LoginRateLimiter throttles credential-guessing attempts per client IP.
// Fails open when Redis is unavailable so an outage never locks out logins.
type LoginRateLimiter struct {
	limiter   *redis_rate.Limiter
	perMinute int
	logger    *zap.Logger
}

// NewLoginRateLimiter builds the limiter; a nil client disables limiting.
func NewLoginRateLimiter(client *redis.Client, perMinute int, logger *zap.Logger) *LoginRateLimiter {
	if client == nil || perMinute <= 0 {
		return nil
	}
	return &LoginRateLimiter{
		limiter:   redis_rate.NewLimiter(client),
		perMinute: perMinute,
		logger:    logger,
	}
}

// Handle enforces the per-IP limit.
func (rl *LoginRateLimiter) Handle(c *fiber.Ctx) error {
	if rl == nil {
		return c.Next()
	}

	key := "ratelimit:login:" + c.IP()
	res, err := rl.limiter.Allow(c.UserContext(), key, redis_rate.PerMinute(rl.perMinute))
	if err != nil {
		rl.logger.Warn("rate limiter unavailable, failing open", zap.Error(err))
		return c.Next()
	}
	if res.Allowed == 0 {
		return apperrors.NewDomainError("RATE_LIMITED", "too many login attempts, try again later", fiber.StatusTooManyRequests, nil)
	}
	return c.Next()
}
