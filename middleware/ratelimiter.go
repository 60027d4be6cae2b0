package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimiter limits requests per client IP across the whole API
func RateLimiter() gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}

// AuthRateLimiter is a tighter limit for login and registration endpoints
func AuthRateLimiter() gin.HandlerFunc {
	store := memory.NewStore()
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  10,
	}

	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
