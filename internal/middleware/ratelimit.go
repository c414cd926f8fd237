package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/modorcea/rentacar-backend/internal/services"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = time.Minute
)

// LoginRateLimit throttles login attempts per client IP using a
// fixed-window Redis counter. It is a no-op when Redis is not
// configured, and fails open on Redis errors.
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if services.RedisClient == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("login:attempts:%s", c.ClientIP())
		count, err := services.CountLoginAttempt(c.Request.Context(), key, loginAttemptWindow)
		if err != nil {
			log.Printf("Rate limit check failed: %v", err)
			c.Next()
			return
		}

		if count > loginAttemptLimit {
			c.JSON(429, gin.H{"error": "Too many login attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
