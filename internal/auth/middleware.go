package auth

import (
	"errors"
	"net/http"
	"strings"

	"go-closet/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// AuthMiddleware guards a route group with bearer-token authentication.
// Token validity depends only on the signature and expiry window; there
// is no server-side session or revocation list, so a token stays valid
// until it expires. When rdb is non-nil the middleware records presence
// for the authenticated user, but a Redis failure never rejects the
// request.
func AuthMiddleware(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "unauthenticated",
				"message": "Missing or invalid Authorization header",
			}})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ParseJWT(cfg.Server.JWTSecret, tokenStr)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, ErrTokenExpired) {
				msg = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{
				"code":    "unauthenticated",
				"message": msg,
			}})
			return
		}
		if rdb != nil {
			_ = TouchPresence(rdb, claims.UserID, presenceTTL)
		}

		// Attach identity to context for downstream handlers
		c.Set("userId", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}
