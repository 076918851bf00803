package api

import (
	"go-closet/internal/auth"
	"go-closet/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RequestIDMiddleware tags every request with an X-Request-ID,
// generating one when the client did not send any.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Set("requestId", id)
		c.Next()
	}
}

func SetupRouter(cfg *config.Config, rdb *redis.Client) *gin.Engine {
	r := gin.Default()
	r.Use(RequestIDMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler)

		// Auth
		api.POST("/auth/signup", SignupHandler(cfg))
		api.POST("/auth/signin", SigninHandler(cfg))
		api.GET("/auth/me", auth.AuthMiddleware(cfg, rdb), MeHandler())

		// --- Online users count ---
		api.GET("/users/online", OnlineUserCountHandler(rdb))

		// Clothes: v1 public, v2 behind the bearer gate
		v1 := api.Group("/v1")
		registerClothesRoutes(v1)

		v2 := api.Group("/v2", auth.AuthMiddleware(cfg, rdb))
		registerClothesRoutes(v2)
	}
	return r
}

func registerClothesRoutes(g *gin.RouterGroup) {
	g.POST("/clothes", CreateClothingHandler())
	g.GET("/clothes", ListClothesHandler())
	g.GET("/clothes/:id", GetClothingHandler())
	g.PUT("/clothes/:id", UpdateClothingHandler())
	g.DELETE("/clothes/:id", DeleteClothingHandler())
}
