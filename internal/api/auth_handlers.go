package api

import (
	"errors"
	"net/http"
	"strings"

	"go-closet/internal/auth"
	"go-closet/internal/config"
	"go-closet/internal/db"
	"go-closet/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type SigninRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  gin.H  `json:"user"`
	Token string `json:"token"`
}

func userView(u *user.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"role":     u.Role,
	}
}

// POST /api/auth/signup
func SignupHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Invalid request body"))
			return
		}
		if req.Username == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Username and password required"))
			return
		}
		role := user.RoleUser
		if req.Role != "" {
			if !user.ValidRole(req.Role) {
				c.JSON(http.StatusBadRequest, errorResponse("validation_error", "Unknown role"))
				return
			}
			role = user.Role(req.Role)
		}
		pwHash, err := user.HashPassword(req.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Password hash failed"))
			return
		}
		u := user.User{
			Username:     req.Username,
			PasswordHash: pwHash,
			Role:         role,
		}
		if err := db.DB.Create(&u).Error; err != nil {
			// Unique-constraint races between concurrent signups land here too.
			if isDuplicateErr(err) {
				c.JSON(http.StatusConflict, errorResponse("duplicate_username", "Username already exists"))
				return
			}
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "DB error"))
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Username, string(u.Role), cfg.TokenTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Failed to generate token"))
			return
		}
		c.JSON(http.StatusCreated, AuthResponse{User: userView(&u), Token: token})
	}
}

// POST /api/auth/signin
//
// Credentials arrive either as a basic-auth header or a JSON body; both
// are normalized into one pair before the single verification path.
func SigninHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			var req SigninRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusUnauthorized, errorResponse("invalid_credentials", "Invalid username or password"))
				return
			}
			username, password = req.Username, req.Password
		}

		var u user.User
		if err := db.DB.Where("username = ?", username).First(&u).Error; err != nil {
			// Same response as a wrong password; never reveal which failed.
			c.JSON(http.StatusUnauthorized, errorResponse("invalid_credentials", "Invalid username or password"))
			return
		}
		if err := user.CheckPassword(u.PasswordHash, password); err != nil {
			c.JSON(http.StatusUnauthorized, errorResponse("invalid_credentials", "Invalid username or password"))
			return
		}
		token, err := auth.GenerateJWT(cfg.Server.JWTSecret, u.ID, u.Username, string(u.Role), cfg.TokenTTL())
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Failed to generate token"))
			return
		}
		c.JSON(http.StatusOK, AuthResponse{User: userView(&u), Token: token})
	}
}

// GET /api/auth/me
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var u user.User
		if err := db.DB.First(&u, userId.(uint)).Error; err != nil {
			c.JSON(http.StatusNotFound, errorResponse("not_found", "User not found"))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":        u.ID,
			"username":  u.Username,
			"role":      u.Role,
			"createdAt": u.CreatedAt,
		})
	}
}

// GET /api/users/online
func OnlineUserCountHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.JSON(http.StatusServiceUnavailable, errorResponse("server_error", "Presence tracking unavailable"))
			return
		}
		count, err := auth.OnlineUserCount(rdb)
		if err != nil {
			c.JSON(http.StatusInternalServerError, errorResponse("server_error", "Failed to count online users"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"online": count})
	}
}

func isDuplicateErr(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(strings.ToLower(err.Error()), "unique")
}
