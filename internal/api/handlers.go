package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorResponse builds the error envelope used by every failing
// endpoint: a stable machine-readable code plus a human message.
func errorResponse(code, message string) gin.H {
	return gin.H{"error": gin.H{"code": code, "message": message}}
}

// GET /health
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
