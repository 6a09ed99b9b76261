package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yasirmarwat09/wp-assign/internal/middleware"
)

// Protected returns the decoded claims of the authenticated user. The
// bearer token is verified by the RequireAuth middleware before this
// handler runs.
func (h *AuthHandler) Protected(c *gin.Context) {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Protected Route",
		"user": gin.H{
			"id":       claims.ID,
			"name":     claims.Name,
			"email":    claims.Email,
			"username": claims.Username,
		},
	})
}
