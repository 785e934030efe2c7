package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rental_admin/internal/api"
)

// Context keys set by AuthRequired for downstream handlers.
const (
	ContextUserID = "userID"
	ContextEmail  = "userEmail"
	ContextRole   = "userRole"
)

// AuthRequired returns a Gin middleware function that validates JWT tokens
// and restricts access to authenticated admins only.
func AuthRequired(validator Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		// 2. Parse and verify JWT signature and expiry
		claims, err := validator.Validate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid token"})
			return
		}

		// 3. Expose identity to downstream handlers
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		// 4. Pass control to the next handler
		c.Next()
	}
}
