package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bookwyrm/backend/internal/model"
	"github.com/bookwyrm/backend/internal/service"
	"github.com/gin-gonic/gin"
)

const authUserKey = "auth_user"

// Distinguishing messages per rejection cause. Clients rely on these to tell a
// stale token from a garbage one.
const (
	msgTokenMissing = "Authentication failed: Token missing"
	msgTokenExpired = "Authentication failed: Token expired"
	msgTokenInvalid = "Authentication failed: Invalid token"
)

// AuthMiddleware guards protected routes. A request either carries a token
// that verifies against the process-wide secret, or it is rejected here and
// never reaches a resource handler.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: msgTokenMissing})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: msgTokenMissing})
			return
		}

		user, err := authService.ParseAccessToken(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: msgTokenExpired})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: msgTokenInvalid})
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

// GetAuthUser returns the identity the auth middleware resolved for this
// request, or nil on unguarded routes.
func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
