package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"sensor-ops/internal/dto"
	"sensor-ops/internal/pkg/jwt"
	"sensor-ops/pkg/constants"
	"sensor-ops/pkg/responses"
)

// AuthMiddleware validates the bearer access token and stores the
// caller's identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "missing Authorization header")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, constants.HeaderBearerPrefix) {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "malformed Authorization header")
			c.Abort()
			return
		}
		token := strings.TrimPrefix(authHeader, constants.HeaderBearerPrefix)

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			responses.Error(c, err)
			c.Abort()
			return
		}

		if claims.Type != constants.JWTTypeAccess {
			responses.ErrorWithCode(c, responses.CodeUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set("user", &dto.UserInfo{
			Username: claims.Username,
			Role:     claims.Role,
		})
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRoles gates a route group to the given roles.
func RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}
	return func(c *gin.Context) {
		role := c.GetString("role")
		if _, ok := allowed[role]; !ok {
			responses.ErrorWithCode(c, responses.CodeForbidden, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}
