package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/skills-wallet-api/internal/models"
	appErrors "github.com/noah-isme/skills-wallet-api/pkg/errors"
	"github.com/noah-isme/skills-wallet-api/pkg/response"
)

// RequireRoles enforces role-based access control for routes. A role of
// "SELF" allows students through when the :studentId path parameter matches
// their own id.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	allowSelf := false
	allowedRoles := make(map[models.UserRole]struct{}, len(roles))
	for _, r := range roles {
		if r == "SELF" {
			allowSelf = true
			continue
		}
		allowedRoles[r] = struct{}{}
	}

	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextUserKey)
		if !exists {
			response.Error(c, appErrors.ErrUnauthorized)
			c.Abort()
			return
		}
		claims := claimsValue.(*models.JWTClaims)

		if _, ok := allowedRoles[claims.Role]; ok {
			c.Next()
			return
		}

		if allowSelf {
			if targetID := c.Param("studentId"); targetID != "" && targetID == claims.UserID {
				c.Next()
				return
			}
		}

		response.Error(c, appErrors.ErrForbidden)
		c.Abort()
	}
}
