package middlewares

import (
	"net/http"
	"strings"

	"go-postgres-optics/models"
	"go-postgres-optics/utils"

	"github.com/gin-gonic/gin"
)

func authWithRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token not found"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		if role != "" && claims["role"] != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			c.Abort()
			return
		}

		c.Set("username", claims["username"])
		c.Set("role", claims["role"])
		c.Next()
	}
}

// AdminAuth guards stock management and reports.
func AdminAuth() gin.HandlerFunc { return authWithRole(models.RoleAdmin) }

// UserAuth accepts any authenticated account.
func UserAuth() gin.HandlerFunc { return authWithRole("") }
