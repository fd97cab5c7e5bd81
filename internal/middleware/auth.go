package middleware

import (
	"strings"

	"github.com/RealCheck/RealCheck-backend/internal/cache"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(authHeader)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		// 已注销的 token 不能再用
		if rc := cache.GetCache(); rc != nil {
			revoked, err := rc.IsTokenRevoked(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
			if err == nil && revoked {
				utils.Unauthorized(c, "Token has been revoked")
				c.Abort()
				return
			}
		}

		// 将用户信息存储到context中
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// OptionalAuthMiddleware 公开接口也要区分管理员视角，
// 带合法 token 时写入身份，否则按匿名继续，不报错
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		claims, err := utils.ParseToken(authHeader)
		if err != nil {
			c.Next()
			return
		}

		if rc := cache.GetCache(); rc != nil {
			revoked, err := rc.IsTokenRevoked(c.Request.Context(), strings.TrimPrefix(authHeader, "Bearer "))
			if err == nil && revoked {
				c.Next()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// IsAdmin 从 context 里取管理员标记，匿名请求一律按非管理员处理
func IsAdmin(c *gin.Context) bool {
	role, exists := c.Get("role")
	if !exists {
		return false
	}
	return role.(string) == "admin"
}
