package middleware

import (
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// RoleType 定义角色类型
type RoleType string

const (
	RoleReader RoleType = "reader"
	RoleMember RoleType = "member"
	RoleAdmin  RoleType = "admin"
)

// RoleMiddleware 角色权限中间件，必须在 AuthMiddleware 之后使用
func RoleMiddleware(allowedRoles ...RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.Forbidden(c, "No role information found")
			c.Abort()
			return
		}

		userRole := RoleType(role.(string))

		// 检查用户角色是否在允许的角色列表中
		for _, allowedRole := range allowedRoles {
			if userRole == allowedRole {
				c.Next()
				return
			}
		}

		utils.Forbidden(c, "Insufficient permissions for this operation")
		c.Abort()
	}
}

// RequireAdmin 需要管理员权限的中间件
func RequireAdmin() gin.HandlerFunc {
	return RoleMiddleware(RoleAdmin)
}

// RequireMemberOrAdmin 发布新闻需要 member 及以上权限
func RequireMemberOrAdmin() gin.HandlerFunc {
	return RoleMiddleware(RoleMember, RoleAdmin)
}

// RequireAnyRole 任意登录用户
func RequireAnyRole() gin.HandlerFunc {
	return RoleMiddleware(RoleReader, RoleMember, RoleAdmin)
}
