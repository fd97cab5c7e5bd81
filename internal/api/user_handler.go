package api

import (
	"errors"
	"strings"
	"time"

	"github.com/RealCheck/RealCheck-backend/internal/cache"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/services"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		userService: services.NewUserService(),
	}
}

// user register
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	// 注册成功直接发 token，免得再登录一次
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	utils.Created(c, gin.H{
		"user":  user.ToResponse(),
		"token": token,
	})
}

// user login
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data: "+err.Error())
		return
	}

	user, token, err := h.userService.Login(&req)
	if err != nil {
		utils.Unauthorized(c, err.Error())
		return
	}

	utils.Success(c, gin.H{
		"user":  user.ToResponse(),
		"token": token,
	})
}

// Logout 注销当前 token，进 redis 黑名单直到自然过期
func (h *UserHandler) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := utils.ParseToken(token)
	if err != nil {
		utils.Unauthorized(c, "Invalid token: "+err.Error())
		return
	}

	rc := cache.GetCache()
	if rc == nil {
		// 没配 redis 的话注销是个 no-op
		utils.Success(c, gin.H{"message": "Logged out"})
		return
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := rc.RevokeToken(c.Request.Context(), token, ttl); err != nil {
		utils.InternalServerError(c, "Failed to revoke token")
		return
	}

	utils.Success(c, gin.H{"message": "Logged out"})
}

// CheckUsername 用户名可用性检查
func (h *UserHandler) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.BadRequest(c, "username is required")
		return
	}

	taken, err := h.userService.IsUsernameTaken(username)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"is_taken": taken})
}

// CheckEmail 邮箱可用性检查
func (h *UserHandler) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.BadRequest(c, "email is required")
		return
	}

	taken, err := h.userService.IsEmailTaken(email)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"is_taken": taken})
}

// GetProfile 获取当前用户信息
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.userService.GetUserByID(userID.(uint))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.NotFound(c, err.Error())
		} else {
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, user.ToResponse())
}
