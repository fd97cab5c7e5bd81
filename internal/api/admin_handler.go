package api

import (
	"errors"
	"strconv"

	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/services"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台：用户管理和系统统计
type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{
		adminService: services.NewAdminService(),
	}
}

// GetUsers 获取所有用户，支持分页
func (h *AdminHandler) GetUsers(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > 100 {
		size = 10
	}

	users, total, err := h.adminService.GetAllUsers(page, size)
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	userResponses := make([]models.UserResponse, 0, len(users))
	for _, user := range users {
		userResponses = append(userResponses, user.ToResponse())
	}

	utils.SuccessWithPagination(c, userResponses, total, page, size)
}

// PromoteUser reader 升级为 member
func (h *AdminHandler) PromoteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.adminService.PromoteUser(uint(id))
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

// DemoteUser member 降级为 reader，admin 不允许降级
func (h *AdminHandler) DemoteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.adminService.DemoteUser(uint(id))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFound(c, err.Error())
		case errors.Is(err, services.ErrCannotDemoteAdmin):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalServerError(c, err.Error())
		}
		return
	}

	utils.Success(c, user.ToResponse())
}

// GetStats 系统概览数字
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.GetSystemStats()
	if err != nil {
		utils.InternalServerError(c, err.Error())
		return
	}

	utils.Success(c, stats)
}
