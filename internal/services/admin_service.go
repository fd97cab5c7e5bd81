package services

import (
	"errors"
	"fmt"

	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"gorm.io/gorm"
)

var ErrCannotDemoteAdmin = errors.New("cannot demote an admin user")

// AdminService 管理员侧的用户管理和系统统计
type AdminService struct {
	db *gorm.DB
}

func NewAdminService() *AdminService {
	return &AdminService{
		db: database.GetDB(),
	}
}

// GetAllUsers 获取所有用户，支持分页
func (s *AdminService) GetAllUsers(page, pageSize int) ([]models.User, int64, error) {
	if s.db == nil {
		return nil, 0, errors.New("database connection not initialized")
	}

	var users []models.User
	var total int64

	if err := s.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	offset := (page - 1) * pageSize
	if offset < 0 {
		offset = 0
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	if err := s.db.Order("created_at asc").Offset(offset).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}

	return users, total, nil
}

// PromoteUser reader 升级为 member。已经是 member/admin 的不动
func (s *AdminService) PromoteUser(userID uint) (*models.User, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleReader {
		if err := s.db.Model(&user).Update("role", models.RoleMember).Error; err != nil {
			return nil, fmt.Errorf("failed to promote user: %w", err)
		}
		user.Role = models.RoleMember
	}

	return &user, nil
}

// DemoteUser member 降级为 reader。admin 不允许降级
func (s *AdminService) DemoteUser(userID uint) (*models.User, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.Role == models.RoleAdmin {
		return nil, ErrCannotDemoteAdmin
	}

	if user.Role == models.RoleMember {
		if err := s.db.Model(&user).Update("role", models.RoleReader).Error; err != nil {
			return nil, fmt.Errorf("failed to demote user: %w", err)
		}
		user.Role = models.RoleReader
	}

	return &user, nil
}

// SystemStats 系统概览数字
type SystemStats struct {
	TotalNews     int64 `json:"total_news"`
	RemovedNews   int64 `json:"removed_news"`
	TotalComments int64 `json:"total_comments"`
	TotalUsers    int64 `json:"total_users"`
}

// GetSystemStats 管理后台的统计面板数据
func (s *AdminService) GetSystemStats() (*SystemStats, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var stats SystemStats

	if err := s.db.Model(&models.News{}).Count(&stats.TotalNews).Error; err != nil {
		return nil, fmt.Errorf("failed to count news: %w", err)
	}
	if err := s.db.Model(&models.News{}).Where("removed = ?", true).Count(&stats.RemovedNews).Error; err != nil {
		return nil, fmt.Errorf("failed to count removed news: %w", err)
	}
	if err := s.db.Model(&models.Comment{}).Count(&stats.TotalComments).Error; err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}
	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	return &stats, nil
}
