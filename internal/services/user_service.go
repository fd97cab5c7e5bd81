package services

import (
	"errors"
	"fmt"

	"github.com/RealCheck/RealCheck-backend/internal/database"
	"github.com/RealCheck/RealCheck-backend/internal/models"
	"github.com/RealCheck/RealCheck-backend/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type UserService struct {
	db *gorm.DB
}

// create user service instance
func NewUserService() *UserService {
	return &UserService{
		db: database.GetDB(),
	}
}

// user register，注册默认是 reader 角色
func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	// check if username already exists
	var existingUser models.User
	if err := s.db.Where("username = ?", req.Username).First(&existingUser).Error; err == nil {
		return nil, errors.New("username already exists")
	}

	// check if email already exists
	if err := s.db.Where("email = ?", req.Email).First(&existingUser).Error; err == nil {
		return nil, errors.New("email already exists")
	}

	// validate input
	if !utils.IsValidUsername(req.Username) {
		return nil, errors.New("invalid username format")
	}

	if !utils.IsValidEmail(req.Email) {
		return nil, errors.New("invalid email format")
	}

	if !utils.IsValidPassword(req.Password) {
		return nil, errors.New("password must contain at least one letter and one number")
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		Firstname:    req.Firstname,
		Lastname:     req.Lastname,
		ProfileImage: req.ProfileImage,
		Role:         models.RoleReader,
		Status:       "active",
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// user login，identifier 可以是用户名或邮箱
func (s *UserService) Login(req *models.LoginRequest) (*models.User, string, error) {
	if s.db == nil {
		return nil, "", errors.New("database connection not initialized")
	}

	var user models.User
	if err := s.db.Where("username = ? OR email = ?", req.Identifier, req.Identifier).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to get user: %w", err)
	}

	// check user status
	if user.Status != "active" {
		return nil, "", errors.New("user account is not active")
	}

	// check password
	if !user.CheckPassword(req.Password) {
		return nil, "", ErrInvalidCredentials
	}

	// generate jwt token
	token, err := utils.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// get user by id
func (s *UserService) GetUserByID(id uint) (*models.User, error) {
	if s.db == nil {
		return nil, errors.New("database connection not initialized")
	}

	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// IsUsernameTaken 注册前的用户名可用性检查
func (s *UserService) IsUsernameTaken(username string) (bool, error) {
	if s.db == nil {
		return false, errors.New("database connection not initialized")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsEmailTaken 注册前的邮箱可用性检查
func (s *UserService) IsEmailTaken(email string) (bool, error) {
	if s.db == nil {
		return false, errors.New("database connection not initialized")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
