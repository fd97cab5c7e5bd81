package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// 用户角色：reader 注册默认角色，member 可以发布新闻，admin 管理员
const (
	RoleReader = "reader"
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User 对应数据库中的 'users' 表
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null;type:varchar(50)"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;type:varchar(100)"`
	Password     string    `json:"-" gorm:"not null;type:varchar(100)"` // bcrypt 哈希，不输出
	Firstname    string    `json:"firstname" gorm:"type:varchar(50)"`
	Lastname     string    `json:"lastname" gorm:"type:varchar(50)"`
	ProfileImage string    `json:"profile_image" gorm:"type:varchar(1000)"`
	Role         string    `json:"role" gorm:"not null;type:varchar(20);default:'reader'"`
	Status       string    `json:"status" gorm:"not null;type:varchar(20);default:'active'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// SetPassword 用 bcrypt 哈希密码
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hash)
	return nil
}

// CheckPassword 校验密码
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

// IsAdmin 核心代码只消费这一个布尔值
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse 用于向前端返回用户信息，过滤掉密码
type UserResponse struct {
	ID           uint      `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	Lastname     string    `json:"lastname"`
	ProfileImage string    `json:"profile_image"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Firstname:    u.Firstname,
		Lastname:     u.Lastname,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
		Status:       u.Status,
		CreatedAt:    u.CreatedAt,
	}
}

// RegisterRequest 用于注册时的请求体
type RegisterRequest struct {
	Username     string `json:"username" binding:"required,min=3,max=20"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8,max=20"`
	Firstname    string `json:"firstname" binding:"max=50"`
	Lastname     string `json:"lastname" binding:"max=50"`
	ProfileImage string `json:"profile_image"`
}

// LoginRequest 用户名或邮箱都可以登录
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
