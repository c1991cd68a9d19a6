package models

import (
	"strings"
	"time"
)

// 用户状态: 1 = 启用, 0 = 停用
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// 用户角色
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"

	RoleIDAdmin    = 2
	RoleIDCustomer = 1
)

// User represents registered shop accounts (customers and admins)
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"type:varchar(50);unique;not null" json:"username"`
	// 密码按原样存储并逐字节比较，保持与旧系统完全兼容的登录语义
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	FullName string `gorm:"type:varchar(100)" json:"full_name"`
	Email    string `gorm:"type:varchar(100);unique" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Address  string `gorm:"type:varchar(255)" json:"address"`
	Status   int    `gorm:"default:1" json:"status"`
	Role     string `gorm:"type:varchar(20)" json:"role"`
	RoleID   uint   `json:"role_id"`

	// 密码找回：两个字段要么同时有值要么同时为空
	ResetToken       *string `gorm:"type:varchar(6);index" json:"-"`
	ResetTokenExpiry *int64  `json:"-"` // 毫秒时间戳

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RoleIDForRole 根据角色名派生角色ID（大小写不敏感）
func RoleIDForRole(role string) uint {
	if strings.EqualFold(role, RoleAdmin) {
		return RoleIDAdmin
	}
	return RoleIDCustomer
}
