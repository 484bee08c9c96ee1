package gorm

import (
	"dare/enterprisehub/internal/constants"
	"time"
)

// User is an account identity. Users are never hard-deleted; IsActive=false deactivates.
type User struct {
	ID           uint               `gorm:"column:id;primaryKey" json:"id"`
	Username     string             `gorm:"column:username;size:100;uniqueIndex;not null" json:"username"`
	PasswordHash string             `gorm:"column:password_hash;not null" json:"-"`
	FullName     string             `gorm:"column:full_name;size:200" json:"fullName"`
	Email        *string            `gorm:"column:email;size:200" json:"email,omitempty"`
	Role         constants.UserRole `gorm:"column:role;size:30;not null;default:user" json:"role"`
	District     *string            `gorm:"column:district;size:50" json:"district,omitempty"`
	IsActive     bool               `gorm:"column:is_active;default:true" json:"isActive"`
	LastLoginAt  *time.Time         `gorm:"column:last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time          `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
