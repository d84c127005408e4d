package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Users 用户表
type Users struct {
	ID          int64       `gorm:"column:id;primaryKey" json:"id,string"`
	Nickname    string      `gorm:"column:nickname;type:varchar(64);not null;uniqueIndex:uk_nickname" json:"nickname"`
	Email       string      `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uk_email" json:"email"` // 统一小写
	Password    string      `gorm:"column:password;type:varchar(255);not null" json:"-"`                        // bcrypt 摘要
	Role        string      `gorm:"column:role;type:varchar(16);not null;default:user" json:"role"`
	IsActive    bool        `gorm:"column:is_active;not null;default:true" json:"isActive"`
	LastLoginAt *time.Time  `gorm:"column:last_login_at" json:"lastLoginAt"`
	Profile     UserProfile `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

// UserProfile 用户资料，计数类字段为冗余统计
type UserProfile struct {
	Avatar      string `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	Bio         string `gorm:"column:bio;type:varchar(255);not null;default:''" json:"bio"`
	Level       int    `gorm:"column:level;not null;default:1" json:"level"`
	Experience  int64  `gorm:"column:experience;not null;default:0" json:"experience"`
	UploadCount int64  `gorm:"column:upload_count;not null;default:0" json:"uploadCount"`
}

func (Users) TableName() string {
	return "users"
}

// IsAdmin 是否管理员
func (u *Users) IsAdmin() bool {
	return u.Role == RoleAdmin
}
