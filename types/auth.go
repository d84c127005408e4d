package types

import (
	"Trophy/models"
	"time"
)

type RegisterRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// UserView 对外的用户信息，不含密码
type UserView struct {
	ID          ID                 `json:"id"`
	Nickname    string             `json:"nickname"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	IsActive    bool               `json:"isActive"`
	Profile     models.UserProfile `json:"profile"`
	LastLoginAt *time.Time         `json:"lastLoginAt"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

func NewUserView(u *models.Users) *UserView {
	return &UserView{
		ID:          ID(u.ID),
		Nickname:    u.Nickname,
		Email:       u.Email,
		Role:        u.Role,
		IsActive:    u.IsActive,
		Profile:     u.Profile,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type RegisterResponse struct {
	User *UserView `json:"user"`
}

type LoginResponse struct {
	User       *UserView `json:"user"`
	Token      string    `json:"token"`
	ExpiresAt  time.Time `json:"expiresAt"`
	RememberMe bool      `json:"rememberMe"`
	Effects    Effects   `json:"-"`
}
