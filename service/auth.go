package service

import (
	"Trophy/config"
	"Trophy/dao"
	"Trophy/models"
	"Trophy/pkg/encrypt"
	"Trophy/pkg/events"
	"Trophy/pkg/jwt"
	"Trophy/pkg/response"
	"Trophy/pkg/rule"
	"Trophy/pkg/snowflake"
	"Trophy/types"
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	SetRole(ctx context.Context, email string, role string) error
}

type UserService struct {
	Jwt       *config.Jwt
	UsersRepo *dao.Users
	Bus       *events.Bus
	Clock     Clock
}

// Register 注册用户
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.RegisterResponse, error) {
	nickname := strings.TrimSpace(req.Nickname)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if nickname == "" || email == "" || req.Password == "" {
		return nil, response.Validation("昵称、邮箱和密码都是必填项")
	}
	if rule.ValidateVar(nickname, "runes=2-20") != nil {
		return nil, response.Validation("昵称长度必须在2-20个字符之间")
	}
	if !rule.IsEmail(email) {
		return nil, response.Validation("邮箱格式不正确")
	}
	if !rule.RuneLen(req.Password, 6, 20) {
		return nil, response.Validation("密码长度必须在6-20个字符之间")
	}

	exist, err := s.UsersRepo.IsEmailExist(ctx, email)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.Conflict("该邮箱已被注册")
	}
	exist, err = s.UsersRepo.IsNicknameExist(ctx, nickname)
	if err != nil {
		return nil, err
	}
	if exist {
		return nil, response.Conflict("该昵称已被使用")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := s.Clock.now()
	user := &models.Users{
		ID:       snowflake.GenID(),
		Nickname: nickname,
		Email:    email,
		Password: hash,
		Role:     models.RoleUser,
		IsActive: true,
		Profile: models.UserProfile{
			Level: 1,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UsersRepo.Create(ctx, user); err != nil {
		// 并发注册撞唯一索引
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("该邮箱或昵称已被使用")
		}
		return nil, err
	}

	return &types.RegisterResponse{User: types.NewUserView(user)}, nil
}

// Login 登录并签发令牌
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, response.Validation("邮箱和密码都是必填项")
	}
	if !rule.IsEmail(email) {
		return nil, response.Validation("邮箱格式不正确")
	}

	user, err := s.UsersRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.Unauthorized("邮箱或密码错误")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, response.Forbidden("账户已被禁用，请联系管理员")
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.Unauthorized("邮箱或密码错误")
	}

	now := s.Clock.now()
	token, expiresAt, err := jwt.GenerateToken(
		[]byte(s.Jwt.Secret),
		s.Jwt.Issuer,
		jwt.Subject{UserID: user.ID, Email: user.Email, Nickname: user.Nickname},
		jwt.TypeAccess,
		now,
		s.Jwt.TTL(req.RememberMe),
	)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	resp := &types.LoginResponse{
		Token:      token,
		ExpiresAt:  expiresAt,
		RememberMe: req.RememberMe,
	}
	runEffect(&resp.Effects, EffectLastLogin, func() error {
		if err := s.UsersRepo.TouchLogin(ctx, user.ID, now); err != nil {
			return err
		}
		user.LastLoginAt = &now
		return nil
	})
	publish(&resp.Effects, s.Bus, events.TopicUserLoggedIn, events.UserEvent{UserID: user.ID})
	resp.User = types.NewUserView(user)
	return resp, nil
}

// SetRole 调整用户角色
func (s *UserService) SetRole(ctx context.Context, email string, role string) error {
	if role != models.RoleAdmin && role != models.RoleUser {
		return response.Validation("未知角色")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	exist, err := s.UsersRepo.IsEmailExist(ctx, email)
	if err != nil {
		return err
	}
	if !exist {
		return response.NotFound("用户不存在")
	}
	_, err = s.UsersRepo.SetRole(ctx, email, role)
	return err
}
