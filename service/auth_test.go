package service

import (
	"Trophy/models"
	"Trophy/pkg/jwt"
	"Trophy/types"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  types.RegisterRequest
		msg  string
	}{
		{"missing", types.RegisterRequest{Email: "a@b.com", Password: "secret123"}, "昵称、邮箱和密码都是必填项"},
		{"short nickname", types.RegisterRequest{Nickname: "猎", Email: "a@b.com", Password: "secret123"}, "昵称长度必须在2-20个字符之间"},
		{"long nickname", types.RegisterRequest{Nickname: strings.Repeat("猎", 21), Email: "a@b.com", Password: "secret123"}, "昵称长度必须在2-20个字符之间"},
		{"bad email", types.RegisterRequest{Nickname: "猎人", Email: "hunter", Password: "secret123"}, "邮箱格式不正确"},
		{"short password", types.RegisterRequest{Nickname: "猎人", Email: "a@b.com", Password: "12345"}, "密码长度必须在6-20个字符之间"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.users.Register(ctx, &tc.req)
			requireCode(t, err, http.StatusBadRequest)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestRegisterConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := f.register(t, "老猎人", "Hunter@Example.com")
	assert.Equal(t, "hunter@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.Equal(t, 1, user.Profile.Level)

	_, err := f.users.Register(ctx, &types.RegisterRequest{Nickname: "新猎人", Email: "hunter@example.com", Password: "secret123"})
	requireCode(t, err, http.StatusConflict)
	assert.Equal(t, "该邮箱已被注册", err.Error())

	_, err = f.users.Register(ctx, &types.RegisterRequest{Nickname: "老猎人", Email: "other@example.com", Password: "secret123"})
	requireCode(t, err, http.StatusConflict)
	assert.Equal(t, "该昵称已被使用", err.Error())
}

func TestLoginIssuesToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "老猎人", "hunter@example.com")

	resp, err := f.users.Login(ctx, &types.LoginRequest{Email: "HUNTER@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(24*time.Hour), resp.ExpiresAt)
	assert.Equal(t, user.ID, resp.User.ID)
	require.NotNil(t, resp.User.LastLoginAt)
	assert.True(t, resp.User.LastLoginAt.Equal(f.now))
	assert.Empty(t, resp.Effects.Failed())

	claims, err := jwt.ParseToken([]byte("test-secret"), jwt.TypeAccess, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Int64(), claims.UserID)
	assert.Equal(t, "老猎人", claims.Nickname)

	remember, err := f.users.Login(ctx, &types.LoginRequest{Email: "hunter@example.com", Password: "secret123", RememberMe: true})
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(30*24*time.Hour), remember.ExpiresAt)
	assert.True(t, remember.RememberMe)
}

func TestLoginFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "老猎人", "hunter@example.com")

	_, err := f.users.Login(ctx, &types.LoginRequest{Email: "hunter@example.com", Password: "wrong-pass"})
	requireCode(t, err, http.StatusUnauthorized)
	assert.Equal(t, "邮箱或密码错误", err.Error())

	_, err = f.users.Login(ctx, &types.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	requireCode(t, err, http.StatusUnauthorized)

	_, err = f.users.Login(ctx, &types.LoginRequest{Email: "hunter@example.com"})
	requireCode(t, err, http.StatusBadRequest)

	require.NoError(t, f.db.Model(&models.Users{}).Where("email = ?", "hunter@example.com").Update("is_active", false).Error)
	_, err = f.users.Login(ctx, &types.LoginRequest{Email: "hunter@example.com", Password: "secret123"})
	requireCode(t, err, http.StatusForbidden)
	assert.Equal(t, "账户已被禁用，请联系管理员", err.Error())
}

func TestSetRole(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "管理员", "admin@example.com")

	require.NoError(t, f.users.SetRole(ctx, "ADMIN@example.com", models.RoleAdmin))
	u, err := f.users.UsersRepo.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	requireCode(t, f.users.SetRole(ctx, "ghost@example.com", models.RoleAdmin), http.StatusNotFound)
	requireCode(t, f.users.SetRole(ctx, "admin@example.com", "root"), http.StatusBadRequest)
}
