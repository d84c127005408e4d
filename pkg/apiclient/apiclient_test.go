package apiclient

import (
	"Trophy/types"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)

func TestSessionValid(t *testing.T) {
	now := base
	s := &Session{Token: "t", ExpiresAt: base.Add(24 * time.Hour), Now: func() time.Time { return now }}
	assert.True(t, s.Valid())

	now = base.Add(24 * time.Hour)
	assert.False(t, s.Valid())

	var missing *Session
	assert.False(t, missing.Valid())
	assert.False(t, (&Session{ExpiresAt: base.Add(time.Hour), Now: func() time.Time { return base }}).Valid())
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := &FileStore{Path: filepath.Join(t.TempDir(), "trophy", "session.json")}

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	in := &Session{
		User:       &types.UserView{ID: 42, Nickname: "老猎人"},
		Token:      "token",
		ExpiresAt:  base.Add(30 * 24 * time.Hour),
		RememberMe: true,
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, types.ID(42), out.User.ID)
	assert.True(t, out.ExpiresAt.Equal(in.ExpiresAt))
	assert.True(t, out.RememberMe)

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"code":    200,
			"message": "登录成功",
			"data": map[string]any{
				"user":       map[string]any{"id": "7", "nickname": "老猎人"},
				"token":      "signed-token",
				"expiresAt":  base.Add(24 * time.Hour),
				"rememberMe": false,
			},
		})
	})
	mux.HandleFunc("/api/v1/images/like", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer signed-token" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{"code": 401, "message": "请先登录"})
			return
		}
		writeJSON(w, map[string]any{
			"code": 200, "message": "点赞成功", "data": map[string]any{"isLiked": true, "likeCount": 3},
		})
	})
	mux.HandleFunc("/api/v1/images/delete", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"code": 403, "message": "权限不足，只有图片上传者或管理员可以删除图片"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLoginStoresSession(t *testing.T) {
	srv := fakeServer(t)
	store := &FileStore{Path: filepath.Join(t.TempDir(), "session.json")}
	now := base
	clock := func() time.Time { return now }

	c, err := New(srv.URL, WithStore(store), WithClock(clock))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.ToggleLike(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	s, err := c.Login(ctx, &types.LoginRequest{Email: "hunter@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, types.ID(7), s.User.ID)
	assert.True(t, s.Valid())

	like, err := c.ToggleLike(ctx, 1)
	require.NoError(t, err)
	assert.True(t, like.IsLiked)
	assert.Equal(t, int64(3), like.LikeCount)

	_, err = c.Delete(ctx, 1, "")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Code)

	// 新客户端从文件恢复会话
	restored, err := New(srv.URL, WithStore(store), WithClock(clock))
	require.NoError(t, err)
	require.NotNil(t, restored.Session())
	assert.Equal(t, "signed-token", restored.Session().Token)

	now = base.Add(25 * time.Hour)
	_, err = restored.ToggleLike(ctx, 1)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	require.NoError(t, restored.Logout())
	assert.Nil(t, restored.Session())
}
