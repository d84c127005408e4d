// Package apiclient Trophy 接口的 Go 客户端，登录状态保存在显式传入的 Session 中
package apiclient

import (
	"Trophy/types"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/bytedance/sonic"
)

// Session 客户端登录状态
type Session struct {
	User       *types.UserView `json:"user"`
	Token      string          `json:"token"`
	ExpiresAt  time.Time       `json:"expiresAt"`
	RememberMe bool            `json:"rememberMe"`

	// Now 当前时间，默认 time.Now
	Now func() time.Time `json:"-"`
}

func (s *Session) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Valid 令牌存在且未过期
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.now().Before(s.ExpiresAt)
}

// Store 会话持久化
type Store interface {
	Load() (*Session, error)
	Save(s *Session) error
	Clear() error
}

// FileStore 以 JSON 文件保存会话
type FileStore struct {
	Path string
}

var _ Store = (*FileStore)(nil)

// Load 文件不存在时返回 nil
func (f *FileStore) Load() (*Session, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := sonic.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *FileStore) Save(s *Session) error {
	data, err := sonic.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o600)
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
