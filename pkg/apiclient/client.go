package apiclient

import (
	"Trophy/types"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
)

var ErrNotLoggedIn = errors.New("apiclient: not logged in or session expired")

// APIError 服务端返回的业务错误
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("apiclient: %d %s", e.Code, e.Message)
}

type envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

type Client struct {
	http    *resty.Client
	store   Store
	now     func() time.Time
	session *Session
}

type Option func(*Client)

// WithStore 登录后持久化会话，创建时尝试恢复
func WithStore(s Store) Option {
	return func(c *Client) { c.store = s }
}

// WithClock 替换时钟，用于判断会话是否过期
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			SetJSONMarshaler(sonic.Marshal).
			SetJSONUnmarshaler(sonic.Unmarshal),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.store != nil {
		s, err := c.store.Load()
		if err != nil {
			return nil, fmt.Errorf("load session: %w", err)
		}
		if s != nil {
			s.Now = c.now
			c.session = s
		}
	}
	return c, nil
}

// Session 当前会话，未登录时为 nil
func (c *Client) Session() *Session {
	return c.session
}

func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.UserView, error) {
	resp, err := post[struct {
		User *types.UserView `json:"user"`
	}](ctx, c, "/api/v1/auth/register", req, false)
	if err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Login 登录成功后保存会话
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*Session, error) {
	resp, err := post[types.LoginResponse](ctx, c, "/api/v1/auth/login", req, false)
	if err != nil {
		return nil, err
	}
	s := &Session{
		User:       resp.User,
		Token:      resp.Token,
		ExpiresAt:  resp.ExpiresAt,
		RememberMe: resp.RememberMe,
		Now:        c.now,
	}
	c.session = s
	if c.store != nil {
		if err := c.store.Save(s); err != nil {
			return s, fmt.Errorf("save session: %w", err)
		}
	}
	return s, nil
}

func (c *Client) Logout() error {
	c.session = nil
	if c.store != nil {
		return c.store.Clear()
	}
	return nil
}

func (c *Client) Upload(ctx context.Context, req *types.UploadImageRequest) (*types.ImageSummary, error) {
	resp, err := post[struct {
		Image types.ImageSummary `json:"image"`
	}](ctx, c, "/api/v1/images/upload", req, true)
	if err != nil {
		return nil, err
	}
	return &resp.Image, nil
}

func (c *Client) List(ctx context.Context, req *types.ListImagesRequest) (*types.ListImagesResponse, error) {
	return post[types.ListImagesResponse](ctx, c, "/api/v1/images/list", req, false)
}

func (c *Client) Landscape(ctx context.Context, req *types.LandscapeRequest) (*types.GalleryResponse, error) {
	return post[types.GalleryResponse](ctx, c, "/api/v1/images/landscape", req, false)
}

func (c *Client) Trophy(ctx context.Context, req *types.TrophyRequest) (*types.GalleryResponse, error) {
	return post[types.GalleryResponse](ctx, c, "/api/v1/images/trophy", req, false)
}

func (c *Client) Detail(ctx context.Context, imageID types.ID) (*types.ImageDetailResponse, error) {
	return post[types.ImageDetailResponse](ctx, c, "/api/v1/images/detail", &types.ImageIDRequest{ImageID: imageID}, false)
}

func (c *Client) ToggleLike(ctx context.Context, imageID types.ID) (*types.ToggleLikeResponse, error) {
	return post[types.ToggleLikeResponse](ctx, c, "/api/v1/images/like", &types.ToggleLikeRequest{ImageID: imageID}, true)
}

func (c *Client) Delete(ctx context.Context, imageID types.ID, reason string) (*types.DeleteImageResponse, error) {
	return post[types.DeleteImageResponse](ctx, c, "/api/v1/images/delete", &types.DeleteImageRequest{ImageID: imageID, Reason: reason}, true)
}

func (c *Client) AddComment(ctx context.Context, imageID types.ID, content string) (*types.AddCommentResponse, error) {
	return post[types.AddCommentResponse](ctx, c, "/api/v1/comments/create", &types.AddCommentRequest{ImageID: imageID, Content: content}, true)
}

func (c *Client) Comments(ctx context.Context, imageID types.ID) (*types.ImageCommentsResponse, error) {
	return post[types.ImageCommentsResponse](ctx, c, "/api/v1/comments/list", &types.ImageIDRequest{ImageID: imageID}, false)
}

func post[T any](ctx context.Context, c *Client, path string, body any, auth bool) (*T, error) {
	var env envelope[T]
	req := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&env).
		SetError(&env)
	if auth {
		if !c.session.Valid() {
			return nil, ErrNotLoggedIn
		}
		req.SetAuthToken(c.session.Token)
	}

	resp, err := req.Post(path)
	if err != nil {
		return nil, err
	}
	if env.Code == 0 {
		return nil, &APIError{Code: resp.StatusCode(), Message: resp.Status()}
	}
	if env.Code != http.StatusOK {
		return nil, &APIError{Code: env.Code, Message: env.Message}
	}
	if env.Data == nil {
		return new(T), nil
	}
	return env.Data, nil
}
