package handler

import (
	"Trophy/middleware"
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"Trophy/service"
	"Trophy/types"

	"github.com/gin-gonic/gin"
)

const msgBadRequest = "请求参数格式不正确"

type Auth struct {
	Limiter     *middleware.Limiter
	UserService service.IUserService
}

func (u *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth", u.Limiter.Auth())
	auth.POST("/register", context.Wrap(u.Register)) // 注册
	auth.POST("/login", context.Wrap(u.Login))       // 登录
}

func (u *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	resp, err := u.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "注册成功", resp)
	return nil
}

func (u *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	resp, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "登录成功", resp)
	return nil
}

// actingUser 以令牌身份为准，请求体里的用户 ID 只能是本人
func actingUser(c *gin.Context, claimed types.ID) (types.ID, error) {
	uid, err := context.GetUserID(c)
	if err != nil {
		return 0, response.Unauthorized("请先登录")
	}
	if claimed != 0 && claimed.Int64() != uid {
		return 0, response.Forbidden("无权以其他用户身份操作")
	}
	return types.ID(uid), nil
}
