package handler

import (
	"Trophy/config"
	"Trophy/middleware"
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"Trophy/service"
	"Trophy/types"
	"strings"

	"github.com/gin-gonic/gin"
)

type CommentsHandler struct {
	Config          *config.Config
	CommentsService service.ICommentsService
}

func (ch *CommentsHandler) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(ch.Config.Jwt.Secret))
	comments := r.Group("/v1/comments")
	comments.POST("/create", authorize, context.Wrap(ch.CreateComment)) // 发表评论
	comments.POST("/list", context.Wrap(ch.GetComments))
}

// CreateComment 发表评论
func (ch *CommentsHandler) CreateComment(c *gin.Context) error {
	var req types.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	uid, err := actingUser(c, req.UserID)
	if err != nil {
		return err
	}
	req.UserID = uid
	if strings.TrimSpace(req.UserNickname) == "" {
		req.UserNickname = context.GetNickname(c)
	}

	resp, err := ch.CommentsService.AddComment(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "评论发表成功", resp)
	return nil
}

// GetComments 图片信息与全部评论
func (ch *CommentsHandler) GetComments(c *gin.Context) error {
	var req types.ImageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	resp, err := ch.CommentsService.GetComments(c.Request.Context(), req.ImageID.Int64())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
