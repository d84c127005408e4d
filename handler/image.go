package handler

import (
	"Trophy/config"
	"Trophy/middleware"
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"Trophy/pkg/snowflake"
	"Trophy/service"
	"Trophy/types"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Image struct {
	Config       *config.Config
	Limiter      *middleware.Limiter
	ImageService service.IImageService
	LikeService  service.ILikeService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	images := r.Group("/v1/images")
	images.POST("/upload", authorize, h.Limiter.Upload(), context.Wrap(h.Upload)) // 上传
	images.POST("/detail", context.Wrap(h.Detail))
	images.POST("/delete", authorize, context.Wrap(h.Delete))
	images.POST("/like", authorize, context.Wrap(h.ToggleLike)) // 点赞/取消
	images.GET("/:id/full", context.Wrap(h.Full))
	images.GET("/:id/thumbnail", context.Wrap(h.Thumbnail))
}

func (h *Image) Upload(c *gin.Context) error {
	var req types.UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	uid, err := actingUser(c, req.UploaderID)
	if err != nil {
		return err
	}
	req.UploaderID = uid
	if strings.TrimSpace(req.UploaderNickname) == "" {
		req.UploaderNickname = context.GetNickname(c)
	}

	resp, err := h.ImageService.Upload(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "图片上传成功", resp)
	return nil
}

func (h *Image) Detail(c *gin.Context) error {
	var req types.ImageIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	resp, err := h.ImageService.Detail(c.Request.Context(), req.ImageID.Int64())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Image) Delete(c *gin.Context) error {
	var req types.DeleteImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	uid, err := actingUser(c, req.UserID)
	if err != nil {
		return err
	}
	req.UserID = uid

	resp, err := h.ImageService.Delete(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.SuccessMsg(c, "图片删除成功", resp)
	return nil
}

func (h *Image) ToggleLike(c *gin.Context) error {
	var req types.ToggleLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.Validation(msgBadRequest)
	}
	uid, err := actingUser(c, req.UserID)
	if err != nil {
		return err
	}

	resp, err := h.LikeService.Toggle(c.Request.Context(), req.ImageID.Int64(), uid.Int64())
	if err != nil {
		return err
	}
	response.SuccessMsg(c, resp.Message, resp)
	return nil
}

func (h *Image) Full(c *gin.Context) error {
	return h.serveFile(c, false)
}

func (h *Image) Thumbnail(c *gin.Context) error {
	return h.serveFile(c, true)
}

func (h *Image) serveFile(c *gin.Context, thumbnail bool) error {
	id, ok := snowflake.ParseID(c.Param("id"))
	if !ok {
		return response.Validation("图片ID格式不正确")
	}
	file, err := h.ImageService.File(c.Request.Context(), id, thumbnail)
	if err != nil {
		return err
	}
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, file.ContentType, file.Data)
	return nil
}
