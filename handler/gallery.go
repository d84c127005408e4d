package handler

import (
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"Trophy/service"
	"Trophy/types"

	"github.com/gin-gonic/gin"
)

// Gallery 图片列表与瀑布流，均为公开接口
type Gallery struct {
	GalleryService service.IGalleryService
}

func (h *Gallery) RegisterRouter(r gin.IRouter) {
	images := r.Group("/v1/images")
	images.POST("/list", context.Wrap(h.List))
	images.POST("/landscape", context.Wrap(h.Landscape))
	images.POST("/trophy", context.Wrap(h.Trophy))
}

func (h *Gallery) List(c *gin.Context) error {
	var req types.ListImagesRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.GalleryService.List(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Gallery) Landscape(c *gin.Context) error {
	var req types.LandscapeRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.GalleryService.Landscape(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Gallery) Trophy(c *gin.Context) error {
	var req types.TrophyRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		return err
	}
	resp, err := h.GalleryService.Trophy(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// bindOptionalJSON 列表请求允许空 body
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil {
		return response.Validation(msgBadRequest)
	}
	return nil
}
