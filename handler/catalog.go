package handler

import (
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"Trophy/service"

	"github.com/gin-gonic/gin"
)

// Catalog 地图与动物目录
type Catalog struct {
	CatalogService service.ICatalogService
}

func (h *Catalog) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/catalog/maps", context.Wrap(h.Maps))
}

func (h *Catalog) Maps(c *gin.Context) error {
	data, err := h.CatalogService.Maps()
	if err != nil {
		return err
	}
	response.Success(c, data)
	return nil
}
