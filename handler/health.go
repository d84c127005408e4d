package handler

import (
	"Trophy/pkg/context"
	"Trophy/pkg/response"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Health struct {
	Db *gorm.DB
}

func (h *Health) RegisterRouter(r gin.IRouter) {
	r.GET("/healthz", context.Wrap(h.Check))
}

// Check 探测数据库连接
func (h *Health) Check(c *gin.Context) error {
	sqlDB, err := h.Db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		response.Abort(c, http.StatusServiceUnavailable, "database unavailable")
		return nil
	}
	response.Success(c, gin.H{"status": "ok"})
	return nil
}
