package middleware

import (
	"Trophy/pkg/context"
	"Trophy/pkg/jwt"
	"Trophy/pkg/log"
	"Trophy/pkg/response"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Auth 校验 Bearer 令牌，写入用户 ID 与昵称
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "请先登录")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			response.Abort(c, http.StatusUnauthorized, "Authorization 格式错误")
			return
		}

		claims, err := jwt.ParseToken(secret, jwt.TypeAccess, parts[1])
		if err != nil {
			log.L.Debug("invalid token", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, "登录已过期，请重新登录")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxNickname, claims.Nickname)

		c.Next()
	}
}
