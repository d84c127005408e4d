package middleware

import (
	"Trophy/config"
	"Trophy/pkg/log"
	"Trophy/pkg/response"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
	"go.uber.org/zap"
)

const limiterPrefix = "trophy:limiter"

// Limiter 按 IP 限流，启用 redis 时多实例共享计数
type Limiter struct {
	store  limiter.Store
	auth   limiter.Rate
	upload limiter.Rate
}

// NewLimiter 限流格式如 "20-M"，即每分钟 20 次
func NewLimiter(conf *config.Config, rds *redis.Client) *Limiter {
	auth, err := limiter.NewRateFromFormatted(conf.RateLimit.Auth)
	if err != nil {
		log.L.Fatal("invalid auth rate limit", zap.String("limit", conf.RateLimit.Auth), zap.Error(err))
	}
	upload, err := limiter.NewRateFromFormatted(conf.RateLimit.Upload)
	if err != nil {
		log.L.Fatal("invalid upload rate limit", zap.String("limit", conf.RateLimit.Upload), zap.Error(err))
	}

	return &Limiter{
		store:  newLimiterStore(rds),
		auth:   auth,
		upload: upload,
	}
}

func newLimiterStore(rds *redis.Client) limiter.Store {
	if rds != nil {
		store, err := sredis.NewStoreWithOptions(rds, limiter.StoreOptions{
			Prefix:   limiterPrefix,
			MaxRetry: 3,
		})
		if err == nil {
			return store
		}
		log.L.Warn("redis limiter store unavailable, fallback to memory", zap.Error(err))
	}
	return memory.NewStoreWithOptions(limiter.StoreOptions{
		Prefix:          limiterPrefix,
		CleanUpInterval: time.Minute,
	})
}

// Auth 登录注册
func (l *Limiter) Auth() gin.HandlerFunc {
	return l.handler("auth", l.auth)
}

// Upload 图片上传
func (l *Limiter) Upload() gin.HandlerFunc {
	return l.handler("upload", l.upload)
}

func (l *Limiter) handler(name string, rate limiter.Rate) gin.HandlerFunc {
	inst := limiter.New(l.store, rate)
	return func(c *gin.Context) {
		key := name + ":" + c.ClientIP()
		ctx, err := inst.Get(c.Request.Context(), key)
		if err != nil {
			// 限流存储故障时放行
			log.L.Warn("rate limiter error", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", cast.ToString(ctx.Limit))
		c.Header("X-RateLimit-Remaining", cast.ToString(ctx.Remaining))
		c.Header("X-RateLimit-Reset", cast.ToString(ctx.Reset))
		if ctx.Reached {
			response.Abort(c, http.StatusTooManyRequests, "操作太频繁，请稍后再试")
			return
		}
		c.Next()
	}
}
