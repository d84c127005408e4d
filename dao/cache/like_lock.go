package cache

import (
	"Trophy/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const likeLockTTL = time.Second

// LikeLock 同一用户对同一图片的点赞操作串行化
type LikeLock struct {
	redis *redis.Client
}

func NewLikeLock(rds *redis.Client) *LikeLock {
	return &LikeLock{redis: rds}
}

func (l *LikeLock) key(imageID, userID int64) string {
	return fmt.Sprintf("lock:image:like:%d:%d", userID, imageID)
}

// Acquire 返回 false 表示已有进行中的操作
// redis 未启用或不可用时放行，点赞记录的主键仍保证幂等
func (l *LikeLock) Acquire(ctx context.Context, imageID, userID int64) (bool, func()) {
	if l == nil || l.redis == nil {
		return true, func() {}
	}
	key := l.key(imageID, userID)
	ok, err := l.redis.SetNX(ctx, key, 1, likeLockTTL).Result()
	if err != nil {
		log.L.Warn("like lock unavailable", zap.String("key", key), zap.Error(err))
		return true, func() {}
	}
	if !ok {
		return false, func() {}
	}
	return true, func() {
		l.redis.Del(context.WithoutCancel(ctx), key)
	}
}
