package service

import (
	"Trophy/pkg/events"
	"Trophy/pkg/log"
	"Trophy/types"
	"time"

	"go.uber.org/zap"
)

// 次要操作名称
const (
	EffectUploadCount   = "user.upload_count"
	EffectExperience    = "user.experience"
	EffectLastLogin     = "user.last_login"
	EffectViewCount     = "image.view_count"
	EffectArchive       = "image.archive"
	EffectLikesCleanup  = "image_likes.cleanup"
	EffectPublishPrefix = "event."
)

const (
	uploadExperience = 10
	likeExperience   = 5
)

// Clock 当前时间，测试中可替换
type Clock func() time.Time

func SystemClock() Clock {
	return time.Now
}

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now().UTC().Truncate(time.Millisecond)
	}
	return c().UTC().Truncate(time.Millisecond)
}

// runEffect 执行次要写操作并记录结果，失败只记日志
func runEffect(effects *types.Effects, name string, fn func() error) {
	err := fn()
	*effects = append(*effects, types.EffectOutcome{Name: name, Err: err})
	if err != nil {
		log.L.Warn("secondary effect failed", zap.String("effect", name), zap.Error(err))
	}
}

// publish 未配置事件总线时跳过
func publish[T any](effects *types.Effects, bus *events.Bus, topic string, payload T) {
	if bus == nil {
		return
	}
	runEffect(effects, EffectPublishPrefix+topic, func() error {
		return events.Publish(bus, topic, payload)
	})
}
