// Package events 进程内领域事件，watermill gochannel 承载，sonic 编码信封
package events

import (
	"Trophy/pkg/log"
	"context"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/bytedance/sonic"
	"go.uber.org/zap"
)

const (
	TopicImageUploaded = "trophy.image.uploaded"
	TopicImageDeleted  = "trophy.image.deleted"
	TopicImageLiked    = "trophy.image.liked"
	TopicCommentAdded  = "trophy.comment.created"
	TopicUserLoggedIn  = "trophy.user.logged_in"

	PayloadVersionV1 = "v1"
)

// Header 事件头
type Header struct {
	Topic      string    `json:"topic"`
	OccurredAt time.Time `json:"occurred_at"`
	Version    string    `json:"version"`
}

// Envelope 事件信封
type Envelope[T any] struct {
	Header  Header `json:"header"`
	Payload T      `json:"payload"`
}

type ImageEvent struct {
	ImageID    int64  `json:"image_id,string"`
	UserID     int64  `json:"user_id,string"`
	AreaName   string `json:"area_name,omitempty"`
	AnimalName string `json:"animal_name,omitempty"`
	Liked      bool   `json:"liked,omitempty"`
}

type CommentEvent struct {
	CommentID int64 `json:"comment_id,string"`
	ImageID   int64 `json:"image_id,string"`
	UserID    int64 `json:"user_id,string"`
}

type UserEvent struct {
	UserID int64 `json:"user_id,string"`
}

func Encode[T any](env Envelope[T]) ([]byte, error) { return sonic.Marshal(env) }

func Decode[T any](b []byte) (Envelope[T], error) {
	var env Envelope[T]
	err := sonic.Unmarshal(b, &env)
	return env, err
}

// Bus 发布订阅
type Bus struct {
	pubSub *gochannel.GoChannel
}

func NewBus() *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{OutputChannelBuffer: 256}, zapAdapter{l: log.L}),
	}
}

// Publish 发布事件
func Publish[T any](b *Bus, topic string, payload T) error {
	data, err := Encode(Envelope[T]{
		Header:  Header{Topic: topic, OccurredAt: time.Now().UTC(), Version: PayloadVersionV1},
		Payload: payload,
	})
	if err != nil {
		return err
	}
	return b.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), data))
}

func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

// RunActivityLog 订阅全部主题并记录活动日志，ctx 结束后退出
func RunActivityLog(ctx context.Context, b *Bus) error {
	topics := []string{TopicImageUploaded, TopicImageDeleted, TopicImageLiked, TopicCommentAdded, TopicUserLoggedIn}
	for _, topic := range topics {
		ch, err := b.Subscribe(ctx, topic)
		if err != nil {
			return err
		}
		go func(topic string, ch <-chan *message.Message) {
			for msg := range ch {
				env, err := Decode[map[string]any](msg.Payload)
				if err != nil {
					log.L.Warn("decode event failed", zap.String("topic", topic), zap.Error(err))
				} else {
					log.L.Info("activity", zap.String("topic", topic), zap.Any("payload", env.Payload))
				}
				msg.Ack()
			}
		}(topic, ch)
	}
	return nil
}

// zapAdapter 将 zap 适配为 watermill.LoggerAdapter
type zapAdapter struct {
	l *zap.Logger
}

func (z zapAdapter) fields(fields watermill.LogFields) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, zap.Any(k, v))
	}
	return out
}

func (z zapAdapter) Error(msg string, err error, fields watermill.LogFields) {
	z.l.Error(msg, append(z.fields(fields), zap.Error(err))...)
}

func (z zapAdapter) Info(msg string, fields watermill.LogFields) {
	z.l.Info(msg, z.fields(fields)...)
}

func (z zapAdapter) Debug(msg string, fields watermill.LogFields) {
	z.l.Debug(msg, z.fields(fields)...)
}

func (z zapAdapter) Trace(msg string, fields watermill.LogFields) {
	z.l.Debug(msg, z.fields(fields)...)
}

func (z zapAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return zapAdapter{l: z.l.With(z.fields(fields)...)}
}
