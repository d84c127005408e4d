package service

import (
	"Trophy/config"
	ossclient "Trophy/pkg/oss"
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

var ErrOssDisabled = errors.New("oss disabled")

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// Enabled 是否启用原图归档
	Enabled() bool

	// Archive 归档上传的原图，返回对象 key
	Archive(ctx context.Context, imageID int64, contentType string, data []byte) (string, error)
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	Prefix     string
}

func NewOssService(cfg *config.OssConfig) IOssService {
	if cfg == nil || !cfg.Enabled {
		return &OssService{}
	}
	return &OssService{
		Client:     ossclient.NewClient(cfg),
		BucketName: cfg.Bucket,
		Prefix:     cfg.Prefix,
	}
}

func (s *OssService) Enabled() bool {
	return s != nil && s.Client != nil
}

// ObjectKey 按日期分目录，例如 originals/2026/10/16/123.png
func (s *OssService) ObjectKey(imageID int64, contentType string, at time.Time) string {
	ext := ".jpg"
	if sub, ok := strings.CutPrefix(contentType, "image/"); ok && sub != "" && sub != "jpeg" {
		ext = "." + sub
	}
	return path.Join(s.Prefix, at.Format("2006/01/02"), fmt.Sprintf("%d%s", imageID, ext))
}

func (s *OssService) Archive(ctx context.Context, imageID int64, contentType string, data []byte) (string, error) {
	if !s.Enabled() {
		return "", ErrOssDisabled
	}
	key := s.ObjectKey(imageID, contentType, time.Now().UTC())
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket:      oss.Ptr(s.BucketName),
		Key:         oss.Ptr(key),
		ContentType: oss.Ptr(contentType),
		Body:        bytes.NewReader(data),
	}); err != nil {
		return "", err
	}
	return key, nil
}
