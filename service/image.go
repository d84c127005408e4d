package service

import (
	"Trophy/dao"
	"Trophy/models"
	"Trophy/pkg/catalog"
	"Trophy/pkg/events"
	"Trophy/pkg/imaging"
	"Trophy/pkg/log"
	"Trophy/pkg/response"
	"Trophy/pkg/snowflake"
	"Trophy/types"
	"context"
	"errors"
	"math"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultDeleteReason = "用户删除"

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	Upload(ctx context.Context, req *types.UploadImageRequest) (*types.UploadImageResponse, error)
	Detail(ctx context.Context, imageID int64) (*types.ImageDetailResponse, error)
	Delete(ctx context.Context, req *types.DeleteImageRequest) (*types.DeleteImageResponse, error)
	// File 原图字节，thumbnail 为 true 时返回缩略图
	File(ctx context.Context, imageID int64, thumbnail bool) (*types.ImageFile, error)
}

type ImageService struct {
	ImageRepo *dao.Image
	UsersRepo *dao.Users
	LikeRepo  *dao.ImageLike
	Oss       IOssService
	Bus       *events.Bus
	Clock     Clock
}

// Upload 上传图片
func (s *ImageService) Upload(ctx context.Context, req *types.UploadImageRequest) (*types.UploadImageResponse, error) {
	area := strings.TrimSpace(req.AreaName)
	animal := strings.TrimSpace(req.AnimalName)
	nickname := strings.TrimSpace(req.UploaderNickname)
	if req.ImageData == "" || area == "" || animal == "" || req.Rating == nil || req.UploaderID == 0 || nickname == "" {
		return nil, response.Validation("图片数据、区域、动物、评分、上传者信息都是必填项")
	}
	rating := *req.Rating
	if rating != math.Trunc(rating) || rating < 1 || rating > 5 {
		return nil, response.Validation("评分必须是1-5之间的整数")
	}
	if !imaging.IsDataURL(req.ImageData) {
		return nil, response.Validation("图片格式不正确，请上传有效的图片文件")
	}
	size := imaging.EstimatedSize(req.ImageData)
	if size > imaging.MaxPayloadBytes {
		return nil, response.Validation("图片大小不能超过5MB")
	}

	uploaderID := req.UploaderID.Int64()
	if _, err := s.UsersRepo.FindById(ctx, uploaderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("上传者不存在")
		}
		return nil, err
	}

	if c, err := catalog.Load(); err == nil && animal != models.LandscapeAnimal && !c.HasAnimal(area, animal) {
		log.L.Info("upload outside map catalog", zap.String("area", area), zap.String("animal", animal))
	}

	now := s.Clock.now()
	img := &models.Image{
		ID:               snowflake.GenID(),
		AreaName:         area,
		AnimalName:       animal,
		Rating:           int(rating),
		UploaderID:       uploaderID,
		UploaderNickname: nickname,
		Description:      strings.TrimSpace(req.Description),
		ImageData:        req.ImageData,
		ImageType:        imaging.MimeType(req.ImageData),
		FileSize:         size,
		Tags:             datatypes.JSONSlice[string]{area, animal},
		IsActive:         true,
		UploadTime:       now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	// 尺寸读取失败不影响上传
	raw, _, decodeErr := imaging.Decode(req.ImageData)
	if decodeErr == nil {
		if w, h, err := imaging.Dimensions(raw); err == nil {
			img.Width, img.Height = w, h
		}
	}

	if err := s.ImageRepo.Create(ctx, img); err != nil {
		return nil, err
	}

	resp := &types.UploadImageResponse{}
	runEffect(&resp.Effects, EffectUploadCount, func() error {
		return s.UsersRepo.AddUploadCount(ctx, uploaderID, 1)
	})
	runEffect(&resp.Effects, EffectExperience, func() error {
		return s.UsersRepo.AddExperience(ctx, uploaderID, uploadExperience)
	})
	if s.Oss != nil && s.Oss.Enabled() && decodeErr == nil {
		runEffect(&resp.Effects, EffectArchive, func() error {
			key, err := s.Oss.Archive(ctx, img.ID, img.ImageType, raw)
			if err != nil {
				return err
			}
			img.ArchiveKey = key
			_, err = s.ImageRepo.UpdateById(ctx, img.ID, map[string]any{"archive_key": key})
			return err
		})
	}
	publish(&resp.Effects, s.Bus, events.TopicImageUploaded, events.ImageEvent{
		ImageID: img.ID, UserID: uploaderID, AreaName: area, AnimalName: animal,
	})

	resp.Image = types.NewImageSummary(img)
	return resp, nil
}

// Detail 图片详情，浏览数 +1
func (s *ImageService) Detail(ctx context.Context, imageID int64) (*types.ImageDetailResponse, error) {
	img, err := s.findImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if !img.IsActive {
		return nil, response.NotFound("图片已被删除或不可用")
	}

	resp := &types.ImageDetailResponse{}
	runEffect(&resp.Effects, EffectViewCount, func() error {
		if err := s.ImageRepo.IncrViewCount(ctx, img.ID); err != nil {
			return err
		}
		img.ViewCount++
		return nil
	})
	resp.Image = types.NewImageWithData(img)
	return resp, nil
}

// Delete 软删除，仅上传者或管理员可操作
func (s *ImageService) Delete(ctx context.Context, req *types.DeleteImageRequest) (*types.DeleteImageResponse, error) {
	if req.ImageID == 0 || req.UserID == 0 {
		return nil, response.Validation("图片ID和用户ID都是必填项")
	}
	img, err := s.findImage(ctx, req.ImageID.Int64())
	if err != nil {
		return nil, err
	}
	user, err := s.UsersRepo.FindById(ctx, req.UserID.Int64())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}
	if img.UploaderID != user.ID && !user.IsAdmin() {
		return nil, response.Forbidden("权限不足，只有图片上传者或管理员可以删除图片")
	}
	if !img.IsActive {
		return nil, response.Validation("图片已经被删除")
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		reason = defaultDeleteReason
	}
	now := s.Clock.now()
	n, err := s.ImageRepo.SoftDelete(ctx, img.ID, user.ID, reason, now)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// 并发删除
		return nil, response.Validation("图片已经被删除")
	}

	resp := &types.DeleteImageResponse{
		ImageID:   types.ID(img.ID),
		DeletedAt: now,
		DeletedBy: types.ID(user.ID),
	}
	runEffect(&resp.Effects, EffectLikesCleanup, func() error {
		_, err := s.LikeRepo.RemoveByImage(ctx, img.ID)
		return err
	})
	runEffect(&resp.Effects, EffectUploadCount, func() error {
		return s.UsersRepo.AddUploadCount(ctx, img.UploaderID, -1)
	})
	publish(&resp.Effects, s.Bus, events.TopicImageDeleted, events.ImageEvent{ImageID: img.ID, UserID: user.ID})
	return resp, nil
}

// File 解码图片数据，缩略图失败时回落原图
func (s *ImageService) File(ctx context.Context, imageID int64, thumbnail bool) (*types.ImageFile, error) {
	img, err := s.findImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if !img.IsActive {
		return nil, response.NotFound("图片已被删除或不可用")
	}
	raw, mime, err := imaging.Decode(img.ImageData)
	if err != nil {
		log.L.Error("decode image payload failed", zap.Int64("image_id", img.ID), zap.Error(err))
		return nil, response.NotFound("图片数据不可用")
	}
	if thumbnail {
		thumb, err := imaging.Thumbnail(raw, imaging.ThumbnailEdge)
		if err == nil {
			return &types.ImageFile{Data: thumb, ContentType: "image/jpeg"}, nil
		}
		log.L.Warn("thumbnail failed, serve original", zap.Int64("image_id", img.ID), zap.Error(err))
	}
	if mime == "" {
		mime = img.ImageType
	}
	return &types.ImageFile{Data: raw, ContentType: mime}, nil
}

func (s *ImageService) findImage(ctx context.Context, imageID int64) (*models.Image, error) {
	if imageID <= 0 {
		return nil, response.Validation("图片ID是必填项")
	}
	img, err := s.ImageRepo.FindById(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}
	return img, nil
}
