package service

import (
	"Trophy/dao"
	"Trophy/dao/cache"
	"Trophy/pkg/events"
	"Trophy/pkg/response"
	"Trophy/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ILikeService = (*LikeService)(nil)

type ILikeService interface {
	// Toggle 已点赞则取消，未点赞则点赞
	Toggle(ctx context.Context, imageID, userID int64) (*types.ToggleLikeResponse, error)
}

type LikeService struct {
	ImageRepo *dao.Image
	UsersRepo *dao.Users
	LikeRepo  *dao.ImageLike
	Lock      *cache.LikeLock
	Bus       *events.Bus
	Clock     Clock
}

func (s *LikeService) Toggle(ctx context.Context, imageID, userID int64) (*types.ToggleLikeResponse, error) {
	if imageID <= 0 || userID <= 0 {
		return nil, response.Validation("图片ID和用户ID都是必填项")
	}
	// 校验图片存在且有效
	img, err := s.ImageRepo.FindById(ctx, imageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}
	if !img.IsActive {
		return nil, response.NotFound("图片不存在")
	}
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", userID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}

	ok, release := s.Lock.Acquire(ctx, imageID, userID)
	if !ok {
		return nil, response.TooMany("操作太频繁，请稍后再试")
	}
	defer release()

	liked, err := s.LikeRepo.IsLiked(ctx, imageID, userID)
	if err != nil {
		return nil, err
	}

	resp := &types.ToggleLikeResponse{}
	if liked {
		// 只有真正删除了记录才减计数
		removed, err := s.LikeRepo.Remove(ctx, imageID, userID)
		if err != nil {
			return nil, err
		}
		if removed {
			if err := s.ImageRepo.IncrLikeCount(ctx, imageID, -1); err != nil {
				return nil, err
			}
		}
		resp.IsLiked = false
		resp.Message = "取消点赞成功"
	} else {
		added, err := s.LikeRepo.Add(ctx, imageID, userID, s.Clock.now())
		if err != nil {
			return nil, err
		}
		if added {
			if err := s.ImageRepo.IncrLikeCount(ctx, imageID, 1); err != nil {
				return nil, err
			}
			runEffect(&resp.Effects, EffectExperience, func() error {
				return s.UsersRepo.AddExperience(ctx, img.UploaderID, likeExperience)
			})
		}
		resp.IsLiked = true
		resp.Message = "点赞成功"
	}

	count, err := s.ImageRepo.GetLikeCount(ctx, imageID)
	if err != nil {
		return nil, err
	}
	resp.LikeCount = count
	publish(&resp.Effects, s.Bus, events.TopicImageLiked, events.ImageEvent{ImageID: imageID, UserID: userID, Liked: resp.IsLiked})
	return resp, nil
}
