package service

import (
	"Trophy/dao"
	"Trophy/models"
	"Trophy/pkg/events"
	"Trophy/pkg/response"
	"Trophy/pkg/rule"
	"Trophy/pkg/snowflake"
	"Trophy/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

const maxCommentRunes = 500

var _ ICommentsService = (*CommentsService)(nil)

type ICommentsService interface {
	AddComment(ctx context.Context, req *types.AddCommentRequest) (*types.AddCommentResponse, error)
	GetComments(ctx context.Context, imageID int64) (*types.ImageCommentsResponse, error)
}

type CommentsService struct {
	ImageRepo   *dao.Image
	UsersRepo   *dao.Users
	CommentRepo *dao.Comment
	Bus         *events.Bus
	Clock       Clock
}

// AddComment 发表评论
func (s *CommentsService) AddComment(ctx context.Context, req *types.AddCommentRequest) (*types.AddCommentResponse, error) {
	nickname := strings.TrimSpace(req.UserNickname)
	if req.ImageID == 0 || req.Content == "" || req.UserID == 0 || nickname == "" {
		return nil, response.Validation("图片ID、评论内容和用户信息都是必填项")
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.Validation("评论内容不能为空")
	}
	if !rule.RuneLen(content, 1, maxCommentRunes) {
		return nil, response.Validation("评论内容不能超过500字符")
	}

	if _, err := s.activeImage(ctx, req.ImageID.Int64()); err != nil {
		return nil, err
	}
	exist, err := s.UsersRepo.IsExist(ctx, "id = ?", req.UserID.Int64())
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("用户不存在")
	}

	now := s.Clock.now()
	comment := &models.Comment{
		ID:           snowflake.GenID(),
		ImageID:      req.ImageID.Int64(),
		UserID:       req.UserID.Int64(),
		UserNickname: nickname,
		Content:      content,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.CommentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	resp := &types.AddCommentResponse{CommentID: types.ID(comment.ID)}
	publish(&resp.Effects, s.Bus, events.TopicCommentAdded, events.CommentEvent{
		CommentID: comment.ID, ImageID: comment.ImageID, UserID: comment.UserID,
	})
	return resp, nil
}

// GetComments 图片信息与评论列表
func (s *CommentsService) GetComments(ctx context.Context, imageID int64) (*types.ImageCommentsResponse, error) {
	img, err := s.activeImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	comments, err := s.CommentRepo.ListByImage(ctx, imageID)
	if err != nil {
		return nil, err
	}

	items := make([]types.CommentItem, 0, len(comments))
	for _, c := range comments {
		items = append(items, types.CommentItem{
			ID:           types.ID(c.ID),
			Content:      c.Content,
			UserNickname: c.UserNickname,
			UserID:       types.ID(c.UserID),
			CreatedAt:    c.CreatedAt,
		})
	}
	return &types.ImageCommentsResponse{
		ImageInfo: types.CommentImageInfo{
			ID:               types.ID(img.ID),
			ImageURL:         img.ImageData,
			AreaName:         img.AreaName,
			AnimalName:       img.AnimalName,
			Rating:           img.Rating,
			UploaderNickname: img.UploaderNickname,
			UploadTime:       img.UploadTime,
		},
		Comments: items,
	}, nil
}

func (s *CommentsService) activeImage(ctx context.Context, imageID int64) (*models.Image, error) {
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
	if !img.IsActive {
		return nil, response.NotFound("图片不存在")
	}
	return img, nil
}
