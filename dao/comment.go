package dao

import (
	"Trophy/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByImage 图片下全部评论，按时间倒序
func (d *Comment) ListByImage(ctx context.Context, imageID int64) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("image_id = ?", imageID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&comments).Error
	return comments, err
}
