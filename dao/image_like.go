package dao

import (
	"Trophy/models"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ImageLike struct {
	Repo[models.ImageLike]
}

func NewImageLike(db *gorm.DB) *ImageLike {
	return &ImageLike{Repo: NewRepo[models.ImageLike](db)}
}

// IsLiked 是否点赞
func (d *ImageLike) IsLiked(ctx context.Context, imageID, userID int64) (bool, error) {
	return d.IsExist(ctx, "image_id = ? AND user_id = ?", imageID, userID)
}

// Add 写入点赞记录，已存在时不报错，返回是否真正新增
func (d *ImageLike) Add(ctx context.Context, imageID, userID int64, at time.Time) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.ImageLike{ImageID: imageID, UserID: userID, CreatedAt: at})
	return res.RowsAffected == 1, res.Error
}

// Remove 删除点赞记录，返回是否真正删除
func (d *ImageLike) Remove(ctx context.Context, imageID, userID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("image_id = ? AND user_id = ?", imageID, userID).
		Delete(&models.ImageLike{})
	return res.RowsAffected == 1, res.Error
}

// RemoveByImage 清理图片的全部点赞
func (d *ImageLike) RemoveByImage(ctx context.Context, imageID int64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("image_id = ?", imageID).
		Delete(&models.ImageLike{})
	return res.RowsAffected, res.Error
}
