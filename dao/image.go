package dao

import (
	"Trophy/models"
	"Trophy/pkg/gallery"
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

// Gallery 按查询条件取一页，列表视图不取 image_data
func (d *Image) Gallery(ctx context.Context, q *gallery.Query) ([]*models.Image, error) {
	var images []*models.Image
	db := d.Db.WithContext(ctx).Scopes(q.Where, q.Order, q.Paginate)
	if !q.View.WithPayload {
		db = db.Omit("image_data")
	}
	if err := db.Find(&images).Error; err != nil {
		return nil, fmt.Errorf("dao.Image.Gallery error: %w", err)
	}
	return images, nil
}

// Count 与 Gallery 相同筛选下的总数
func (d *Image) Count(ctx context.Context, q *gallery.Query) (int64, error) {
	var total int64
	if err := d.Model(ctx).Scopes(q.Where).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("dao.Image.Count error: %w", err)
	}
	return total, nil
}

// IncrViewCount 浏览数 +1
func (d *Image) IncrViewCount(ctx context.Context, id int64) error {
	return d.Model(ctx).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

// IncrLikeCount 点赞数增减，不会小于 0
func (d *Image) IncrLikeCount(ctx context.Context, id int64, delta int64) error {
	return d.Model(ctx).
		Where("id = ?", id).
		UpdateColumn("like_count", gorm.Expr("CASE WHEN like_count + ? < 0 THEN 0 ELSE like_count + ? END", delta, delta)).Error
}

// GetLikeCount 读取当前点赞数
func (d *Image) GetLikeCount(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := d.Model(ctx).Select("like_count").Where("id = ?", id).Scan(&count).Error
	return count, err
}

// SoftDelete 仅对仍有效的图片生效，返回影响行数
func (d *Image) SoftDelete(ctx context.Context, id int64, by int64, reason string, at time.Time) (int64, error) {
	res := d.Model(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"is_active":     false,
			"deleted_at":    at,
			"deleted_by":    by,
			"delete_reason": reason,
			"updated_at":    at,
		})
	return res.RowsAffected, res.Error
}
