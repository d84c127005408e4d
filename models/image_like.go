package models

import "time"

// ImageLike 点赞记录
// 对应表 image_likes
// 主键: image_id + user_id，存在即已点赞
type ImageLike struct {
	ImageID   int64     `gorm:"column:image_id;primaryKey;autoIncrement:false" json:"imageId,string"`
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement:false;index:idx_image_likes_user_id" json:"userId,string"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`
}

func (ImageLike) TableName() string { return "image_likes" }

// All 需要迁移的模型
func All() []any {
	return []any{
		&Users{},
		&Image{},
		&Comment{},
		&ImageLike{},
	}
}
