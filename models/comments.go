package models

import (
	"time"
)

// Comment 图片评论，创建后不再修改
type Comment struct {
	ID           int64     `gorm:"column:id;primaryKey" json:"id,string"`
	ImageID      int64     `gorm:"column:image_id;not null;index:idx_image_created,priority:1" json:"imageId,string"`
	UserID       int64     `gorm:"column:user_id;not null;index:idx_comments_user_id" json:"userId,string"`
	UserNickname string    `gorm:"column:user_nickname;type:varchar(64);not null" json:"userNickname"`
	Content      string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;index:idx_image_created,priority:2" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

// TableName 指定 GORM 使用的表名
func (Comment) TableName() string {
	return "comments"
}
