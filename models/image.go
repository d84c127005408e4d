package models

import (
	"time"

	"gorm.io/datatypes"
)

// LandscapeAnimal 风景类图片的动物名取值
const LandscapeAnimal = "风景"

// Image 图片表，image_data 保存 data URL 原文
type Image struct {
	ID               int64                       `gorm:"column:id;primaryKey" json:"id,string"`
	AreaName         string                      `gorm:"column:area_name;type:varchar(64);not null;index:idx_area_animal,priority:1" json:"areaName"`
	AnimalName       string                      `gorm:"column:animal_name;type:varchar(64);not null;index:idx_area_animal,priority:2;index:idx_animal_upload,priority:1" json:"animalName"`
	Rating           int                         `gorm:"column:rating;not null;default:0" json:"rating"`
	UploaderID       int64                       `gorm:"column:uploader_id;not null;index:idx_uploader" json:"uploaderId,string"`
	UploaderNickname string                      `gorm:"column:uploader_nickname;type:varchar(64);not null" json:"uploaderNickname"`
	Description      string                      `gorm:"column:description;type:varchar(1000);not null;default:''" json:"description"`
	ImageData        string                      `gorm:"column:image_data;type:longtext" json:"imageData,omitempty"`
	ImageType        string                      `gorm:"column:image_type;type:varchar(32);not null;default:''" json:"imageType"`
	FileSize         int64                       `gorm:"column:file_size;not null;default:0" json:"fileSize"`
	Width            int                         `gorm:"column:width;not null;default:0" json:"width"`
	Height           int                         `gorm:"column:height;not null;default:0" json:"height"`
	ArchiveKey       string                      `gorm:"column:archive_key;type:varchar(255);not null;default:''" json:"-"` // 对象存储中的原图
	Tags             datatypes.JSONSlice[string] `gorm:"column:tags" json:"tags"`
	ViewCount        int64                       `gorm:"column:view_count;not null;default:0" json:"viewCount"`
	LikeCount        int64                       `gorm:"column:like_count;not null;default:0" json:"likeCount"`
	IsActive         bool                        `gorm:"column:is_active;not null;default:true;index:idx_animal_upload,priority:2" json:"isActive"`
	UploadTime       time.Time                   `gorm:"column:upload_time;not null;index:idx_animal_upload,priority:3" json:"uploadTime"`
	DeletedAt        *time.Time                  `gorm:"column:deleted_at" json:"deletedAt,omitempty"`
	DeletedBy        *int64                      `gorm:"column:deleted_by" json:"deletedBy,omitempty,string"`
	DeleteReason     string                      `gorm:"column:delete_reason;type:varchar(255);not null;default:''" json:"deleteReason,omitempty"`
	CreatedAt        time.Time                   `gorm:"column:created_at;not null" json:"createdAt"`
	UpdatedAt        time.Time                   `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Image) TableName() string {
	return "images"
}
