package types

import (
	"Trophy/models"
	"Trophy/pkg/gallery"
	"fmt"
	"time"
)

type UploadImageRequest struct {
	ImageData        string   `json:"imageData"`
	AreaName         string   `json:"areaName"`
	AnimalName       string   `json:"animalName"`
	Rating           *float64 `json:"rating"`
	UploaderID       ID       `json:"uploaderId"`
	UploaderNickname string   `json:"uploaderNickname"`
	Description      string   `json:"description"`
}

type ImageIDRequest struct {
	ImageID ID `json:"imageId"`
}

type DeleteImageRequest struct {
	ImageID ID     `json:"imageId"`
	UserID  ID     `json:"userId"`
	Reason  string `json:"reason"`
}

type ToggleLikeRequest struct {
	ImageID ID `json:"imageId"`
	UserID  ID `json:"userId"`
}

// ImageSummary 不含图片数据的图片信息
type ImageSummary struct {
	ID               ID        `json:"id"`
	AreaName         string    `json:"areaName"`
	AnimalName       string    `json:"animalName"`
	Rating           int       `json:"rating"`
	RatingText       string    `json:"ratingText"`
	UploaderID       ID        `json:"uploaderId"`
	UploaderNickname string    `json:"uploaderNickname"`
	Description      string    `json:"description"`
	UploadTime       time.Time `json:"uploadTime"`
	CreatedAt        time.Time `json:"createdAt"`
	ViewCount        int64     `json:"viewCount"`
	LikeCount        int64     `json:"likeCount"`
	Tags             []string  `json:"tags"`
	FileSize         int64     `json:"fileSize"`
	ImageType        string    `json:"imageType"`
	Width            int       `json:"width"`
	Height           int       `json:"height"`
}

func NewImageSummary(img *models.Image) ImageSummary {
	tags := []string(img.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ImageSummary{
		ID:               ID(img.ID),
		AreaName:         img.AreaName,
		AnimalName:       img.AnimalName,
		Rating:           img.Rating,
		RatingText:       gallery.RatingText(img.Rating),
		UploaderID:       ID(img.UploaderID),
		UploaderNickname: img.UploaderNickname,
		Description:      img.Description,
		UploadTime:       img.UploadTime,
		CreatedAt:        img.CreatedAt,
		ViewCount:        img.ViewCount,
		LikeCount:        img.LikeCount,
		Tags:             tags,
		FileSize:         img.FileSize,
		ImageType:        gallery.ImageType(img.ImageType),
		Width:            img.Width,
		Height:           img.Height,
	}
}

// ImageWithData 附带清洗后的图片数据，不合法时为 null
type ImageWithData struct {
	ImageSummary
	ImageData *string `json:"imageData"`
}

func NewImageWithData(img *models.Image) ImageWithData {
	return ImageWithData{
		ImageSummary: NewImageSummary(img),
		ImageData:    gallery.Sanitize(img.ID, img.ImageData),
	}
}

// ImageListItem 通用列表项，图片通过链接获取
type ImageListItem struct {
	ImageSummary
	ThumbnailURL string `json:"thumbnailUrl"`
	FullImageURL string `json:"fullImageUrl"`
}

func NewImageListItem(img *models.Image) ImageListItem {
	return ImageListItem{
		ImageSummary: NewImageSummary(img),
		ThumbnailURL: fmt.Sprintf("/api/v1/images/%d/thumbnail", img.ID),
		FullImageURL: fmt.Sprintf("/api/v1/images/%d/full", img.ID),
	}
}

type UploadImageResponse struct {
	Image   ImageSummary `json:"image"`
	Effects Effects      `json:"-"`
}

type ImageDetailResponse struct {
	Image   ImageWithData `json:"image"`
	Effects Effects       `json:"-"`
}

type DeleteImageResponse struct {
	ImageID   ID        `json:"imageId"`
	DeletedAt time.Time `json:"deletedAt"`
	DeletedBy ID        `json:"deletedBy"`
	Effects   Effects   `json:"-"`
}

type ToggleLikeResponse struct {
	IsLiked   bool    `json:"isLiked"`
	LikeCount int64   `json:"likeCount"`
	Message   string  `json:"-"`
	Effects   Effects `json:"-"`
}

// ImageFile 原图或缩略图字节
type ImageFile struct {
	Data        []byte
	ContentType string
}
