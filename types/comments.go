package types

import "time"

// AddCommentRequest 发表评论
type AddCommentRequest struct {
	ImageID      ID     `json:"imageId"`
	Content      string `json:"content"`
	UserID       ID     `json:"userId"`
	UserNickname string `json:"userNickname"`
}

type AddCommentResponse struct {
	CommentID ID      `json:"commentId"`
	Effects   Effects `json:"-"`
}

// CommentImageInfo 评论页顶部的图片信息
type CommentImageInfo struct {
	ID               ID        `json:"id"`
	ImageURL         string    `json:"imageUrl"`
	AreaName         string    `json:"areaName"`
	AnimalName       string    `json:"animalName"`
	Rating           int       `json:"rating"`
	UploaderNickname string    `json:"uploaderNickname"`
	UploadTime       time.Time `json:"uploadTime"`
}

type CommentItem struct {
	ID           ID        `json:"id"`
	Content      string    `json:"content"`
	UserNickname string    `json:"userNickname"`
	UserID       ID        `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ImageCommentsResponse struct {
	ImageInfo CommentImageInfo `json:"imageInfo"`
	Comments  []CommentItem    `json:"comments"`
}
