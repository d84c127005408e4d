package types

import "Trophy/pkg/gallery"

// ListImagesRequest 通用列表
type ListImagesRequest struct {
	Page       *int   `json:"page"`
	Limit      *int   `json:"limit"`
	AreaName   string `json:"areaName"`
	AnimalName string `json:"animalName"`
	UploaderID ID     `json:"uploaderId"`
	MinRating  *int   `json:"minRating"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
	Timestamp  string `json:"timestamp"`
}

func (r *ListImagesRequest) Params() gallery.Params {
	return gallery.Params{
		Page:       r.Page,
		Limit:      r.Limit,
		AreaName:   r.AreaName,
		AnimalName: r.AnimalName,
		UploaderID: r.UploaderID.Int64(),
		MinRating:  r.MinRating,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
		Timestamp:  r.Timestamp,
	}
}

// LandscapeRequest 风景瀑布流
type LandscapeRequest struct {
	Page      *int   `json:"page"`
	Limit     *int   `json:"limit"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
	Timestamp string `json:"timestamp"`
}

func (r *LandscapeRequest) Params() gallery.Params {
	return gallery.Params{
		Page:      r.Page,
		Limit:     r.Limit,
		SortBy:    r.SortBy,
		SortOrder: r.SortOrder,
		Timestamp: r.Timestamp,
	}
}

// TrophyRequest 战利品瀑布流
type TrophyRequest struct {
	AreaName   string `json:"areaName"`
	AnimalName string `json:"animalName"`
	Rating     *int   `json:"rating"`
	Page       *int   `json:"page"`
	Limit      *int   `json:"limit"`
	SortBy     string `json:"sortBy"`
	SortOrder  string `json:"sortOrder"`
	Timestamp  string `json:"timestamp"`
}

func (r *TrophyRequest) Params() gallery.Params {
	return gallery.Params{
		Page:       r.Page,
		Limit:      r.Limit,
		AreaName:   r.AreaName,
		AnimalName: r.AnimalName,
		Rating:     r.Rating,
		SortBy:     r.SortBy,
		SortOrder:  r.SortOrder,
		Timestamp:  r.Timestamp,
	}
}

type ListImagesResponse struct {
	Images     []ImageListItem    `json:"images"`
	Pagination gallery.Pagination `json:"pagination"`
	Filters    gallery.Filters    `json:"filters"`
}

type GalleryResponse struct {
	Images     []ImageWithData    `json:"images"`
	Pagination gallery.Pagination `json:"pagination"`
	Filters    gallery.Filters    `json:"filters"`
}
