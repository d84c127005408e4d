package gallery

import (
	"time"
)

const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Pagination 分页信息，计数模式才有总数相关字段
type Pagination struct {
	CurrentPage  int    `json:"currentPage"`
	TotalPages   *int   `json:"totalPages,omitempty"`
	TotalItems   *int64 `json:"totalItems,omitempty"`
	ItemsPerPage int    `json:"itemsPerPage"`
	HasNextPage  bool   `json:"hasNextPage"`
	HasPrevPage  *bool  `json:"hasPrevPage,omitempty"`
	Timestamp    string `json:"timestamp,omitempty"`
}

// Filters 回显生效的筛选
type Filters struct {
	AreaName   *string   `json:"areaName,omitempty"`
	AnimalName *string   `json:"animalName,omitempty"`
	UploaderID *string   `json:"uploaderId,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	MinRating  *int      `json:"minRating,omitempty"`
	SortBy     SortField `json:"sortBy"`
	SortOrder  SortOrder `json:"sortOrder"`
}

// Truncate 时间统一为毫秒精度的 UTC
func Truncate(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return Truncate(t), nil
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Trim 多取一条模式：去掉探测行并计算是否有下一页
func Trim[T any](q *Query, rows []T) ([]T, Pagination) {
	p := q.basePagination()
	if len(rows) > q.Limit {
		p.HasNextPage = true
		rows = rows[:q.Limit]
	}
	return rows, p
}

// Counted 计数模式的分页信息
func Counted(q *Query, total int64) Pagination {
	p := q.basePagination()
	pages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	prev := q.Page > 1
	p.TotalPages = &pages
	p.TotalItems = &total
	p.HasNextPage = q.Page < pages
	p.HasPrevPage = &prev
	return p
}

func (q *Query) basePagination() Pagination {
	p := Pagination{
		CurrentPage:  q.Page,
		ItemsPerPage: q.Limit,
	}
	if q.Timestamp != nil {
		p.Timestamp = FormatTimestamp(*q.Timestamp)
	}
	return p
}

// Filters 生效筛选的回显
func (q *Query) Filters() Filters {
	f := Filters{SortBy: q.SortBy, SortOrder: q.SortOrder}
	switch q.View.Category {
	case CategoryLandscape:
		animal := LandscapeName()
		f.AnimalName = &animal
	}
	if q.AreaName != "" {
		area := q.AreaName
		f.AreaName = &area
	}
	if q.AnimalName != "" {
		animal := q.AnimalName
		f.AnimalName = &animal
	}
	if q.UploaderID > 0 {
		uid := formatID(q.UploaderID)
		f.UploaderID = &uid
	}
	f.Rating = q.Rating
	f.MinRating = q.MinRating
	return f
}
