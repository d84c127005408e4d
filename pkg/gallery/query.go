// Package gallery 图库查询：封闭的筛选/排序配置，边界校验后转换为查询条件
package gallery

import (
	"Trophy/models"
	"Trophy/pkg/response"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	MinLimit  = 1
	MaxLimit  = 50
	MinRating = 0
	MaxRating = 5
)

// Category 图片分类，以动物名是否为风景划分
type Category int

const (
	CategoryAll Category = iota
	CategoryLandscape
	CategoryTrophy
)

type SortField string

const (
	SortUploadTime SortField = "uploadTime"
	SortRating     SortField = "rating"
	SortViewCount  SortField = "viewCount"
	SortLikeCount  SortField = "likeCount"
)

var sortColumns = map[SortField]string{
	SortUploadTime: "upload_time",
	SortRating:     "rating",
	SortViewCount:  "view_count",
	SortLikeCount:  "like_count",
}

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// FilterKey 视图可识别的筛选项
type FilterKey uint8

const (
	FilterArea FilterKey = 1 << iota
	FilterAnimal
	FilterUploader
	FilterRating
	FilterMinRating
)

// Mode 分页方式
type Mode int

const (
	// ModeCounted 额外计数，返回总页数
	ModeCounted Mode = iota
	// ModeLookahead 多取一条判断是否还有下一页
	ModeLookahead
)

// Bound 时间戳上界的使用方式
type Bound int

const (
	BoundOptional Bound = iota
	BoundAlways
)

// View 一个列表视图的固定配置
type View struct {
	Name         string
	Category     Category
	Filters      FilterKey
	Sorts        []SortField
	DefaultLimit int
	Mode         Mode
	Bound        Bound
	WithPayload  bool
}

func (v View) allows(k FilterKey) bool {
	return v.Filters&k != 0
}

func (v View) sortable(f SortField) bool {
	for _, s := range v.Sorts {
		if s == f {
			return true
		}
	}
	return false
}

// LandscapeView 风景瀑布流
func LandscapeView(defaultLimit int) View {
	return View{
		Name:         "landscape",
		Category:     CategoryLandscape,
		Sorts:        []SortField{SortUploadTime, SortViewCount, SortLikeCount},
		DefaultLimit: defaultLimit,
		Mode:         ModeLookahead,
		Bound:        BoundAlways,
		WithPayload:  true,
	}
}

// TrophyView 战利品瀑布流
func TrophyView(defaultLimit int) View {
	return View{
		Name:         "trophy",
		Category:     CategoryTrophy,
		Filters:      FilterArea | FilterAnimal | FilterRating,
		Sorts:        []SortField{SortUploadTime, SortRating, SortViewCount, SortLikeCount},
		DefaultLimit: defaultLimit,
		Mode:         ModeCounted,
		Bound:        BoundAlways,
		WithPayload:  true,
	}
}

// ListView 通用列表，不返回图片数据
func ListView(defaultLimit int) View {
	return View{
		Name:         "list",
		Category:     CategoryAll,
		Filters:      FilterArea | FilterAnimal | FilterUploader | FilterMinRating,
		Sorts:        []SortField{SortUploadTime, SortRating, SortViewCount, SortLikeCount},
		DefaultLimit: defaultLimit,
		Mode:         ModeCounted,
		Bound:        BoundOptional,
	}
}

// Params 客户端传入的原始参数
type Params struct {
	Page       *int
	Limit      *int
	AreaName   string
	AnimalName string
	UploaderID int64
	Rating     *int
	MinRating  *int
	SortBy     string
	SortOrder  string
	Timestamp  string
}

// Query 校验后的查询
type Query struct {
	View       View
	Page       int
	Limit      int
	AreaName   string
	AnimalName string
	UploaderID int64
	Rating     *int
	MinRating  *int
	SortBy     SortField
	SortOrder  SortOrder
	// Timestamp 非空时只查询 upload_time <= Timestamp
	Timestamp *time.Time
}

// Normalize 校验参数并补齐默认值，未识别的排序字段回落到上传时间
func Normalize(view View, p Params, now time.Time) (*Query, error) {
	q := &Query{
		View:      view,
		Page:      1,
		Limit:     view.DefaultLimit,
		SortBy:    SortUploadTime,
		SortOrder: OrderDesc,
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.Limit != nil {
		q.Limit = *p.Limit
	}
	// 偏移量 (page-1)*limit 不能溢出
	if q.Page < 1 || q.Limit < MinLimit || q.Limit > MaxLimit || q.Page-1 > math.MaxInt/q.Limit {
		return nil, response.Validation("页码必须大于0，每页数量必须在1-50之间")
	}

	if view.allows(FilterArea) {
		q.AreaName = strings.TrimSpace(p.AreaName)
	}
	if view.allows(FilterAnimal) {
		q.AnimalName = strings.TrimSpace(p.AnimalName)
	}
	if view.allows(FilterUploader) && p.UploaderID > 0 {
		q.UploaderID = p.UploaderID
	}
	if view.allows(FilterRating) && p.Rating != nil {
		if !validRating(*p.Rating) {
			return nil, response.Validation("评级必须在0-5之间")
		}
		r := *p.Rating
		q.Rating = &r
	}
	if view.allows(FilterMinRating) && p.MinRating != nil {
		if !validRating(*p.MinRating) {
			return nil, response.Validation("最低评级必须在0-5之间")
		}
		r := *p.MinRating
		q.MinRating = &r
	}

	if f := SortField(p.SortBy); view.sortable(f) {
		q.SortBy = f
	}
	if o := SortOrder(strings.ToLower(p.SortOrder)); o == OrderAsc {
		q.SortOrder = OrderAsc
	}

	switch {
	case strings.TrimSpace(p.Timestamp) != "":
		ts, err := ParseTimestamp(p.Timestamp)
		if err != nil {
			return nil, response.Validation("时间戳格式不正确")
		}
		q.Timestamp = &ts
	case view.Bound == BoundAlways:
		ts := Truncate(now)
		q.Timestamp = &ts
	}
	return q, nil
}

func validRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Offset 跳过的行数
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// FetchSize 实际查询条数
func (q *Query) FetchSize() int {
	if q.View.Mode == ModeLookahead {
		return q.Limit + 1
	}
	return q.Limit
}

// Where 筛选条件，计数与分页共用
func (q *Query) Where(db *gorm.DB) *gorm.DB {
	db = db.Where("is_active = ?", true)
	switch q.View.Category {
	case CategoryLandscape:
		db = db.Where("animal_name = ?", models.LandscapeAnimal)
	case CategoryTrophy:
		db = db.Where("animal_name <> ?", models.LandscapeAnimal)
	}
	if q.AreaName != "" {
		db = db.Where("area_name = ?", q.AreaName)
	}
	if q.AnimalName != "" {
		db = db.Where("animal_name = ?", q.AnimalName)
	}
	if q.UploaderID > 0 {
		db = db.Where("uploader_id = ?", q.UploaderID)
	}
	if q.Rating != nil {
		db = db.Where("rating = ?", *q.Rating)
	}
	if q.MinRating != nil {
		db = db.Where("rating >= ?", *q.MinRating)
	}
	if q.Timestamp != nil {
		db = db.Where("upload_time <= ?", *q.Timestamp)
	}
	return db
}

// Order 排序，id 倒序保证全序
func (q *Query) Order(db *gorm.DB) *gorm.DB {
	return db.Order(sortColumns[q.SortBy] + " " + string(q.SortOrder)).Order("id DESC")
}

// Paginate 偏移与条数
func (q *Query) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(q.Offset()).Limit(q.FetchSize())
}
