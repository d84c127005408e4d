package gallery

import (
	"Trophy/models"
	"Trophy/pkg/log"
	"regexp"
	"strconv"

	"go.uber.org/zap"
)

const DefaultImageType = "image/jpeg"

var (
	payloadPrefix  = regexp.MustCompile(`^data:image/[a-z]+;base64,`)
	payloadCharset = regexp.MustCompile(`^[A-Za-z0-9+/]*={0,2}$`)
)

var ratingTexts = [...]string{"无评级", "青铜", "白银", "黄金", "钻石", "奇珍异兽"}

// RatingText 评级对应的段位名称
func RatingText(rating int) string {
	if rating < MinRating || rating > MaxRating {
		return "未知"
	}
	return ratingTexts[rating]
}

// LandscapeName 风景分类的动物名
func LandscapeName() string {
	return models.LandscapeAnimal
}

// Sanitize 去掉 data URL 前缀并校验 base64 字符集，不合法时返回 nil
func Sanitize(imageID int64, raw string) *string {
	if raw == "" {
		return nil
	}
	clean := payloadPrefix.ReplaceAllString(raw, "")
	if !payloadCharset.MatchString(clean) {
		log.L.Error("invalid image payload", zap.Int64("image_id", imageID), zap.Int("length", len(raw)))
		return nil
	}
	return &clean
}

// ImageType 缺省为 jpeg
func ImageType(t string) string {
	if t == "" {
		return DefaultImageType
	}
	return t
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
