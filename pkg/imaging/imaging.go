// Package imaging 处理 data URL 形式的图片：解码、尺寸探测与缩略图
package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// MaxPayloadBytes 按编码长度估算的原图上限
	MaxPayloadBytes = 5 * 1024 * 1024
	// ThumbnailEdge 缩略图最长边
	ThumbnailEdge = 320

	dataURLPrefix = "data:image/"
)

var ErrNotDataURL = errors.New("payload is not an image data url")

// IsDataURL 是否以图片 data URL 开头
func IsDataURL(s string) bool {
	return strings.HasPrefix(s, dataURLPrefix)
}

// EstimatedSize 由编码长度估算字节数
func EstimatedSize(s string) int64 {
	return int64(len(s)) * 3 / 4
}

// MimeType 取 data: 与 ; 之间的类型，例如 image/png
func MimeType(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return ""
	}
	end := strings.IndexByte(s, ';')
	if end < 5 {
		return ""
	}
	return s[5:end]
}

// Decode 解出原始字节与类型
func Decode(dataURL string) ([]byte, string, error) {
	if !IsDataURL(dataURL) {
		return nil, "", ErrNotDataURL
	}
	idx := strings.Index(dataURL, ";base64,")
	if idx < 0 {
		return nil, "", ErrNotDataURL
	}
	raw, err := base64.StdEncoding.DecodeString(dataURL[idx+len(";base64,"):])
	if err != nil {
		return nil, "", err
	}
	return raw, MimeType(dataURL), nil
}

// Dimensions 只读图片头获取宽高
func Dimensions(raw []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

// Thumbnail 等比缩放到最长边不超过 edge，输出 jpeg
func Thumbnail(raw []byte, edge int) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > edge || h > edge {
		if w >= h {
			h = h * edge / w
			w = edge
		} else {
			w = w * edge / h
			h = edge
		}
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
