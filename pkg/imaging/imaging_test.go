package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngDataURL(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeAndDimensions(t *testing.T) {
	url := pngDataURL(t, 64, 32)
	raw, mime, err := Decode(url)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if mime != "image/png" {
		t.Fatalf("mime = %s", mime)
	}
	w, h, err := Dimensions(raw)
	if err != nil || w != 64 || h != 32 {
		t.Fatalf("Dimensions = %d x %d (%v)", w, h, err)
	}

	if _, _, err := Decode("not-a-data-url"); err != ErrNotDataURL {
		t.Fatalf("err = %v, want ErrNotDataURL", err)
	}
}

func TestThumbnail(t *testing.T) {
	raw, _, err := Decode(pngDataURL(t, 800, 400))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	thumb, err := Thumbnail(raw, ThumbnailEdge)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}
	w, h, err := Dimensions(thumb)
	if err != nil {
		t.Fatalf("Dimensions: %v", err)
	}
	if w != 320 || h != 160 {
		t.Fatalf("thumbnail = %dx%d, want 320x160", w, h)
	}
}

func TestMimeTypeAndSize(t *testing.T) {
	if got := MimeType("data:image/webp;base64,AAAA"); got != "image/webp" {
		t.Fatalf("MimeType = %s", got)
	}
	if got := MimeType("image/webp"); got != "" {
		t.Fatalf("MimeType = %s, want empty", got)
	}
	if got := EstimatedSize("AAAA"); got != 3 {
		t.Fatalf("EstimatedSize = %d", got)
	}
}
