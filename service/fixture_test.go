package service

import (
	"Trophy/config"
	"Trophy/dao"
	"Trophy/internal/testutil"
	"Trophy/pkg/response"
	"Trophy/types"
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	now time.Time

	users    *UserService
	images   *ImageService
	gallery  *GalleryService
	likes    *LikeService
	comments *CommentsService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.SetupDB(t)
	f := &fixture{db: db, now: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}
	clock := Clock(func() time.Time { return f.now })

	usersRepo := dao.NewUsers(db)
	imageRepo := dao.NewImage(db)
	likeRepo := dao.NewImageLike(db)
	f.users = &UserService{
		Jwt:       &config.Jwt{Secret: "test-secret", Issuer: "trophy", ExpireHours: 24, RememberDays: 30},
		UsersRepo: usersRepo,
		Clock:     clock,
	}
	f.images = &ImageService{
		ImageRepo: imageRepo,
		UsersRepo: usersRepo,
		LikeRepo:  likeRepo,
		Oss:       NewOssService(nil),
		Clock:     clock,
	}
	f.gallery = &GalleryService{
		Gallery:   &config.Gallery{LandscapeLimit: 12, TrophyLimit: 20, ListLimit: 10},
		ImageRepo: imageRepo,
		Clock:     clock,
	}
	f.likes = &LikeService{
		ImageRepo: imageRepo,
		UsersRepo: usersRepo,
		LikeRepo:  likeRepo,
		Clock:     clock,
	}
	f.comments = &CommentsService{
		ImageRepo:   imageRepo,
		UsersRepo:   usersRepo,
		CommentRepo: dao.NewComment(db),
		Clock:       clock,
	}
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *fixture) register(t *testing.T, nickname, email string) *types.UserView {
	t.Helper()
	resp, err := f.users.Register(context.Background(), &types.RegisterRequest{
		Nickname: nickname,
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	return resp.User
}

func (f *fixture) upload(t *testing.T, uploader *types.UserView, area, animal string, rating float64) types.ImageSummary {
	t.Helper()
	resp, err := f.images.Upload(context.Background(), &types.UploadImageRequest{
		ImageData:        pngDataURL(t),
		AreaName:         area,
		AnimalName:       animal,
		Rating:           &rating,
		UploaderID:       uploader.ID,
		UploaderNickname: uploader.Nickname,
	})
	require.NoError(t, err)
	return resp.Image
}

func pngDataURL(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(0, 0, color.RGBA{G: 180, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, code, response.CodeOf(err), err.Error())
}

func intPtr(v int) *int { return &v }
