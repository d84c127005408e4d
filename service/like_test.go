package service

import (
	"Trophy/types"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "老猎人", "hunter@example.com")
	fan := f.register(t, "粉丝", "fan@example.com")
	img := f.upload(t, owner, "雷顿湖", "驼鹿", 3)

	liked, err := f.likes.Toggle(ctx, img.ID.Int64(), fan.ID.Int64())
	require.NoError(t, err)
	assert.True(t, liked.IsLiked)
	assert.Equal(t, int64(1), liked.LikeCount)
	assert.Equal(t, "点赞成功", liked.Message)
	assert.Empty(t, liked.Effects.Failed())

	unliked, err := f.likes.Toggle(ctx, img.ID.Int64(), fan.ID.Int64())
	require.NoError(t, err)
	assert.False(t, unliked.IsLiked)
	assert.Equal(t, int64(0), unliked.LikeCount)
	assert.Equal(t, "取消点赞成功", unliked.Message)

	_, err = f.likes.Toggle(ctx, img.ID.Int64(), fan.ID.Int64())
	require.NoError(t, err)
	both, err := f.likes.Toggle(ctx, img.ID.Int64(), owner.ID.Int64())
	require.NoError(t, err)
	assert.Equal(t, int64(2), both.LikeCount)

	// 点赞给上传者加经验，取消不回退
	u, err := f.users.UsersRepo.FindById(ctx, owner.ID.Int64())
	require.NoError(t, err)
	assert.Equal(t, int64(uploadExperience+3*likeExperience), u.Profile.Experience)
}

func TestLikeRecordIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "老猎人", "hunter@example.com")
	img := f.upload(t, owner, "雷顿湖", "驼鹿", 3)

	added, err := f.likes.LikeRepo.Add(ctx, img.ID.Int64(), owner.ID.Int64(), f.now)
	require.NoError(t, err)
	assert.True(t, added)
	added, err = f.likes.LikeRepo.Add(ctx, img.ID.Int64(), owner.ID.Int64(), f.now)
	require.NoError(t, err)
	assert.False(t, added)

	removed, err := f.likes.LikeRepo.Remove(ctx, img.ID.Int64(), owner.ID.Int64())
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = f.likes.LikeRepo.Remove(ctx, img.ID.Int64(), owner.ID.Int64())
	require.NoError(t, err)
	assert.False(t, removed)

	// 计数不会被减成负数
	require.NoError(t, f.images.ImageRepo.IncrLikeCount(ctx, img.ID.Int64(), -1))
	count, err := f.images.ImageRepo.GetLikeCount(ctx, img.ID.Int64())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleLikeNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.register(t, "老猎人", "hunter@example.com")
	img := f.upload(t, owner, "雷顿湖", "驼鹿", 3)

	_, err := f.likes.Toggle(ctx, 777, owner.ID.Int64())
	requireCode(t, err, http.StatusNotFound)
	assert.Equal(t, "图片不存在", err.Error())

	_, err = f.likes.Toggle(ctx, img.ID.Int64(), 888)
	requireCode(t, err, http.StatusNotFound)
	assert.Equal(t, "用户不存在", err.Error())

	_, err = f.images.Delete(ctx, &types.DeleteImageRequest{ImageID: img.ID, UserID: owner.ID})
	require.NoError(t, err)
	_, err = f.likes.Toggle(ctx, img.ID.Int64(), owner.ID.Int64())
	requireCode(t, err, http.StatusNotFound)
}
