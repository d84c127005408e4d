package service

import (
	"Trophy/types"
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommentLengthBoundary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "老猎人", "hunter@example.com")
	img := f.upload(t, user, "雷顿湖", "驼鹿", 3)

	req := func(content string) *types.AddCommentRequest {
		return &types.AddCommentRequest{ImageID: img.ID, Content: content, UserID: user.ID, UserNickname: user.Nickname}
	}

	resp, err := f.comments.AddComment(ctx, req(strings.Repeat("猎", 500)))
	require.NoError(t, err)
	assert.NotZero(t, resp.CommentID)

	_, err = f.comments.AddComment(ctx, req(strings.Repeat("猎", 501)))
	requireCode(t, err, http.StatusBadRequest)
	assert.Equal(t, "评论内容不能超过500字符", err.Error())

	_, err = f.comments.AddComment(ctx, req("   "))
	requireCode(t, err, http.StatusBadRequest)
	assert.Equal(t, "评论内容不能为空", err.Error())

	_, err = f.comments.AddComment(ctx, &types.AddCommentRequest{ImageID: img.ID, Content: "好图"})
	requireCode(t, err, http.StatusBadRequest)
}

func TestAddCommentNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "老猎人", "hunter@example.com")
	img := f.upload(t, user, "雷顿湖", "驼鹿", 3)

	_, err := f.comments.AddComment(ctx, &types.AddCommentRequest{ImageID: types.ID(404), Content: "好图", UserID: user.ID, UserNickname: user.Nickname})
	requireCode(t, err, http.StatusNotFound)
	assert.Equal(t, "图片不存在", err.Error())

	_, err = f.comments.AddComment(ctx, &types.AddCommentRequest{ImageID: img.ID, Content: "好图", UserID: types.ID(404), UserNickname: "幽灵"})
	requireCode(t, err, http.StatusNotFound)
	assert.Equal(t, "用户不存在", err.Error())
}

func TestGetCommentsNewestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := f.register(t, "老猎人", "hunter@example.com")
	img := f.upload(t, user, "雷顿湖", "驼鹿", 3)

	for _, content := range []string{"第一条", "第二条", "第三条"} {
		f.advance(time.Second)
		_, err := f.comments.AddComment(ctx, &types.AddCommentRequest{
			ImageID: img.ID, Content: "  " + content + "  ", UserID: user.ID, UserNickname: user.Nickname,
		})
		require.NoError(t, err)
	}

	resp, err := f.comments.GetComments(ctx, img.ID.Int64())
	require.NoError(t, err)
	require.Len(t, resp.Comments, 3)
	assert.Equal(t, "第三条", resp.Comments[0].Content)
	assert.Equal(t, "第一条", resp.Comments[2].Content)
	assert.Equal(t, img.ID, resp.ImageInfo.ID)
	assert.Equal(t, "驼鹿", resp.ImageInfo.AnimalName)
	assert.True(t, strings.HasPrefix(resp.ImageInfo.ImageURL, "data:image/png;base64,"))

	empty := f.upload(t, user, "雷顿湖", "白尾鹿", 2)
	none, err := f.comments.GetComments(ctx, empty.ID.Int64())
	require.NoError(t, err)
	assert.NotNil(t, none.Comments)
	assert.Empty(t, none.Comments)

	_, err = f.comments.GetComments(ctx, 0)
	requireCode(t, err, http.StatusBadRequest)
}
