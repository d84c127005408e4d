package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewImage,
	NewImageLike,
	NewComment,
)
