//go:build wireinject
// +build wireinject

package main

import (
	"Trophy/config"
	"Trophy/dao"
	"Trophy/dao/cache"
	"Trophy/handler"
	"Trophy/middleware"
	"Trophy/pkg/client"
	"Trophy/pkg/database"
	"Trophy/pkg/events"
	"Trophy/pkg/server"
	"Trophy/service"

	"github.com/google/wire"
)

var configSet = wire.NewSet(
	config.ProvideRedisConfig,
	config.ProvideOssConfig,
	config.ProvideJwtConfig,
	config.ProvideGalleryConfig,
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		configSet,
		client.NewRedisClient,
		database.NewDB,
		events.NewBus,
		middleware.NewLimiter,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Image), "*"),
		wire.Struct(new(handler.Gallery), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Health), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

// InitUserService 命令行管理用户
func InitUserService(cfg *config.Config) *service.UserService {
	wire.Build(
		config.ProvideJwtConfig,
		database.NewDB,
		dao.NewUsers,
		service.SystemClock,
		wire.Value((*events.Bus)(nil)),
		wire.Struct(new(service.UserService), "*"),
	)
	return nil
}
